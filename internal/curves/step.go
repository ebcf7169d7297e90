package curves

import (
	"github.com/curvelab/fancurve/internal/configuration"
)

type StepCurve struct {
	Config configuration.CurveConfig `json:"config"`
	Value  float64                   `json:"value"`
}

func (c *StepCurve) GetId() string {
	return c.Config.ID
}

// Recommend walks the raise ladder first and the lower ladder second,
// in configuration order. The first matching rule wins. Returns false
// when no rule matches and the applied duty cycle should be kept.
func (c *StepCurve) Recommend(temp float64, duty float64) (float64, bool) {
	for _, rule := range c.Config.Step.Raise {
		if temp >= rule.Temp && duty < rule.Limit {
			return rule.Target, true
		}
	}
	for _, rule := range c.Config.Step.Lower {
		if temp <= rule.Temp && duty > rule.Limit {
			return rule.Target, true
		}
	}
	return 0, false
}

func (c *StepCurve) Evaluate(temp float64, duty float64) (value float64, err error) {
	value, ok := c.Recommend(temp, duty)
	if !ok {
		// no rule fired, keep the applied duty cycle
		value = duty
	}

	c.SetValue(value)
	return value, nil
}

func (c *StepCurve) SetValue(value float64) {
	valueMu.Lock()
	defer valueMu.Unlock()
	c.Value = value
}

func (c *StepCurve) CurrentValue() float64 {
	valueMu.Lock()
	defer valueMu.Unlock()
	return c.Value
}
