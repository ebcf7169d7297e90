package curves

import (
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/curvelab/fancurve/internal/util"
)

type LinearCurve struct {
	Config configuration.CurveConfig `json:"config"`
	Value  float64                   `json:"value"`
}

func (c *LinearCurve) GetId() string {
	return c.Config.ID
}

func (c *LinearCurve) Evaluate(temp float64, duty float64) (value float64, err error) {
	steps := c.Config.Linear.Steps
	if steps != nil {
		value = util.CalculateInterpolatedCurveValue(steps, util.InterpolationTypeLinear, temp)
	} else {
		minTemp := float64(c.Config.Linear.MinTemp)
		maxTemp := float64(c.Config.Linear.MaxTemp)

		if temp >= maxTemp {
			// full throttle if max temp is reached
			value = 100
		} else if temp <= minTemp {
			// turn fan off if at/below min temp
			value = 0
		} else {
			ratio := util.Ratio(temp, minTemp, maxTemp)
			value = ratio * 100
		}
	}

	ui.Debug("Evaluating curve '%s'. Temp '%.1f°'. Desired duty: %.1f%%", c.Config.ID, temp, value)
	c.SetValue(value)
	return value, nil
}

func (c *LinearCurve) SetValue(value float64) {
	valueMu.Lock()
	defer valueMu.Unlock()
	c.Value = value
}

func (c *LinearCurve) CurrentValue() float64 {
	valueMu.Lock()
	defer valueMu.Unlock()
	return c.Value
}
