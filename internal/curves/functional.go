package curves

import (
	"fmt"
	"math"

	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/ui"
)

type FunctionCurve struct {
	Config configuration.CurveConfig `json:"config"`
	Value  float64                   `json:"value"`
}

func (c *FunctionCurve) GetId() string {
	return c.Config.ID
}

func (c *FunctionCurve) Evaluate(temp float64, duty float64) (value float64, err error) {
	var curveList []DutyCurve
	for _, curveId := range c.Config.Function.Curves {
		if curve, ok := DutyCurveMap.Get(curveId); ok {
			curveList = append(curveList, curve)
		}
	}

	if len(curveList) <= 0 {
		return 0, fmt.Errorf("curve %s: no referenced curve registered", c.Config.ID)
	}

	var values []float64
	for _, curve := range curveList {
		v, err := curve.Evaluate(temp, duty)
		if err != nil {
			return 0, err
		}
		values = append(values, v)
	}

	switch c.Config.Function.Type {
	case configuration.FunctionDelta:
		var dmax = values[0]
		var dmin = values[0]
		for _, v := range values {
			dmin = math.Min(dmin, v)
			dmax = math.Max(dmax, v)
		}
		value = dmax - dmin
	case configuration.FunctionMinimum:
		var min float64 = 100
		for _, v := range values {
			min = math.Min(min, v)
		}
		value = min
	case configuration.FunctionMaximum:
		var max float64
		for _, v := range values {
			max = math.Max(max, v)
		}
		value = max
	case configuration.FunctionAverage:
		var total = 0.0
		for _, v := range values {
			total += v
		}
		value = total / float64(len(values))
	default:
		ui.Fatal("Unknown curve function: %s", c.Config.Function.Type)
	}

	c.SetValue(value)
	return value, nil
}

func (c *FunctionCurve) SetValue(value float64) {
	valueMu.Lock()
	defer valueMu.Unlock()
	c.Value = value
}

func (c *FunctionCurve) CurrentValue() float64 {
	valueMu.Lock()
	defer valueMu.Unlock()
	return c.Value
}
