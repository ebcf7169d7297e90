package curves

import (
	"errors"
	"fmt"
	"math"

	"github.com/curvelab/fancurve/internal/configuration"
)

// ErrEqualMidpoints is returned when a sigmoid curve is evaluated
// with equal midpoints, which would yield a division by zero in the
// slope calculation.
var ErrEqualMidpoints = errors.New("sigmoid midpoints must differ")

type SigmoidCurve struct {
	Config configuration.CurveConfig `json:"config"`
	Value  float64                   `json:"value"`
}

func (c *SigmoidCurve) GetId() string {
	return c.Config.ID
}

// Evaluate calculates the duty cycle on a logistic function derived
// from the two configured midpoint temperatures. The applied duty
// cycle has no influence on the result.
func (c *SigmoidCurve) Evaluate(temp float64, duty float64) (value float64, err error) {
	sigmoidConfig := c.Config.Sigmoid
	if sigmoidConfig.LowerMidpoint == sigmoidConfig.UpperMidpoint {
		return 0, fmt.Errorf("curve %s: %w", c.Config.ID, ErrEqualMidpoints)
	}

	midpoint := (sigmoidConfig.LowerMidpoint + sigmoidConfig.UpperMidpoint) / 2
	slope := 2 / math.Abs(sigmoidConfig.LowerMidpoint-sigmoidConfig.UpperMidpoint)

	if sigmoidConfig.Centered {
		value = 100 / (1 + math.Exp(slope*-(temp-midpoint)))
	} else {
		value = 100 / (1 + math.Exp(slope/2*-(temp-(midpoint+10))))
	}

	c.SetValue(value)
	return value, nil
}

func (c *SigmoidCurve) SetValue(value float64) {
	valueMu.Lock()
	defer valueMu.Unlock()
	c.Value = value
}

func (c *SigmoidCurve) CurrentValue() float64 {
	valueMu.Lock()
	defer valueMu.Unlock()
	return c.Value
}
