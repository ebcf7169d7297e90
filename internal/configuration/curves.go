package configuration

type CurveConfig struct {
	ID       string               `json:"id" yaml:"id"`
	Step     *StepCurveConfig     `json:"step,omitempty" yaml:"step,omitempty"`
	Linear   *LinearCurveConfig   `json:"linear,omitempty" yaml:"linear,omitempty"`
	Sigmoid  *SigmoidCurveConfig  `json:"sigmoid,omitempty" yaml:"sigmoid,omitempty"`
	Function *FunctionCurveConfig `json:"function,omitempty" yaml:"function,omitempty"`
}

const (
	StepCurveType     = "step"
	LinearCurveType   = "linear"
	SigmoidCurveType  = "sigmoid"
	FunctionCurveType = "function"
)

// Type returns the curve type of this definition, derived from the
// sub-configuration that is set.
func (c CurveConfig) Type() string {
	switch {
	case c.Step != nil:
		return StepCurveType
	case c.Linear != nil:
		return LinearCurveType
	case c.Sigmoid != nil:
		return SigmoidCurveType
	case c.Function != nil:
		return FunctionCurveType
	}
	return ""
}

// StepRuleConfig is a single rung of a step curve ladder.
// A raise rule fires when the temperature is at or above Temp while
// the applied duty cycle is below Limit. A lower rule fires when the
// temperature is at or below Temp while the applied duty cycle is
// above Limit. Target is the duty cycle the rule recommends.
type StepRuleConfig struct {
	Temp   float64 `json:"temp" yaml:"temp"`
	Limit  float64 `json:"limit" yaml:"limit"`
	Target float64 `json:"target" yaml:"target"`
}

type StepCurveConfig struct {
	// Raise rules are checked first, in order. The first matching
	// rule wins.
	Raise []StepRuleConfig `json:"raise" yaml:"raise"`
	// Lower rules are checked after the raise rules, in order.
	Lower []StepRuleConfig `json:"lower" yaml:"lower"`
}

type LinearCurveConfig struct {
	// MinTemp is the temperature at and below which the curve returns
	// a duty cycle of 0.
	MinTemp int `json:"minTemp" yaml:"minTemp"`
	// MaxTemp is the temperature at and above which the curve returns
	// a duty cycle of 100.
	MaxTemp int `json:"maxTemp" yaml:"maxTemp"`
	// Steps optionally defines the curve as temperature -> duty cycle
	// points, with linear interpolation between them. When set,
	// MinTemp and MaxTemp are ignored.
	Steps map[int]float64 `json:"steps,omitempty" yaml:"steps,omitempty"`
}

type SigmoidCurveConfig struct {
	// LowerMidpoint and UpperMidpoint are the two temperatures the
	// slope of the logistic function is derived from. They must
	// differ.
	LowerMidpoint float64 `json:"lowerMidpoint" yaml:"lowerMidpoint"`
	UpperMidpoint float64 `json:"upperMidpoint" yaml:"upperMidpoint"`
	// Centered places the transition midpoint at the average of the
	// two midpoints and applies the full derived slope. When false,
	// the midpoint sits 10 degrees above the average and the slope is
	// halved.
	Centered bool `json:"centered,omitempty" yaml:"centered,omitempty"`
}

const (
	FunctionMinimum = "minimum"
	FunctionAverage = "average"
	FunctionMaximum = "maximum"
	FunctionDelta   = "delta"
)

type FunctionCurveConfig struct {
	Type   string   `json:"type" yaml:"type"`
	Curves []string `json:"curves" yaml:"curves"`
}

const (
	DefaultLinearMinTemp = 30
	DefaultLinearMaxTemp = 80

	DefaultSigmoidLowerMidpoint = 50.0
	DefaultSigmoidUpperMidpoint = 60.0
)

// DefaultStepRaiseRules returns the built-in raise ladder of the step
// curve.
func DefaultStepRaiseRules() []StepRuleConfig {
	return []StepRuleConfig{
		{Temp: 80, Limit: 100, Target: 100},
		{Temp: 70, Limit: 60, Target: 50},
		{Temp: 65, Limit: 40, Target: 20},
		{Temp: 50, Limit: 20, Target: 10},
	}
}

// DefaultStepLowerRules returns the built-in lower ladder of the step
// curve.
func DefaultStepLowerRules() []StepRuleConfig {
	return []StepRuleConfig{
		{Temp: 45, Limit: 0, Target: 0},
		{Temp: 55, Limit: 20, Target: 20},
		{Temp: 65, Limit: 40, Target: 40},
		{Temp: 75, Limit: 60, Target: 60},
	}
}

// DefaultCurveConfigs returns the built-in curve definitions used
// when the configuration does not provide any.
func DefaultCurveConfigs() []CurveConfig {
	return []CurveConfig{
		{
			ID: "step",
			Step: &StepCurveConfig{
				Raise: DefaultStepRaiseRules(),
				Lower: DefaultStepLowerRules(),
			},
		},
		{
			ID: "linear",
			Linear: &LinearCurveConfig{
				MinTemp: DefaultLinearMinTemp,
				MaxTemp: DefaultLinearMaxTemp,
			},
		},
		{
			ID: "sigmoid",
			Sigmoid: &SigmoidCurveConfig{
				LowerMidpoint: DefaultSigmoidLowerMidpoint,
				UpperMidpoint: DefaultSigmoidUpperMidpoint,
			},
		},
	}
}
