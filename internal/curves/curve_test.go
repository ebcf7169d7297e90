package curves

import (
	"testing"

	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/stretchr/testify/assert"
)

// helper function to create a step curve configuration
func createStepCurveConfig(
	id string,
	raise []configuration.StepRuleConfig,
	lower []configuration.StepRuleConfig,
) (curve configuration.CurveConfig) {
	curve = configuration.CurveConfig{
		ID: id,
		Step: &configuration.StepCurveConfig{
			Raise: raise,
			Lower: lower,
		},
	}
	return curve
}

// helper function to create a step curve configuration with the
// built-in ladders
func createDefaultStepCurveConfig(id string) (curve configuration.CurveConfig) {
	return createStepCurveConfig(
		id,
		configuration.DefaultStepRaiseRules(),
		configuration.DefaultStepLowerRules(),
	)
}

// helper function to create a linear curve configuration
func createLinearCurveConfig(
	id string,
	minTemp int,
	maxTemp int,
) (curve configuration.CurveConfig) {
	curve = configuration.CurveConfig{
		ID: id,
		Linear: &configuration.LinearCurveConfig{
			MinTemp: minTemp,
			MaxTemp: maxTemp,
		},
	}
	return curve
}

// helper function to create a linear curve configuration with steps
func createLinearCurveConfigWithSteps(
	id string,
	steps map[int]float64,
) (curve configuration.CurveConfig) {
	curve = configuration.CurveConfig{
		ID: id,
		Linear: &configuration.LinearCurveConfig{
			Steps: steps,
		},
	}
	return curve
}

// helper function to create a sigmoid curve configuration
func createSigmoidCurveConfig(
	id string,
	lowerMidpoint float64,
	upperMidpoint float64,
	centered bool,
) (curve configuration.CurveConfig) {
	curve = configuration.CurveConfig{
		ID: id,
		Sigmoid: &configuration.SigmoidCurveConfig{
			LowerMidpoint: lowerMidpoint,
			UpperMidpoint: upperMidpoint,
			Centered:      centered,
		},
	}
	return curve
}

// helper function to create a function curve configuration
func createFunctionCurveConfig(
	id string,
	function string,
	curveIds []string,
) (curve configuration.CurveConfig) {
	curve = configuration.CurveConfig{
		ID: id,
		Function: &configuration.FunctionCurveConfig{
			Type:   function,
			Curves: curveIds,
		},
	}
	return curve
}

func TestNewDutyCurve(t *testing.T) {
	// GIVEN
	stepConfig := createDefaultStepCurveConfig("step")
	linearConfig := createLinearCurveConfig("linear", 30, 80)
	sigmoidConfig := createSigmoidCurveConfig("sigmoid", 50, 60, false)
	functionConfig := createFunctionCurveConfig("function", configuration.FunctionAverage, []string{"step"})

	// WHEN
	stepCurve, stepErr := NewDutyCurve(stepConfig)
	linearCurve, linearErr := NewDutyCurve(linearConfig)
	sigmoidCurve, sigmoidErr := NewDutyCurve(sigmoidConfig)
	functionCurve, functionErr := NewDutyCurve(functionConfig)

	// THEN
	assert.NoError(t, stepErr)
	assert.IsType(t, &StepCurve{}, stepCurve)
	assert.NoError(t, linearErr)
	assert.IsType(t, &LinearCurve{}, linearCurve)
	assert.NoError(t, sigmoidErr)
	assert.IsType(t, &SigmoidCurve{}, sigmoidCurve)
	assert.NoError(t, functionErr)
	assert.IsType(t, &FunctionCurve{}, functionCurve)
}

func TestNewDutyCurveWithoutSubConfig(t *testing.T) {
	// GIVEN
	curveConfig := configuration.CurveConfig{
		ID: "empty",
	}

	// WHEN
	curve, err := NewDutyCurve(curveConfig)

	// THEN
	assert.Nil(t, curve)
	assert.EqualError(t, err, "no matching curve type for curve: empty")
}

func TestGetDutyCurve(t *testing.T) {
	// GIVEN
	curveConfig := createLinearCurveConfig("registry_curve", 30, 80)
	curve, err := NewDutyCurve(curveConfig)
	if err != nil {
		assert.Fail(t, err.Error())
	}
	DutyCurveMap.Set(curve.GetId(), curve)

	// WHEN
	result, ok := GetDutyCurve("registry_curve")

	// THEN
	assert.True(t, ok)
	assert.Equal(t, curve, result)
}

func TestCurrentValueReflectsLastEvaluation(t *testing.T) {
	// GIVEN
	curveConfig := createLinearCurveConfig("current_value_curve", 30, 80)
	curve, err := NewDutyCurve(curveConfig)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// WHEN
	value, err := curve.Evaluate(55, 0)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	assert.Equal(t, value, curve.CurrentValue())
}
