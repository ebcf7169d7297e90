package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepCurveRaiseFirstMatchWins(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createDefaultStepCurveConfig("step"))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	expectedTempToTarget := map[float64]float64{
		85: 100,
		72: 50,
		67: 20,
		55: 10,
	}

	for temp, target := range expectedTempToTarget {
		// WHEN
		result, err := curve.Evaluate(temp, 0)
		if err != nil {
			assert.Fail(t, err.Error())
		}

		// THEN
		assert.Equal(t, target, result)
	}
}

func TestStepCurveLowerLadder(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createDefaultStepCurveConfig("step"))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// WHEN
	// cooled down to 40 degrees while the fan is still running
	result, err := curve.Evaluate(40, 10)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	assert.Equal(t, 0.0, result)
}

func TestStepCurveLowersGradually(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createDefaultStepCurveConfig("step"))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// WHEN
	// full throttle, then the temperature settles at 70 degrees
	result, err := curve.Evaluate(70, 100)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	assert.Equal(t, 60.0, result)
}

func TestStepCurveHoldsDutyBetweenThresholds(t *testing.T) {
	// GIVEN
	stepCurve := &StepCurve{Config: createDefaultStepCurveConfig("step")}

	// WHEN
	// 48 degrees is below every raise threshold and above every
	// matching lower threshold for a duty cycle of 10
	target, ok := stepCurve.Recommend(48, 10)

	// THEN
	assert.False(t, ok)
	assert.Equal(t, 0.0, target)

	// WHEN
	value, err := stepCurve.Evaluate(48, 10)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	// the applied duty cycle is kept
	assert.Equal(t, 10.0, value)
}

func TestStepCurveHysteresis(t *testing.T) {
	// GIVEN
	stepCurve := &StepCurve{Config: createDefaultStepCurveConfig("step")}

	// WHEN
	// heating up to 66 degrees switches the fan on
	raised, ok := stepCurve.Recommend(66, 0)

	// THEN
	assert.True(t, ok)
	assert.Equal(t, 20.0, raised)

	// WHEN
	// cooling back down to 60 degrees does not switch it off again
	_, ok = stepCurve.Recommend(60, raised)

	// THEN
	assert.False(t, ok)
}

func TestStepCurveRecommendationIsDeterministic(t *testing.T) {
	// GIVEN
	stepCurve := &StepCurve{Config: createDefaultStepCurveConfig("step")}

	// WHEN
	first, firstOk := stepCurve.Recommend(67, 30)
	second, secondOk := stepCurve.Recommend(67, 30)

	// THEN
	assert.Equal(t, first, second)
	assert.Equal(t, firstOk, secondOk)
}
