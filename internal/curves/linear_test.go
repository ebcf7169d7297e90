package curves

import (
	"testing"

	"github.com/curvelab/fancurve/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestLinearCurveWithMinMax(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createLinearCurveConfig("linear", 30, 80))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	expectedTempToDuty := map[float64]float64{
		30: 0,
		55: 50,
		80: 100,
	}

	for temp, duty := range expectedTempToDuty {
		// WHEN
		result, err := curve.Evaluate(temp, 0)
		if err != nil {
			assert.Fail(t, err.Error())
		}

		// THEN
		assert.InDelta(t, duty, result, 0.0001)
	}
}

func TestLinearCurveClampsOutOfRangeTemps(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createLinearCurveConfig("linear", 30, 80))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// WHEN
	below, err := curve.Evaluate(10, 0)
	if err != nil {
		assert.Fail(t, err.Error())
	}
	above, err := curve.Evaluate(95, 0)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	assert.Equal(t, 0.0, below)
	assert.Equal(t, 100.0, above)
}

func TestLinearCurveMatchesClampedLine(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createLinearCurveConfig("linear", 30, 80))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	for temp := 0; temp < 100; temp++ {
		// WHEN
		result, err := curve.Evaluate(float64(temp), 0)
		if err != nil {
			assert.Fail(t, err.Error())
		}

		// THEN
		// the 30..80 ramp is the line 2*t - 60, clamped to [0..100]
		expected := util.Coerce(2*float64(temp)-60, 0, 100)
		assert.InDelta(t, expected, result, 0.0001)
	}
}

func TestLinearCurveWithSteps(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createLinearCurveConfigWithSteps("linear", map[int]float64{
		40: 0,
		60: 50,
		80: 100,
	}))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	expectedTempToDuty := map[float64]float64{
		30: 0,
		50: 25,
		60: 50,
		90: 100,
	}

	for temp, duty := range expectedTempToDuty {
		// WHEN
		result, err := curve.Evaluate(temp, 0)
		if err != nil {
			assert.Fail(t, err.Error())
		}

		// THEN
		assert.InDelta(t, duty, result, 0.0001)
	}
}

func TestLinearCurveIgnoresAppliedDuty(t *testing.T) {
	// GIVEN
	curve, err := NewDutyCurve(createLinearCurveConfig("linear", 30, 80))
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// WHEN
	idle, err := curve.Evaluate(55, 0)
	if err != nil {
		assert.Fail(t, err.Error())
	}
	spinning, err := curve.Evaluate(55, 100)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	assert.Equal(t, idle, spinning)
}
