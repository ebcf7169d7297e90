package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateInterpolatedCurveValue(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[float64]float64{
		0:     0.0,
		40.0:  0.0,
		50.0:  25.0,
		60.0:  50.0,
		80.0:  100.0,
		100.0: 100.0,
	}
	steps := map[int]float64{
		40: 0,
		60: 50,
		80: 100,
	}
	interpolationType := InterpolationTypeLinear

	for input, output := range expectedInputOutput {
		// WHEN
		result := CalculateInterpolatedCurveValue(steps, interpolationType, input)

		// THEN
		assert.Equal(t, output, result)
	}
}

func TestRatio(t *testing.T) {
	// GIVEN
	a := 0.0
	b := 100.0
	c := 50.0

	expected := 0.5

	// WHEN
	result := Ratio(c, a, b)

	// THEN
	assert.Equal(t, expected, result)
}

func TestCoerce(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[float64]float64{
		-10.0: 0.0,
		0.0:   0.0,
		50.0:  50.0,
		100.0: 100.0,
		120.0: 100.0,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result := Coerce(input, 0, 100)

		// THEN
		assert.Equal(t, output, result)
	}
}

func TestAvg(t *testing.T) {
	// GIVEN
	values := []float64{10, 20, 60}

	// WHEN
	result := Avg(values)

	// THEN
	assert.Equal(t, 30.0, result)
}
