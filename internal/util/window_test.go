package util

import (
	"testing"

	"github.com/asecurityteam/rolling"
	"github.com/stretchr/testify/assert"
)

func TestCreateRollingWindow(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(1)
	window.Append(2)
	window.Append(3)

	// WHEN
	average := window.Reduce(rolling.Avg)

	// THEN
	assert.Equal(t, 2.0, average)
}

func TestRollingWindowDropsOldestValue(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(1)
	window.Append(2)
	window.Append(3)

	// WHEN
	window.Append(10)
	average := window.Reduce(rolling.Avg)

	// THEN
	assert.Equal(t, 5.0, average)
}
