package util

import "github.com/asecurityteam/rolling"

// CreateRollingWindow returns a point policy window of the given size,
// used for smoothing temperature samples over time.
func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}
