package configuration

import "time"

const (
	ProfileTypeTriangle = "triangle"
	ProfileTypeSine     = "sine"
	ProfileTypeConstant = "constant"
	ProfileTypeTrace    = "trace"
)

// ProfileConfig describes the synthetic temperature signal a
// simulation is driven by.
type ProfileConfig struct {
	Type string `json:"type" yaml:"type"`
	// MinTemp and MaxTemp bound the generated signal. The constant
	// profile holds the midpoint of the two.
	MinTemp float64 `json:"minTemp" yaml:"minTemp"`
	MaxTemp float64 `json:"maxTemp" yaml:"maxTemp"`
	// Period is the duration of one full oscillation of the triangle
	// and sine profiles.
	Period time.Duration `json:"period" yaml:"period"`
	// File points to a CSV file with one temperature per row, replayed
	// one row per tick. Only used by the trace profile.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

type SimulationConfig struct {
	// Curve is the id of the curve definition the simulation drives.
	Curve    string        `json:"curve" yaml:"curve"`
	TickRate time.Duration `json:"tickRate" yaml:"tickRate"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	// SmoothingWindow is the number of ticks the temperature moving
	// average is calculated over before it is fed into the curve.
	SmoothingWindow int           `json:"smoothingWindow" yaml:"smoothingWindow"`
	Profile         ProfileConfig `json:"profile" yaml:"profile"`
}
