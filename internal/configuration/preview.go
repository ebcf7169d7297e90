package configuration

// SamplingConfig defines the temperature range curves are evaluated
// over when they are rendered or exported.
type SamplingConfig struct {
	MinTemp int `json:"minTemp" yaml:"minTemp"`
	MaxTemp int `json:"maxTemp" yaml:"maxTemp"`
}

// PreviewConfig defines which curves are rendered when no explicit
// selection is given, and the dimensions of the terminal graph.
type PreviewConfig struct {
	Curves      []string `json:"curves" yaml:"curves"`
	GraphWidth  int      `json:"graphWidth" yaml:"graphWidth"`
	GraphHeight int      `json:"graphHeight" yaml:"graphHeight"`
}
