package configuration

import (
	"errors"
	"os"
	"time"

	"github.com/curvelab/fancurve/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	Curves []CurveConfig `json:"curves" yaml:"curves"`

	Sampling SamplingConfig `json:"sampling" yaml:"sampling"`
	Preview  PreviewConfig  `json:"preview" yaml:"preview"`

	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	Api        ApiConfig        `json:"api" yaml:"api"`
	Statistics StatisticsConfig `json:"statistics" yaml:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fancurve")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fancurve/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("sampling.minTemp", 0)
	viper.SetDefault("sampling.maxTemp", 99)

	viper.SetDefault("preview.graphWidth", 100)
	viper.SetDefault("preview.graphHeight", 15)

	viper.SetDefault("simulation.tickRate", 200*time.Millisecond)
	viper.SetDefault("simulation.duration", 30*time.Second)
	viper.SetDefault("simulation.smoothingWindow", 5)
	viper.SetDefault("simulation.profile.type", ProfileTypeTriangle)
	viper.SetDefault("simulation.profile.minTemp", 25.0)
	viper.SetDefault("simulation.profile.maxTemp", 95.0)
	viper.SetDefault("simulation.profile.period", 60*time.Second)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9411)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9412)
}

// DetectConfigFile searches the configured paths for a config file.
// Returns the path of the file in use, or an empty string when no
// config file exists and the built-in defaults apply.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return ""
		}
		// a config file exists but could not be read, so we fail here
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			stepsMapHookFunc(),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	applyDefaults(&CurrentConfig)
}

// applyDefaults fills in configuration values that depend on other
// parts of the configuration and can therefore not be expressed as
// static defaults.
func applyDefaults(config *Configuration) {
	if len(config.Curves) == 0 {
		config.Curves = DefaultCurveConfigs()
	}

	for i := range config.Curves {
		curveConfig := &config.Curves[i]
		if curveConfig.Step != nil && len(curveConfig.Step.Raise) == 0 && len(curveConfig.Step.Lower) == 0 {
			curveConfig.Step.Raise = DefaultStepRaiseRules()
			curveConfig.Step.Lower = DefaultStepLowerRules()
		}
		if curveConfig.Linear != nil && curveConfig.Linear.Steps == nil &&
			curveConfig.Linear.MinTemp == 0 && curveConfig.Linear.MaxTemp == 0 {
			curveConfig.Linear.MinTemp = DefaultLinearMinTemp
			curveConfig.Linear.MaxTemp = DefaultLinearMaxTemp
		}
		if curveConfig.Sigmoid != nil &&
			curveConfig.Sigmoid.LowerMidpoint == 0 && curveConfig.Sigmoid.UpperMidpoint == 0 {
			curveConfig.Sigmoid.LowerMidpoint = DefaultSigmoidLowerMidpoint
			curveConfig.Sigmoid.UpperMidpoint = DefaultSigmoidUpperMidpoint
		}
	}

	if len(config.Preview.Curves) == 0 {
		config.Preview.Curves = []string{preferredCurveId(config.Curves, SigmoidCurveType)}
	}
	if len(config.Simulation.Curve) == 0 {
		config.Simulation.Curve = preferredCurveId(config.Curves, StepCurveType)
	}
}

// preferredCurveId returns the id of the first curve of the given
// type, falling back to the first configured curve.
func preferredCurveId(curves []CurveConfig, preferredType string) string {
	for _, curveConfig := range curves {
		if curveConfig.Type() == preferredType {
			return curveConfig.ID
		}
	}
	return curves[0].ID
}
