package curve

import (
	"errors"
	"fmt"

	"github.com/curvelab/fancurve/internal"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/spf13/cobra"
)

var curveId string

var Command = &cobra.Command{
	Use:              "curve",
	Short:            "Curve related commands",
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&curveId,
		"id", "i",
		"",
		"Curve ID as specified in the config",
	)
}

// loadConfig loads and validates the configuration and registers all
// configured curves.
func loadConfig() {
	configPath := configuration.DetectConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()

	if err := configuration.Validate(); err != nil {
		ui.FatalWithoutStacktrace(err.Error())
	}

	if _, err := internal.RegisterCurves(); err != nil {
		ui.FatalWithoutStacktrace(err.Error())
	}
}

func getCurveConfig(id string, curves []configuration.CurveConfig) (*configuration.CurveConfig, error) {
	availableCurveIds := []string{}
	for _, curveConf := range curves {
		availableCurveIds = append(availableCurveIds, curveConf.ID)
		if id == curveConf.ID {
			return &curveConf, nil
		}
	}

	return nil, errors.New(fmt.Sprintf("No curve with id found: %s, options: %s", id, availableCurveIds))
}
