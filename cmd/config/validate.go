package config

import (
	"os"

	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath := configuration.DetectConfigFile()
		if configPath == "" {
			ui.Info("No configuration file found, validating built-in defaults")
		} else {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()

		if err := configuration.Validate(); err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		effective, err := yaml.Marshal(configuration.CurrentConfig)
		if err == nil {
			ui.Debug("Effective configuration:\n%s", string(effective))
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
