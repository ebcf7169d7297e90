package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/curvelab/fancurve/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initOutput string

const starterHeader = `# fancurve configuration
`

// starterOptions is appended commented out so the generated file
// documents every knob without overriding the built-in defaults.
const starterOptions = `
#preview:
#  curves:
#    - sigmoid
#  graphWidth: 100
#  graphHeight: 15

#sampling:
#  minTemp: 0
#  maxTemp: 99

#simulation:
#  curve: step
#  tickRate: 200ms
#  duration: 30s
#  smoothingWindow: 5
#  profile:
#    type: triangle
#    minTemp: 25
#    maxTemp: 95
#    period: 60s

#api:
#  enabled: false
#  host: localhost
#  port: 9411

#statistics:
#  enabled: false
#  port: 9412
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long:  `Writes the built-in default curves to a configuration file as a starting point for tweaking.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(initOutput); err == nil {
			return errors.New(fmt.Sprintf("Refusing to overwrite existing file: %s", initOutput))
		}

		marshalled, err := yaml.Marshal(map[string]interface{}{
			"curves": configuration.DefaultCurveConfigs(),
		})
		if err != nil {
			return err
		}

		content := starterHeader + string(marshalled) + starterOptions
		if err = util.WriteFileAtomic(initOutput, []byte(content)); err != nil {
			return err
		}

		ui.Success("Wrote configuration to %s", initOutput)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(
		&initOutput,
		"output", "o",
		"fancurve.yaml",
		"Path of the configuration file to write",
	)

	Command.AddCommand(initCmd)
}
