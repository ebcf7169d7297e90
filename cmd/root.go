package cmd

import (
	"fmt"
	"os"

	"github.com/curvelab/fancurve/cmd/config"
	"github.com/curvelab/fancurve/cmd/curve"
	"github.com/curvelab/fancurve/cmd/global"
	"github.com/curvelab/fancurve/internal"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fancurve",
	Short: "A tool to design and compare fan speed control curves.",
	Long: `fancurve evaluates fan speed control curves over a temperature sweep
and renders them as charts, without touching any hardware.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configPath := configuration.DetectConfigFile()
		if configPath == "" {
			ui.Info("No configuration file found, using built-in defaults")
		} else {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()
		err := configuration.Validate()
		if err != nil {
			ui.FatalWithoutStacktrace(err.Error())
		}

		if _, err = internal.RegisterCurves(); err != nil {
			ui.FatalWithoutStacktrace(err.Error())
		}

		err = internal.RenderPreview(configuration.CurrentConfig.Preview.Curves, "", !global.NoColor)
		if err != nil {
			ui.FatalWithoutStacktrace(err.Error())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is fancurve.yaml in ., $HOME or /etc/fancurve)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(curve.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("curve", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("fancurve")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		// flags are parsed at this point, so subcommands that skip
		// setupUi still honor --verbose
		ui.SetDebugEnabled(global.Verbose)
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
