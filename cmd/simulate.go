package cmd

import (
	"bytes"
	"strconv"
	"time"

	"github.com/curvelab/fancurve/cmd/global"
	"github.com/curvelab/fancurve/internal"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/simulation"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/curvelab/fancurve/internal/util"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var (
	simulateCurve    string
	simulateDuration time.Duration
	simulateLive     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a curve against a synthetic temperature profile",
	Long: `Feeds a synthetic temperature profile through the control loop tick by tick,
applying temperature smoothing and hysteresis exactly like a live controller would.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		configPath := configuration.DetectConfigFile()
		if configPath == "" {
			ui.Info("No configuration file found, using built-in defaults")
		} else {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()

		// flag overrides are applied before validation so that
		// an unknown curve id is caught there
		if simulateCurve != "" {
			configuration.CurrentConfig.Simulation.Curve = simulateCurve
		}
		if cmd.Flags().Changed("duration") {
			configuration.CurrentConfig.Simulation.Duration = simulateDuration
		}

		err := configuration.Validate()
		if err != nil {
			return err
		}

		simulationConfig := configuration.CurrentConfig.Simulation
		ui.Info("Simulating curve %s over a %s profile for %s",
			simulationConfig.Curve, simulationConfig.Profile.Type, simulationConfig.Duration)

		runner, err := internal.RunSimulation(simulateLive, !global.NoColor)
		if err != nil {
			return err
		}

		printSummary(runner)
		return nil
	},
}

func printSummary(runner *simulation.Runner) {
	status := runner.Status()
	_, _, duties := runner.Traces()
	avgDuty := 0.0
	if len(duties) > 0 {
		avgDuty = util.Avg(duties)
	}

	tab := table.Table{
		Headers: []string{"", ""},
		Rows: [][]string{
			{"Samples", strconv.Itoa(status.Samples)},
			{"Duty changes", strconv.Itoa(status.DutyChanges)},
			{"Min duty", strconv.FormatFloat(status.MinDuty, 'f', 1, 64)},
			{"Max duty", strconv.FormatFloat(status.MaxDuty, 'f', 1, 64)},
			{"Avg duty", strconv.FormatFloat(avgDuty, 'f', 1, 64)},
			{"Final duty", strconv.FormatFloat(status.Duty, 'f', 1, 64)},
		},
	}
	var buf bytes.Buffer
	tableErr := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if tableErr != nil {
		panic(tableErr)
	}
	tableString := buf.String()
	ui.Printfln(tableString)
}

func init() {
	simulateCmd.Flags().StringVar(
		&simulateCurve,
		"curve",
		"",
		"Curve ID to simulate (defaults to the configured simulation curve)",
	)
	simulateCmd.Flags().DurationVarP(
		&simulateDuration,
		"duration", "d",
		0,
		"How long to run the simulation for",
	)
	simulateCmd.Flags().BoolVarP(
		&simulateLive,
		"live", "l",
		false,
		"Render a live graph of the simulation while it runs",
	)

	rootCmd.AddCommand(simulateCmd)
}
