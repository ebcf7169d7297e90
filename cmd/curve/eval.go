package curve

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/curvelab/fancurve/internal/curves"
	"github.com/curvelab/fancurve/internal/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	evalTemp float64
	evalDuty float64
	evalRaw  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a curve at a given temperature",
	Long: `Prints the duty cycle a curve recommends for a single temperature,
suitable for piping into scripts. Step curves print "no change" when
no rule matches the given temperature and applied duty cycle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// this command is intended to be used in scripts, so we disable
		// styled output to get an easily parseable result
		pterm.DisableOutput()

		if curveId == "" {
			return errors.New("Please specify a curve id using the -i flag")
		}

		loadConfig()

		curve, ok := curves.GetDutyCurve(curveId)
		if !ok {
			return errors.New(fmt.Sprintf("No curve with id found: %s", curveId))
		}

		if recommender, isRecommender := curve.(curves.Recommender); isRecommender {
			target, changed := recommender.Recommend(evalTemp, evalDuty)
			if !changed {
				fmt.Printf("no change")
				return nil
			}
			printDuty(target)
			return nil
		}

		target, err := curve.Evaluate(evalTemp, evalDuty)
		if err != nil {
			return err
		}
		printDuty(target)
		return nil
	},
}

func printDuty(value float64) {
	if evalRaw {
		fmt.Printf("%d", util.DutyToRaw(value))
	} else {
		fmt.Printf("%s", strconv.FormatFloat(value, 'f', -1, 64))
	}
}

func init() {
	evalCmd.Flags().Float64VarP(
		&evalTemp,
		"temp", "t",
		0,
		"Temperature in °C to evaluate the curve at",
	)
	_ = evalCmd.MarkFlagRequired("temp")
	evalCmd.Flags().Float64VarP(
		&evalDuty,
		"duty", "d",
		0,
		"Currently applied duty cycle in percent",
	)
	evalCmd.Flags().BoolVarP(
		&evalRaw,
		"raw", "r",
		false,
		"Print the duty cycle as a raw 0..255 register value",
	)

	Command.AddCommand(evalCmd)
}
