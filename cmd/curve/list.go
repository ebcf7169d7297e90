package curve

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/curvelab/fancurve/cmd/global"
	"github.com/curvelab/fancurve/internal/chart"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/curves"
	"github.com/curvelab/fancurve/internal/sampling"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured curve(s) to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		loadConfig()

		if curveId != "" {
			if _, err = getCurveConfig(curveId, configuration.CurrentConfig.Curves); err != nil {
				return err
			}
		}

		printed := 0
		for _, curveConf := range configuration.CurrentConfig.Curves {
			if curveId != "" && curveConf.ID != curveId {
				continue
			}
			if printed > 0 {
				ui.Printfln("")
				ui.Printfln("")
			}
			printed++

			curve, ok := curves.GetDutyCurve(curveConf.ID)
			if !ok {
				continue
			}

			// print table
			tab := table.Table{
				Headers: []string{"ID", "Type", "Parameters"},
				Rows: [][]string{
					{curveConf.ID, curveConf.Type(), describeCurve(curveConf)},
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

			series, err := sampling.SweepCurve(curve, configuration.CurrentConfig.Sampling)
			if err != nil {
				return err
			}
			ui.Printfln(chart.Terminal(series, configuration.CurrentConfig.Preview))
		}

		return nil
	},
}

func describeCurve(config configuration.CurveConfig) string {
	switch {
	case config.Step != nil:
		return fmt.Sprintf("%d raise / %d lower rules", len(config.Step.Raise), len(config.Step.Lower))
	case config.Linear != nil:
		if config.Linear.Steps != nil {
			return fmt.Sprintf("%d interpolation steps", len(config.Linear.Steps))
		}
		return fmt.Sprintf("%d..%d °C", config.Linear.MinTemp, config.Linear.MaxTemp)
	case config.Sigmoid != nil:
		description := fmt.Sprintf("midpoints %.0f / %.0f °C", config.Sigmoid.LowerMidpoint, config.Sigmoid.UpperMidpoint)
		if config.Sigmoid.Centered {
			description += ", centered"
		}
		return description
	case config.Function != nil:
		return fmt.Sprintf("%s of %s", config.Function.Type, strings.Join(config.Function.Curves, ", "))
	}
	return ""
}

func init() {
	Command.AddCommand(listCmd)
}
