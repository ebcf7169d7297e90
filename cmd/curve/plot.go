package curve

import (
	"github.com/curvelab/fancurve/cmd/global"
	"github.com/curvelab/fancurve/internal"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/spf13/cobra"
)

var (
	plotCurves []string
	plotOutput string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot one or more curves, to console or to an image file",
	Long: `Sweeps the selected curves over the configured temperature range and
renders them as a single chart. Without --output the chart is printed
to the console, with --output it is written as png, svg or pdf.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadConfig()

		curveIds := plotCurves
		if len(curveIds) <= 0 && curveId != "" {
			curveIds = []string{curveId}
		}
		if len(curveIds) <= 0 {
			curveIds = configuration.CurrentConfig.Preview.Curves
		}

		return internal.RenderPreview(curveIds, plotOutput, !global.NoColor)
	},
}

func init() {
	plotCmd.Flags().StringArrayVar(
		&plotCurves,
		"curve",
		[]string{},
		"Curve ID to plot, can be given multiple times",
	)
	plotCmd.Flags().StringVarP(
		&plotOutput,
		"output", "o",
		"",
		"Write the chart to this file instead of the console",
	)

	Command.AddCommand(plotCmd)
}
