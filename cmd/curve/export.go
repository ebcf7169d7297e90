package curve

import (
	"github.com/curvelab/fancurve/internal"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	exportCurves []string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sampled curve series as csv or json",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOutput == "" {
			// the series goes to stdout, keep it free of styled output
			pterm.DisableOutput()
		}

		loadConfig()

		curveIds := exportCurves
		if len(curveIds) <= 0 && curveId != "" {
			curveIds = []string{curveId}
		}
		if len(curveIds) <= 0 {
			for _, curveConf := range configuration.CurrentConfig.Curves {
				curveIds = append(curveIds, curveConf.ID)
			}
		}

		return internal.ExportSeries(curveIds, exportFormat, exportOutput)
	},
}

func init() {
	exportCmd.Flags().StringArrayVar(
		&exportCurves,
		"curve",
		[]string{},
		"Curve ID to export, can be given multiple times",
	)
	exportCmd.Flags().StringVarP(
		&exportFormat,
		"format", "f",
		"csv",
		"Export format, one of: csv | json",
	)
	exportCmd.Flags().StringVarP(
		&exportOutput,
		"output", "o",
		"",
		"Write the series to this file instead of stdout",
	)

	Command.AddCommand(exportCmd)
}
