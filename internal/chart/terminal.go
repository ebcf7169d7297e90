package chart

import (
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/sampling"
	"github.com/guptarohit/asciigraph"
)

const terminalCaption = "duty cycle (%) / temperature (°C)"

// colors are assigned to series in render order
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Yellow,
}

// Terminal renders a single series as an ascii chart.
func Terminal(series sampling.Series, config configuration.PreviewConfig) string {
	return asciigraph.Plot(
		series.Values(),
		asciigraph.Height(config.GraphHeight),
		asciigraph.Width(config.GraphWidth),
		asciigraph.Caption(terminalCaption),
	)
}

// Live renders the temperature and duty cycle traces of a running
// simulation, windowed to the most recent samples.
func Live(temps []float64, smoothed []float64, duties []float64, config configuration.PreviewConfig, color bool) string {
	temps = tail(temps, config.GraphWidth)
	smoothed = tail(smoothed, config.GraphWidth)
	duties = tail(duties, config.GraphWidth)

	if len(temps) == 0 {
		return "gathering samples..."
	}

	tempOptions := []asciigraph.Option{
		asciigraph.Height(config.GraphHeight),
		asciigraph.Width(config.GraphWidth),
		asciigraph.Caption("temperature (°C)"),
		asciigraph.SeriesLegends("temp", "smoothed"),
	}
	if color {
		tempOptions = append(tempOptions, asciigraph.SeriesColors(seriesColors[0], seriesColors[1]))
	}
	tempGraph := asciigraph.PlotMany([][]float64{temps, smoothed}, tempOptions...)

	dutyOptions := []asciigraph.Option{
		asciigraph.Height(config.GraphHeight),
		asciigraph.Width(config.GraphWidth),
		asciigraph.Caption("duty cycle (%)"),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
	}
	if color {
		dutyOptions = append(dutyOptions, asciigraph.SeriesColors(seriesColors[2]))
	}
	dutyGraph := asciigraph.Plot(duties, dutyOptions...)

	return tempGraph + "\n\n" + dutyGraph
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// TerminalMany renders the given series into a single chart, one line
// and legend entry per curve.
func TerminalMany(seriesList []sampling.Series, config configuration.PreviewConfig, color bool) string {
	data := make([][]float64, 0, len(seriesList))
	legends := make([]string, 0, len(seriesList))
	for _, series := range seriesList {
		data = append(data, series.Values())
		legends = append(legends, series.CurveId)
	}

	options := []asciigraph.Option{
		asciigraph.Height(config.GraphHeight),
		asciigraph.Width(config.GraphWidth),
		asciigraph.Caption(terminalCaption),
		asciigraph.SeriesLegends(legends...),
	}
	if color {
		colors := make([]asciigraph.AnsiColor, 0, len(seriesList))
		for idx := range seriesList {
			colors = append(colors, seriesColors[idx%len(seriesColors)])
		}
		options = append(options, asciigraph.SeriesColors(colors...))
	}

	return asciigraph.PlotMany(data, options...)
}
