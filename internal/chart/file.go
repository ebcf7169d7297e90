package chart

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/curvelab/fancurve/internal/sampling"
	"github.com/curvelab/fancurve/internal/util"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var fileFormats = []string{"png", "svg", "pdf"}

// WriteFile renders the given series into a single line chart and
// writes it to path. The image format is derived from the file
// extension.
func WriteFile(seriesList []sampling.Series, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(fileFormats, format) {
		return fmt.Errorf("unsupported chart file format: %s, use one of: png | svg | pdf", format)
	}

	p := plot.New()
	p.Title.Text = "Fan Curves"
	p.X.Label.Text = "temperature (°C)"
	p.Y.Label.Text = "duty cycle (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Legend.Top = true

	for idx, series := range seriesList {
		pts := make(plotter.XYs, len(series.Samples))
		for i, sample := range series.Samples {
			pts[i].X = sample.Temp
			pts[i].Y = sample.Duty
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.Color = plotutil.Color(idx)

		p.Add(line)
		p.Legend.Add(series.CurveId, line)
	}

	writerTo, err := p.WriterTo(20*vg.Centimeter, 12*vg.Centimeter, format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err = writerTo.WriteTo(&buf); err != nil {
		return err
	}

	return util.WriteFileAtomic(path, buf.Bytes())
}
