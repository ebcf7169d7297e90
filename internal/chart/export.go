package chart

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/curvelab/fancurve/internal/sampling"
	"github.com/curvelab/fancurve/internal/util"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportCSV writes the series as CSV, one row per temperature with one
// duty cycle column per curve. Held samples are written as empty
// cells.
func ExportCSV(w io.Writer, seriesList []sampling.Series) error {
	if len(seriesList) == 0 {
		return errors.New("no series to export")
	}

	header := []string{"temp"}
	sampleCount := len(seriesList[0].Samples)
	for _, series := range seriesList {
		if len(series.Samples) != sampleCount {
			return fmt.Errorf("series length mismatch: %s has %d samples, want %d", series.CurveId, len(series.Samples), sampleCount)
		}
		header = append(header, series.CurveId)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := 0; i < sampleCount; i++ {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(seriesList[0].Samples[i].Temp, 'f', -1, 64))
		for _, series := range seriesList {
			sample := series.Samples[i]
			if sample.Held {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(sample.Duty, 'f', -1, 64))
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportJSON writes the series as indented json.
func ExportJSON(w io.Writer, seriesList []sampling.Series) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(seriesList)
}

// ExportFile writes the series to path in the given format.
func ExportFile(path string, format string, seriesList []sampling.Series) error {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatCSV:
		err = ExportCSV(&buf, seriesList)
	case FormatJSON:
		err = ExportJSON(&buf, seriesList)
	default:
		return fmt.Errorf("unsupported export format: %s, use one of: csv | json", format)
	}
	if err != nil {
		return err
	}

	return util.WriteFileAtomic(path, buf.Bytes())
}
