package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/curves"
	"github.com/stretchr/testify/assert"
)

func setupBackendConfig(t *testing.T) {
	configuration.CurrentConfig = configuration.Configuration{
		Curves: configuration.DefaultCurveConfigs(),
		Sampling: configuration.SamplingConfig{
			MinTemp: 0,
			MaxTemp: 99,
		},
		Preview: configuration.PreviewConfig{
			Curves:      []string{"sigmoid"},
			GraphWidth:  40,
			GraphHeight: 10,
		},
	}

	t.Cleanup(func() {
		for _, id := range curves.DutyCurveMap.Keys() {
			curves.DutyCurveMap.Remove(id)
		}
	})
}

func TestRegisterCurves(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)

	// WHEN
	curveList, err := RegisterCurves()

	// THEN
	assert.NoError(t, err)
	assert.Len(t, curveList, 3)
	for _, id := range []string{"step", "linear", "sigmoid"} {
		_, ok := curves.GetDutyCurve(id)
		assert.True(t, ok)
	}
}

func TestRegisterCurvesWithBrokenConfig(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)
	configuration.CurrentConfig.Curves = []configuration.CurveConfig{
		{ID: "broken"},
	}

	// WHEN
	_, err := RegisterCurves()

	// THEN
	assert.EqualError(t, err, "unable to process curve configuration: broken")
}

func TestResolveCurves(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)
	_, err := RegisterCurves()
	assert.NoError(t, err)

	// WHEN
	curveList, err := ResolveCurves([]string{"linear", "step"})

	// THEN
	assert.NoError(t, err)
	assert.Len(t, curveList, 2)
	assert.Equal(t, "linear", curveList[0].GetId())
	assert.Equal(t, "step", curveList[1].GetId())
}

func TestResolveCurvesWithUnknownId(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)
	_, err := RegisterCurves()
	assert.NoError(t, err)

	// WHEN
	_, err = ResolveCurves([]string{"missing"})

	// THEN
	assert.EqualError(t, err, "no curve registered with id: missing")
}

func TestExportSeriesToFile(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)
	_, err := RegisterCurves()
	assert.NoError(t, err)
	filePath := filepath.Join(t.TempDir(), "series.csv")

	// WHEN
	err = ExportSeries([]string{"linear"}, "csv", filePath)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "temp,linear")
}

func TestRenderPreviewToFile(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)
	_, err := RegisterCurves()
	assert.NoError(t, err)
	filePath := filepath.Join(t.TempDir(), "chart.png")

	// WHEN
	err = RenderPreview([]string{"linear", "sigmoid"}, filePath, false)

	// THEN
	assert.NoError(t, err)
	info, err := os.Stat(filePath)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderPreviewWithUnknownCurve(t *testing.T) {
	// GIVEN
	setupBackendConfig(t)
	_, err := RegisterCurves()
	assert.NoError(t, err)

	// WHEN
	err = RenderPreview([]string{"missing"}, "", false)

	// THEN
	assert.EqualError(t, err, "no curve registered with id: missing")
}
