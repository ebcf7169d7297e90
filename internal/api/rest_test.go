package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/curves"
	"github.com/curvelab/fancurve/internal/simulation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func request(rest *echo.Echo, method string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	rest.ServeHTTP(rec, req)
	return rec
}

func TestRestService(t *testing.T) {
	// GIVEN
	curve, err := curves.NewDutyCurve(configuration.CurveConfig{
		ID: "api_linear",
		Linear: &configuration.LinearCurveConfig{
			MinTemp: 30,
			MaxTemp: 80,
		},
	})
	if err != nil {
		assert.Fail(t, err.Error())
	}
	curves.DutyCurveMap.Set(curve.GetId(), curve)

	rest := CreateRestService()

	// WHEN / THEN
	rec := request(rest, http.MethodGet, "/alive/")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(rest, http.MethodGet, "/curve/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_linear")

	rec = request(rest, http.MethodGet, "/curve/api_linear/")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(rest, http.MethodGet, "/curve/unknown/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No item with id 'unknown' found")

	rec = request(rest, http.MethodPost, "/curve/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "not yet supported")

	rec = request(rest, http.MethodGet, "/status/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No simulation is running")

	runner, err := simulation.NewRunner(configuration.SimulationConfig{
		Curve:           "api_linear",
		TickRate:        200 * time.Millisecond,
		Duration:        30 * time.Second,
		SmoothingWindow: 1,
		Profile: configuration.ProfileConfig{
			Type:    configuration.ProfileTypeConstant,
			MinTemp: 50,
			MaxTemp: 70,
		},
	})
	if err != nil {
		assert.Fail(t, err.Error())
	}
	RegisterRunner(runner)

	rec = request(rest, http.MethodGet, "/status/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"samples\"")

	rec = request(rest, http.MethodGet, "/metrics/")
	assert.Equal(t, http.StatusOK, rec.Code)
}
