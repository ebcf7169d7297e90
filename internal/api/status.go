package api

import (
	"net/http"
	"sync"

	"github.com/curvelab/fancurve/internal/simulation"
	"github.com/labstack/echo/v4"
)

var (
	runnerMu      sync.Mutex
	currentRunner *simulation.Runner
)

// RegisterRunner makes the given simulation available on the status
// endpoint.
func RegisterRunner(runner *simulation.Runner) {
	runnerMu.Lock()
	defer runnerMu.Unlock()
	currentRunner = runner
}

func registerStatusEndpoints(rest *echo.Echo) {
	rest.GET("/status/", getStatus)
}

func getStatus(c echo.Context) error {
	runnerMu.Lock()
	runner := currentRunner
	runnerMu.Unlock()

	if runner == nil {
		return c.JSONPretty(http.StatusNotFound, &Result{
			Name:    "Not running",
			Message: "No simulation is running",
		}, indentationChar)
	}

	return c.JSONPretty(http.StatusOK, runner.Status(), indentationChar)
}
