package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curvelab/fancurve/internal/api"
	"github.com/curvelab/fancurve/internal/chart"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/curves"
	"github.com/curvelab/fancurve/internal/sampling"
	"github.com/curvelab/fancurve/internal/simulation"
	"github.com/curvelab/fancurve/internal/statistics"
	"github.com/curvelab/fancurve/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterCurves builds all configured curves and registers them in
// the curve registry.
func RegisterCurves() ([]curves.DutyCurve, error) {
	var curveList []curves.DutyCurve
	for _, config := range configuration.CurrentConfig.Curves {
		curve, err := curves.NewDutyCurve(config)
		if err != nil {
			return nil, fmt.Errorf("unable to process curve configuration: %s", config.ID)
		}
		curveList = append(curveList, curve)
		curves.DutyCurveMap.Set(config.ID, curve)
	}

	return curveList, nil
}

// ResolveCurves maps curve ids to their registered curves, in the
// given order.
func ResolveCurves(curveIds []string) ([]curves.DutyCurve, error) {
	var curveList []curves.DutyCurve
	for _, curveId := range curveIds {
		curve, ok := curves.GetDutyCurve(curveId)
		if !ok {
			return nil, fmt.Errorf("no curve registered with id: %s", curveId)
		}
		curveList = append(curveList, curve)
	}

	return curveList, nil
}

// RenderPreview sweeps the given curves and renders them as a single
// chart, to the terminal or, when output is set, to an image file.
func RenderPreview(curveIds []string, output string, color bool) error {
	curveList, err := ResolveCurves(curveIds)
	if err != nil {
		return err
	}

	seriesList, err := sampling.Sweep(curveList, configuration.CurrentConfig.Sampling)
	if err != nil {
		return err
	}

	if output == "" {
		ui.Printfln(chart.TerminalMany(seriesList, configuration.CurrentConfig.Preview, color))
		return nil
	}

	if err = chart.WriteFile(seriesList, output); err != nil {
		return err
	}
	ui.Success("Chart written to %s", output)
	return nil
}

// ExportSeries sweeps the given curves and writes the sampled series
// to stdout or, when output is set, to a file.
func ExportSeries(curveIds []string, format string, output string) error {
	curveList, err := ResolveCurves(curveIds)
	if err != nil {
		return err
	}

	seriesList, err := sampling.Sweep(curveList, configuration.CurrentConfig.Sampling)
	if err != nil {
		return err
	}

	if output != "" {
		if err = chart.ExportFile(output, format, seriesList); err != nil {
			return err
		}
		ui.Success("Series written to %s", output)
		return nil
	}

	switch format {
	case chart.FormatCSV:
		return chart.ExportCSV(os.Stdout, seriesList)
	case chart.FormatJSON:
		return chart.ExportJSON(os.Stdout, seriesList)
	}
	return fmt.Errorf("unsupported export format: %s, use one of: csv | json", format)
}

// RunSimulation replays the configured curve against the synthetic
// temperature profile until the configured duration has elapsed or
// the process is interrupted. The returned runner holds the final
// state of the run.
func RunSimulation(live bool, color bool) (*simulation.Runner, error) {
	curveList, err := RegisterCurves()
	if err != nil {
		return nil, err
	}

	runner, err := simulation.NewRunner(configuration.CurrentConfig.Simulation)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		enabled := configuration.CurrentConfig.Statistics.Enabled
		if enabled {
			// === Prometheus Exporter
			statistics.Register(statistics.NewCurveCollector(curveList))
			statistics.Register(statistics.NewSimulationCollector(runner))

			port := configuration.CurrentConfig.Statistics.Port
			addr := fmt.Sprintf(":%d", port)
			server := &http.Server{Addr: addr, Handler: promhttp.Handler()}

			g.Add(func() error {
				ui.Info("Serving prometheus metrics on %s/metrics", addr)
				if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %s", err.Error())
				}
			})
		}
	}
	{
		enabled := configuration.CurrentConfig.Api.Enabled
		if enabled {
			// === REST Api
			api.RegisterRunner(runner)
			restService := api.CreateRestService()

			host := configuration.CurrentConfig.Api.Host
			port := configuration.CurrentConfig.Api.Port
			addr := fmt.Sprintf("%s:%d", host, port)

			g.Add(func() error {
				ui.Info("Serving rest api on %s", addr)
				if err := restService.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					ui.Error("Cannot start rest api endpoint (%s)", err.Error())
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := restService.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping rest api server: %s", err.Error())
				}
			})
		}
	}
	{
		if live {
			// === live trace rendering
			area := ui.StartArea()

			g.Add(func() error {
				tick := time.Tick(500 * time.Millisecond)
				for {
					select {
					case <-ctx.Done():
						return nil
					case <-tick:
						area.Update(liveView(runner, color))
					}
				}
			}, func(err error) {
				area.Update(liveView(runner, color))
				area.Stop()
			})
		}
	}
	{
		// === simulation ticks
		g.Add(func() error {
			err := runner.Run(ctx)
			ui.Debug("Simulation for curve %s stopped.", runner.CurveId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			s := <-sig
			if s != nil {
				ui.Info("Received %s signal, exiting...", s)
			}
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	err = g.Run()
	return runner, err
}

func liveView(runner *simulation.Runner, color bool) string {
	temps, smoothed, duties := runner.Traces()
	status := runner.Status()
	graphs := chart.Live(temps, smoothed, duties, configuration.CurrentConfig.Preview, color)
	return fmt.Sprintf("%s\ntemp: %5.1f °C  smoothed: %5.1f °C  duty: %5.1f %%  changes: %d\n",
		graphs, status.Temp, status.SmoothedTemp, status.Duty, status.DutyChanges)
}
