package statistics

import (
	"github.com/curvelab/fancurve/internal/simulation"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSimulation = "simulation"

type SimulationCollector struct {
	runner       *simulation.Runner
	temp         *prometheus.Desc
	smoothedTemp *prometheus.Desc
	duty         *prometheus.Desc
}

func NewSimulationCollector(runner *simulation.Runner) *SimulationCollector {
	return &SimulationCollector{
		runner: runner,
		temp: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSimulation, "temp"),
			"Raw profile temperature of the last simulation tick",
			nil, nil,
		),
		smoothedTemp: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSimulation, "smoothed_temp"),
			"Smoothed temperature fed into the curve",
			nil, nil,
		),
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSimulation, "duty"),
			"Currently applied duty cycle of the simulation",
			nil, nil,
		),
	}
}

func (collector *SimulationCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temp
	ch <- collector.smoothedTemp
	ch <- collector.duty
}

// Collect implements required collect function for all prometheus collectors
func (collector *SimulationCollector) Collect(ch chan<- prometheus.Metric) {
	status := collector.runner.Status()
	ch <- prometheus.MustNewConstMetric(collector.temp, prometheus.GaugeValue, status.Temp)
	ch <- prometheus.MustNewConstMetric(collector.smoothedTemp, prometheus.GaugeValue, status.SmoothedTemp)
	ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, status.Duty)
}
