package simulation

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/curves"
	"github.com/curvelab/fancurve/internal/util"
)

// Status is a snapshot of the simulation state.
type Status struct {
	Elapsed time.Duration `json:"elapsed"`
	Samples int           `json:"samples"`
	// Temp is the raw profile temperature of the last tick,
	// SmoothedTemp the moving average fed into the curve.
	Temp         float64 `json:"temp"`
	SmoothedTemp float64 `json:"smoothedTemp"`
	// Duty is the currently applied duty cycle.
	Duty        float64 `json:"duty"`
	DutyChanges int     `json:"dutyChanges"`
	MinDuty     float64 `json:"minDuty"`
	MaxDuty     float64 `json:"maxDuty"`
	Done        bool    `json:"done"`
}

// Runner replays a curve against a synthetic temperature profile in a
// closed loop: each tick the profile temperature is smoothed over a
// rolling window and the curve is evaluated against the duty cycle the
// previous tick applied.
type Runner struct {
	config  configuration.SimulationConfig
	curve   curves.DutyCurve
	profile Profile
	window  *rolling.PointPolicy

	mu       sync.Mutex
	status   Status
	temps    []float64
	smoothed []float64
	duties   []float64
}

func NewRunner(config configuration.SimulationConfig) (*Runner, error) {
	curve, ok := curves.GetDutyCurve(config.Curve)
	if !ok {
		return nil, fmt.Errorf("simulation: curve %s is not registered", config.Curve)
	}

	profile, err := NewProfile(config.Profile, config.TickRate)
	if err != nil {
		return nil, err
	}

	return &Runner{
		config:  config,
		curve:   curve,
		profile: profile,
		window:  util.CreateRollingWindow(config.SmoothingWindow),
	}, nil
}

// Run executes the tick loop until the configured duration has
// elapsed or the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	tick := time.Tick(r.config.TickRate)
	deadline := time.After(r.config.Duration)
	for {
		select {
		case <-ctx.Done():
			r.finish()
			return nil
		case <-deadline:
			r.finish()
			return nil
		case <-tick:
			if _, err := r.Tick(time.Since(start)); err != nil {
				return err
			}
		}
	}
}

// Tick advances the simulation by a single sample of the profile.
func (r *Runner) Tick(elapsed time.Duration) (Status, error) {
	status, err := r.advance(r.profile.Temperature(elapsed))
	if err != nil {
		return status, err
	}

	r.mu.Lock()
	r.status.Elapsed = elapsed
	status = r.status
	r.mu.Unlock()

	return status, nil
}

func (r *Runner) advance(temp float64) (Status, error) {
	r.mu.Lock()
	duty := r.status.Duty
	first := r.status.Samples == 0
	r.mu.Unlock()

	if first {
		// start the moving average at the first raw value
		fillWindow(r.window, r.config.SmoothingWindow, temp)
	} else {
		r.window.Append(temp)
	}
	smoothed := r.window.Reduce(rolling.Avg)

	target, err := r.curve.Evaluate(smoothed, duty)
	if err != nil {
		return Status{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.Samples++
	r.status.Temp = temp
	r.status.SmoothedTemp = smoothed
	if target != duty {
		r.status.DutyChanges++
	}
	r.status.Duty = target
	if first {
		r.status.MinDuty = target
		r.status.MaxDuty = target
	} else {
		r.status.MinDuty = math.Min(r.status.MinDuty, target)
		r.status.MaxDuty = math.Max(r.status.MaxDuty, target)
	}

	r.temps = append(r.temps, temp)
	r.smoothed = append(r.smoothed, smoothed)
	r.duties = append(r.duties, target)

	return r.status, nil
}

func (r *Runner) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.Done = true
}

// Status returns a snapshot of the current simulation state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// CurveId returns the id of the curve the simulation drives.
func (r *Runner) CurveId() string {
	return r.curve.GetId()
}

// Traces returns copies of the per tick temperature, smoothed
// temperature and duty cycle series recorded so far.
func (r *Runner) Traces() (temps []float64, smoothed []float64, duties []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	temps = append(temps, r.temps...)
	smoothed = append(smoothed, r.smoothed...)
	duties = append(duties, r.duties...)
	return temps, smoothed, duties
}

func fillWindow(window *rolling.PointPolicy, size int, value float64) {
	for i := 0; i < size; i++ {
		window.Append(value)
	}
}
