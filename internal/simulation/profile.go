package simulation

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/curvelab/fancurve/internal/configuration"
)

// Profile produces a synthetic temperature signal.
type Profile interface {
	// Temperature returns the profile temperature at the given time
	// offset from the start of the run.
	Temperature(elapsed time.Duration) float64
}

// NewProfile creates a profile from its configuration. The tick rate
// is the time between two samples taken from the profile, trace
// profiles advance one row per tick.
func NewProfile(config configuration.ProfileConfig, tickRate time.Duration) (Profile, error) {
	switch config.Type {
	case configuration.ProfileTypeTriangle:
		return &TriangleProfile{Config: config}, nil
	case configuration.ProfileTypeSine:
		return &SineProfile{Config: config}, nil
	case configuration.ProfileTypeConstant:
		return &ConstantProfile{Config: config}, nil
	case configuration.ProfileTypeTrace:
		return NewTraceProfile(config, tickRate)
	}

	return nil, fmt.Errorf("no matching profile type for profile: %s", config.Type)
}

// TriangleProfile ramps from MinTemp up to MaxTemp and back down once
// per period.
type TriangleProfile struct {
	Config configuration.ProfileConfig
}

func (p *TriangleProfile) Temperature(elapsed time.Duration) float64 {
	phase := phaseOf(elapsed, p.Config.Period)
	span := p.Config.MaxTemp - p.Config.MinTemp
	if phase < 0.5 {
		return p.Config.MinTemp + span*phase*2
	}
	return p.Config.MaxTemp - span*(phase-0.5)*2
}

// SineProfile oscillates between MinTemp and MaxTemp, starting at the
// midpoint.
type SineProfile struct {
	Config configuration.ProfileConfig
}

func (p *SineProfile) Temperature(elapsed time.Duration) float64 {
	phase := phaseOf(elapsed, p.Config.Period)
	span := p.Config.MaxTemp - p.Config.MinTemp
	return p.Config.MinTemp + span*(0.5+0.5*math.Sin(2*math.Pi*phase))
}

// ConstantProfile holds the midpoint of MinTemp and MaxTemp.
type ConstantProfile struct {
	Config configuration.ProfileConfig
}

func (p *ConstantProfile) Temperature(_ time.Duration) float64 {
	return (p.Config.MinTemp + p.Config.MaxTemp) / 2
}

// TraceProfile replays temperatures read from a CSV file, one row per
// tick. The trace loops when the simulation outlives it.
type TraceProfile struct {
	Config   configuration.ProfileConfig
	tickRate time.Duration
	samples  []float64
}

func NewTraceProfile(config configuration.ProfileConfig, tickRate time.Duration) (*TraceProfile, error) {
	samples, err := readTraceFile(config.File)
	if err != nil {
		return nil, err
	}

	return &TraceProfile{
		Config:   config,
		tickRate: tickRate,
		samples:  samples,
	}, nil
}

func (p *TraceProfile) Temperature(elapsed time.Duration) float64 {
	index := int(elapsed/p.tickRate) % len(p.samples)
	return p.samples[index]
}

func readTraceFile(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace profile: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("trace profile %s: %w", path, err)
	}

	var samples []float64
	for line, record := range records {
		if len(record) <= 0 {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			// allow a single header row
			if line == 0 {
				continue
			}
			return nil, fmt.Errorf("trace profile %s: invalid temperature %q on line %d", path, record[0], line+1)
		}
		samples = append(samples, value)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("trace profile %s: no samples", path)
	}

	return samples, nil
}

func phaseOf(elapsed time.Duration, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return math.Mod(elapsed.Seconds(), period.Seconds()) / period.Seconds()
}
