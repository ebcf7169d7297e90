package sampling

import (
	"github.com/curvelab/fancurve/internal/configuration"
	"github.com/curvelab/fancurve/internal/curves"
)

// Sample is a single point of a curve sweep.
type Sample struct {
	Temp float64 `json:"temp"`
	Duty float64 `json:"duty"`
	// Held is true when the curve made no recommendation for this
	// temperature and the applied duty cycle was kept as is.
	Held bool `json:"held,omitempty"`
}

// Series is the ordered result of sweeping a single curve.
type Series struct {
	CurveId string   `json:"curveId"`
	Samples []Sample `json:"samples"`
}

// Values returns the duty cycles of the series in sweep order.
func (s Series) Values() []float64 {
	values := make([]float64, 0, len(s.Samples))
	for _, sample := range s.Samples {
		values = append(values, sample.Duty)
	}
	return values
}

// SweepCurve evaluates the given curve once per integer temperature in
// [config.MinTemp..config.MaxTemp], with an applied duty cycle of zero.
// Samples are independent of each other, there is no feedback between
// them.
func SweepCurve(curve curves.DutyCurve, config configuration.SamplingConfig) (Series, error) {
	series := Series{
		CurveId: curve.GetId(),
		Samples: make([]Sample, 0, config.MaxTemp-config.MinTemp+1),
	}

	for temp := config.MinTemp; temp <= config.MaxTemp; temp++ {
		value, err := curve.Evaluate(float64(temp), 0)
		if err != nil {
			return series, err
		}

		sample := Sample{
			Temp: float64(temp),
			Duty: value,
		}
		if recommender, ok := curve.(curves.Recommender); ok {
			if _, ok := recommender.Recommend(float64(temp), 0); !ok {
				sample.Held = true
			}
		}

		series.Samples = append(series.Samples, sample)
	}

	return series, nil
}

// Sweep sweeps all given curves over the same temperature range.
func Sweep(curveList []curves.DutyCurve, config configuration.SamplingConfig) ([]Series, error) {
	result := make([]Series, 0, len(curveList))
	for _, curve := range curveList {
		series, err := SweepCurve(curve, config)
		if err != nil {
			return nil, err
		}
		result = append(result, series)
	}
	return result, nil
}
