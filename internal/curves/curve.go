package curves

import (
	"fmt"
	"sync"

	"github.com/curvelab/fancurve/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	DutyCurveMap = cmap.New[DutyCurve]()

	valueMu = sync.Mutex{}
)

type DutyCurve interface {
	GetId() string

	// Evaluate calculates the duty cycle this curve recommends for
	// the given temperature, based on the currently applied duty
	// cycle. Returns a value in [0..100].
	Evaluate(temp float64, duty float64) (value float64, err error)

	// CurrentValue returns the duty cycle calculated by the most
	// recent call to Evaluate.
	CurrentValue() float64
}

// Recommender is implemented by curves that can decline to recommend
// a duty cycle change for a given input.
type Recommender interface {
	// Recommend returns the duty cycle target for the given
	// temperature and applied duty cycle. The second return value is
	// false when no rule matches and the applied duty cycle should be
	// kept as is.
	Recommend(temp float64, duty float64) (target float64, ok bool)
}

func NewDutyCurve(config configuration.CurveConfig) (DutyCurve, error) {
	if config.Step != nil {
		return &StepCurve{
			Config: config,
		}, nil
	}

	if config.Linear != nil {
		return &LinearCurve{
			Config: config,
		}, nil
	}

	if config.Sigmoid != nil {
		return &SigmoidCurve{
			Config: config,
		}, nil
	}

	if config.Function != nil {
		return &FunctionCurve{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching curve type for curve: %s", config.ID)
}

// GetDutyCurve returns the registered curve with the given id.
func GetDutyCurve(id string) (DutyCurve, bool) {
	return DutyCurveMap.Get(id)
}
