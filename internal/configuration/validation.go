package configuration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/curvelab/fancurve/internal/util"
	"github.com/looplab/tarjan"
	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if err := validateCurves(config); err != nil {
		return err
	}
	if err := validateSampling(config); err != nil {
		return err
	}
	if err := validatePreview(config); err != nil {
		return err
	}
	if err := validateSimulation(config); err != nil {
		return err
	}
	return validateServers(config)
}

func validateCurves(config *Configuration) error {
	graph := make(map[interface{}][]interface{})
	curveIds := make(map[string]bool)

	for _, curveConfig := range config.Curves {
		if curveIds[curveConfig.ID] {
			return errors.New(fmt.Sprintf("duplicate curve id detected: %s", curveConfig.ID))
		}
		curveIds[curveConfig.ID] = true

		subConfigs := 0
		if curveConfig.Step != nil {
			subConfigs++
		}
		if curveConfig.Linear != nil {
			subConfigs++
		}
		if curveConfig.Sigmoid != nil {
			subConfigs++
		}
		if curveConfig.Function != nil {
			subConfigs++
		}
		if subConfigs > 1 {
			return errors.New(fmt.Sprintf("curve %s: only one curve type can be used per curve definition block", curveConfig.ID))
		}
		if subConfigs <= 0 {
			return errors.New(fmt.Sprintf("curve %s: sub-configuration for curve is missing, use one of: step | linear | sigmoid | function", curveConfig.ID))
		}

		if curveConfig.Step != nil {
			if err := validateStepCurve(curveConfig); err != nil {
				return err
			}
		}

		if curveConfig.Linear != nil {
			if err := validateLinearCurve(curveConfig); err != nil {
				return err
			}
		}

		if curveConfig.Sigmoid != nil {
			if curveConfig.Sigmoid.LowerMidpoint == curveConfig.Sigmoid.UpperMidpoint {
				return errors.New(fmt.Sprintf("curve %s: sigmoid midpoints must differ", curveConfig.ID))
			}
		}

		if curveConfig.Function != nil {
			connections, err := validateFunctionCurve(curveConfig, config)
			if err != nil {
				return err
			}
			graph[curveConfig.ID] = connections
		}
	}

	return validateNoLoops(graph)
}

func validateStepCurve(curveConfig CurveConfig) error {
	stepConfig := curveConfig.Step
	if len(stepConfig.Raise)+len(stepConfig.Lower) <= 0 {
		return errors.New(fmt.Sprintf("curve %s: step curve needs at least one rule", curveConfig.ID))
	}
	rules := append(append([]StepRuleConfig{}, stepConfig.Raise...), stepConfig.Lower...)
	for _, rule := range rules {
		if rule.Target < 0 || rule.Target > 100 {
			return errors.New(fmt.Sprintf("curve %s: step rule target %.0f out of range, must be in [0..100]", curveConfig.ID, rule.Target))
		}
		if rule.Limit < 0 || rule.Limit > 100 {
			return errors.New(fmt.Sprintf("curve %s: step rule limit %.0f out of range, must be in [0..100]", curveConfig.ID, rule.Limit))
		}
	}
	return nil
}

func validateLinearCurve(curveConfig CurveConfig) error {
	linearConfig := curveConfig.Linear
	if linearConfig.Steps != nil {
		if len(linearConfig.Steps) < 2 {
			return errors.New(fmt.Sprintf("curve %s: linear curve needs at least two steps", curveConfig.ID))
		}
		for _, key := range util.SortedKeys(linearConfig.Steps) {
			value := linearConfig.Steps[key]
			if value < 0 || value > 100 {
				return errors.New(fmt.Sprintf("curve %s: step value %.0f at temperature %d out of range, must be in [0..100]", curveConfig.ID, value, key))
			}
		}
		return nil
	}
	if linearConfig.MinTemp >= linearConfig.MaxTemp {
		return errors.New(fmt.Sprintf("curve %s: minTemp (%d) must be less than maxTemp (%d)", curveConfig.ID, linearConfig.MinTemp, linearConfig.MaxTemp))
	}
	return nil
}

func validateFunctionCurve(curveConfig CurveConfig, config *Configuration) ([]interface{}, error) {
	functionConfig := curveConfig.Function

	supportedTypes := []string{FunctionMinimum, FunctionAverage, FunctionMaximum, FunctionDelta}
	if !slices.Contains(supportedTypes, functionConfig.Type) {
		return nil, errors.New(fmt.Sprintf("curve %s: unsupported function type '%s', use one of: %s", curveConfig.ID, functionConfig.Type, strings.Join(supportedTypes, " | ")))
	}

	if len(functionConfig.Curves) <= 0 {
		return nil, errors.New(fmt.Sprintf("curve %s: function curve must reference at least one curve", curveConfig.ID))
	}

	var connections []interface{}
	for _, id := range functionConfig.Curves {
		if id == curveConfig.ID {
			return nil, errors.New(fmt.Sprintf("curve %s: a curve cannot reference itself", curveConfig.ID))
		}
		if !curveIdExists(id, config) {
			return nil, errors.New(fmt.Sprintf("curve %s: no curve definition with id '%s' found", curveConfig.ID, id))
		}
		connections = append(connections, id)
	}
	return connections, nil
}

func validateNoLoops(graph map[interface{}][]interface{}) error {
	output := tarjan.Connections(graph)
	for _, items := range output {
		if len(items) > 1 {
			return errors.New(fmt.Sprintf("You have created a curve dependency cycle: %v", items))
		}
	}
	return nil
}

func validateSampling(config *Configuration) error {
	if config.Sampling.MinTemp > config.Sampling.MaxTemp {
		return errors.New(fmt.Sprintf("sampling: minTemp (%d) must not exceed maxTemp (%d)", config.Sampling.MinTemp, config.Sampling.MaxTemp))
	}
	return nil
}

func validatePreview(config *Configuration) error {
	for _, id := range config.Preview.Curves {
		if !curveIdExists(id, config) {
			return errors.New(fmt.Sprintf("preview: no curve definition with id '%s' found", id))
		}
	}
	if config.Preview.GraphWidth <= 0 || config.Preview.GraphHeight <= 0 {
		return errors.New(fmt.Sprintf("preview: graph dimensions must be positive, got %dx%d", config.Preview.GraphWidth, config.Preview.GraphHeight))
	}
	return nil
}

func validateSimulation(config *Configuration) error {
	simulationConfig := config.Simulation
	if len(simulationConfig.Curve) > 0 && !curveIdExists(simulationConfig.Curve, config) {
		return errors.New(fmt.Sprintf("simulation: no curve definition with id '%s' found", simulationConfig.Curve))
	}
	if simulationConfig.TickRate <= 0 {
		return errors.New("simulation: tickRate must be positive")
	}
	if simulationConfig.Duration <= 0 {
		return errors.New("simulation: duration must be positive")
	}
	if simulationConfig.SmoothingWindow < 1 {
		return errors.New("simulation: smoothingWindow must be >= 1")
	}
	return validateProfile(simulationConfig.Profile)
}

func validateProfile(profileConfig ProfileConfig) error {
	supportedTypes := []string{ProfileTypeTriangle, ProfileTypeSine, ProfileTypeConstant, ProfileTypeTrace}
	if !slices.Contains(supportedTypes, profileConfig.Type) {
		return errors.New(fmt.Sprintf("simulation: unsupported profile type '%s', use one of: %s", profileConfig.Type, strings.Join(supportedTypes, " | ")))
	}
	if profileConfig.Type == ProfileTypeTrace {
		if len(profileConfig.File) <= 0 {
			return errors.New("simulation: trace profile needs a file")
		}
		return nil
	}
	if profileConfig.MinTemp > profileConfig.MaxTemp {
		return errors.New(fmt.Sprintf("simulation: profile minTemp (%.0f) must not exceed maxTemp (%.0f)", profileConfig.MinTemp, profileConfig.MaxTemp))
	}
	if profileConfig.Type != ProfileTypeConstant && profileConfig.Period <= 0 {
		return errors.New("simulation: profile period must be positive")
	}
	return nil
}

func validateServers(config *Configuration) error {
	if config.Api.Enabled && (config.Api.Port < 1 || config.Api.Port > 65535) {
		return errors.New(fmt.Sprintf("api: invalid port %d", config.Api.Port))
	}
	if config.Statistics.Enabled && (config.Statistics.Port < 1 || config.Statistics.Port > 65535) {
		return errors.New(fmt.Sprintf("statistics: invalid port %d", config.Statistics.Port))
	}
	return nil
}

func curveIdExists(curveId string, config *Configuration) bool {
	for _, curve := range config.Curves {
		if curve.ID == curveId {
			return true
		}
	}

	return false
}
