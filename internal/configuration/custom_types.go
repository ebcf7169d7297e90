package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// stepsMapHookFunc returns a mapstructure decode hook that converts
// the interface{} keyed maps produced by the YAML parser into the
// map[int]float64 used for linear curve steps.
func stepsMapHookFunc() mapstructure.DecodeHookFuncType {
	stepsType := reflect.TypeOf(map[int]float64{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != stepsType {
			return data, nil
		}
		return parseStepsMap(data)
	}
}

// parseStepsMap converts various map types (from YAML decoding) into
// map[int]float64.
func parseStepsMap(data interface{}) (map[int]float64, error) {
	result := make(map[int]float64)
	switch v := data.(type) {
	case map[interface{}]interface{}:
		for k, val := range v {
			key, err := anyToInt(k)
			if err != nil {
				return nil, fmt.Errorf("invalid step key %v: %w", k, err)
			}
			value, err := anyToFloat(val)
			if err != nil {
				return nil, fmt.Errorf("invalid step value %v: %w", val, err)
			}
			result[key] = value
		}
	case map[string]interface{}:
		for k, val := range v {
			key, err := anyToInt(k)
			if err != nil {
				return nil, fmt.Errorf("invalid step key %q: %w", k, err)
			}
			value, err := anyToFloat(val)
			if err != nil {
				return nil, fmt.Errorf("invalid step value %v: %w", val, err)
			}
			result[key] = value
		}
	case map[int]float64:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported steps map type %T", data)
	}
	return result, nil
}

// anyToInt converts numeric and string values to int.
func anyToInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as int: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

// anyToFloat converts numeric and string values to float64.
func anyToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as float: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}
