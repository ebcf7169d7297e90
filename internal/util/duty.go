package util

import (
	"math"
)

const (
	MinDutyValue = 0
	MaxDutyValue = 100

	// MaxRawValue is the largest value accepted by the single byte
	// fan duty registers of embedded controllers.
	MaxRawValue = 255
)

// DutyToRaw converts a duty cycle percentage in [0..100] to the raw
// byte scale [0..255] used by embedded controller fan registers.
func DutyToRaw(duty float64) int {
	coerced := Coerce(duty, MinDutyValue, MaxDutyValue)
	return int(math.Round(coerced / MaxDutyValue * MaxRawValue))
}

// RawToDuty converts a raw register byte value in [0..255] to a duty
// cycle percentage in [0..100].
func RawToDuty(raw int) float64 {
	coerced := Coerce(float64(raw), 0, MaxRawValue)
	return coerced / MaxRawValue * MaxDutyValue
}
