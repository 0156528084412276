package safety

import (
	"Steelcheck/internal/calc/calcerr"
	"math"
)

const (
	StatusSafe   = "SAFE"
	StatusUnsafe = "UNSAFE"

	StatusUnderUtilized = "UNDER-UTILIZED"
	StatusAdequate      = "ADEQUATE"
	StatusMarginal      = "MARGINALLY OVERSTRESSED"
	StatusOverstressed  = "OVERSTRESSED"
)

// Result is shared by every ratio check. A ratio of exactly 1.0 is safe.
type Result struct {
	Ratio       float64 `json:"ratio"`
	Margin      float64 `json:"margin"`
	IsSafe      bool    `json:"is_safe"`
	Status      string  `json:"status"`
	Actual      float64 `json:"actual"`
	Permissible float64 `json:"permissible"`

	Percent        float64 `json:"utilization_percent"`
	ReservePercent float64 `json:"reserve_capacity"`
}

// CheckSafetyFactor compares an applied value against its permissible value.
// Margin is permissible - actual in the caller's units.
func CheckSafetyFactor(actual, permissible float64) (Result, error) {
	if permissible == 0 {
		return Result{}, calcerr.Division("permissible", "must not be zero")
	}
	ratio := actual / permissible
	res := Result{
		Ratio:          ratio,
		Margin:         permissible - actual,
		IsSafe:         ratio <= 1.0,
		Actual:         actual,
		Permissible:    permissible,
		Percent:        ratio * 100,
		ReservePercent: math.Max(0, (1.0-ratio)*100),
	}
	res.Status = StatusUnsafe
	if res.IsSafe {
		res.Status = StatusSafe
	}
	return res, nil
}

// CheckUtilization is the demand/capacity ratio of a section, graded into
// four bands.
func CheckUtilization(demand, capacity float64) (Result, error) {
	if capacity == 0 {
		return Result{}, calcerr.Division("capacity", "must not be zero")
	}
	ratio := demand / capacity
	return Result{
		Ratio:          ratio,
		Margin:         capacity - demand,
		IsSafe:         ratio <= 1.0,
		Status:         utilizationStatus(ratio),
		Actual:         demand,
		Permissible:    capacity,
		Percent:        ratio * 100,
		ReservePercent: math.Max(0, (1.0-ratio)*100),
	}, nil
}

func utilizationStatus(ratio float64) string {
	switch {
	case ratio <= 0.7:
		return StatusUnderUtilized
	case ratio <= 1.0:
		return StatusAdequate
	case ratio <= 1.1:
		return StatusMarginal
	default:
		return StatusOverstressed
	}
}
