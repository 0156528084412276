package loads

import (
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/factors"
	"fmt"
)

type Combination string

const (
	CombinationNormal  Combination = "normal"
	CombinationWind    Combination = "wind"
	CombinationSeismic Combination = "seismic"
)

// Combinations is the closed set accepted by Calculate, in display order.
var Combinations = []Combination{CombinationNormal, CombinationWind, CombinationSeismic}

func (c Combination) Valid() bool {
	switch c {
	case CombinationNormal, CombinationWind, CombinationSeismic:
		return true
	}
	return false
}

func (c Combination) Description() string {
	switch c {
	case CombinationNormal:
		return "Dead Load + Live Load"
	case CombinationWind:
		return "Dead Load + Live Load + Wind Load"
	case CombinationSeismic:
		return "Dead Load + Live Load + Earthquake Load"
	}
	return ""
}

// Input holds unfactored loads in kN. Wind and seismic are optional: nil means
// the term was not supplied, which is different from a supplied zero.
type Input struct {
	Combination Combination `json:"combination"`
	DeadKN      float64     `json:"dead_load"`
	LiveKN      float64     `json:"live_load"`
	WindKN      *float64    `json:"wind_load,omitempty"`
	SeismicKN   *float64    `json:"seismic_load,omitempty"`
}

type Term struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Result struct {
	FactoredLoadKN float64     `json:"factored_load"`
	Combination    Combination `json:"combination"`
	Formula        string      `json:"formula"`
	Terms          []Term      `json:"terms"`
	Unit           string      `json:"unit"`
}

func Calculate(in Input) (Result, error) {
	switch in.Combination {
	case CombinationNormal:
		dl := factors.GammaDL * in.DeadKN
		ll := factors.GammaLL * in.LiveKN
		return Result{
			FactoredLoadKN: dl + ll,
			Combination:    in.Combination,
			Formula:        fmt.Sprintf("%.1f·DL + %.1f·LL", factors.GammaDL, factors.GammaLL),
			Terms: []Term{
				{Name: "factored_dead_load", Value: dl},
				{Name: "factored_live_load", Value: ll},
			},
			Unit: "kN",
		}, nil
	case CombinationWind:
		if in.WindKN == nil {
			return Result{}, calcerr.InvalidCombination("wind_load", "required for the wind combination")
		}
		return combined(in, "WL", *in.WindKN), nil
	case CombinationSeismic:
		if in.SeismicKN == nil {
			return Result{}, calcerr.InvalidCombination("seismic_load", "required for the seismic combination")
		}
		return combined(in, "EQ", *in.SeismicKN), nil
	default:
		return Result{}, calcerr.InvalidCombination("combination", "unknown combination %q", in.Combination)
	}
}

func combined(in Input, label string, extra float64) Result {
	sum := in.DeadKN + in.LiveKN + extra
	return Result{
		FactoredLoadKN: factors.Combined * sum,
		Combination:    in.Combination,
		Formula:        fmt.Sprintf("%.1f·(DL + LL + %s)", factors.Combined, label),
		Terms: []Term{
			{Name: "combined_load", Value: sum},
			{Name: "factor_applied", Value: factors.Combined},
		},
		Unit: "kN",
	}
}
