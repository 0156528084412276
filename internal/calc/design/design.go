// Package design sizes a section for a bending demand.
package design

import (
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/factors"
	"Steelcheck/internal/calc/material"
)

type Input struct {
	DemandKNM float64 `json:"demand_knm"`
	Grade     string  `json:"grade"`
	YieldMPa  float64 `json:"yield_strength"`
	GammaM0   float64 `json:"gamma_m0"`

	// Optional; when set, grades whose capacity with this modulus covers the
	// demand are listed.
	SectionModulusMM3 float64 `json:"section_modulus"`
}

type Result struct {
	RequiredModulusMM3 float64  `json:"required_modulus"`
	YieldMPa           float64  `json:"yield_strength"`
	GammaM0            float64  `json:"gamma_m0"`
	Unit               string   `json:"unit"`
	AdequateGrades     []string `json:"adequate_grades,omitempty"`
	LowestGrade        string   `json:"lowest_grade,omitempty"`
	Notes              string   `json:"notes"`
}

// RequiredModulus inverts Md = fy·Z/γm0 for Z. fy comes from YieldMPa or,
// when zero, from Grade.
func RequiredModulus(in Input) (Result, error) {
	if in.DemandKNM <= 0 {
		return Result{}, calcerr.Validation("demand_knm", "must be greater than 0, got %g", in.DemandKNM)
	}
	if in.GammaM0 <= 0 {
		in.GammaM0 = factors.GammaM0
	}
	if in.YieldMPa <= 0 {
		if in.Grade == "" {
			return Result{}, calcerr.Validation("yield_strength", "is required when no grade is given")
		}
		p, err := material.Lookup(in.Grade)
		if err != nil {
			return Result{}, err
		}
		in.YieldMPa = p.YieldMPa
	}

	res := Result{
		RequiredModulusMM3: in.DemandKNM * 1e6 * in.GammaM0 / in.YieldMPa,
		YieldMPa:           in.YieldMPa,
		GammaM0:            in.GammaM0,
		Unit:               "mm³",
		Notes:              "Minimum plastic section modulus for the bending demand.",
	}

	if in.SectionModulusMM3 > 0 {
		for _, p := range material.All() {
			if p.YieldMPa*in.SectionModulusMM3/in.GammaM0/1e6 >= in.DemandKNM {
				res.AdequateGrades = append(res.AdequateGrades, p.Grade)
			}
		}
		if len(res.AdequateGrades) > 0 {
			res.LowestGrade = res.AdequateGrades[0]
		}
	}
	return res, nil
}
