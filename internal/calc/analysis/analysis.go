// Package analysis chains the individual checks into one report.
package analysis

import (
	"Steelcheck/internal/calc/capacity"
	"Steelcheck/internal/calc/deflection"
	"Steelcheck/internal/calc/loads"
	"Steelcheck/internal/calc/material"
	"Steelcheck/internal/calc/safety"
	"fmt"
)

const (
	StatusAcceptable     = "ACCEPTABLE"
	StatusReviewRequired = "REVIEW REQUIRED"
)

type Input struct {
	Loads             loads.Input `json:"loads"`
	SectionCapacityKN float64     `json:"section_capacity"`

	// Safety factor check runs when AllowableStressMPa is set.
	AppliedStressMPa   float64 `json:"applied_stress"`
	AllowableStressMPa float64 `json:"allowable_stress"`

	// Capacities run when Grade or YieldMPa is set, each for its non-zero
	// section property. YieldMPa overrides the grade's fy.
	Grade             string  `json:"grade"`
	YieldMPa          float64 `json:"yield_strength"`
	SectionModulusMM3 float64 `json:"section_modulus"`
	ShearAreaMM2      float64 `json:"shear_area"`
	GammaM0           float64 `json:"gamma_m0"`

	Deflection *deflection.Input `json:"deflection,omitempty"`
}

type Report struct {
	FactoredLoad   loads.Result         `json:"factored_load_analysis"`
	Utilization    safety.Result        `json:"utilization_analysis"`
	SafetyFactor   *safety.Result       `json:"safety_factor_analysis,omitempty"`
	Material       *material.Properties `json:"material,omitempty"`
	MomentCapacity *capacity.Result     `json:"moment_capacity,omitempty"`
	ShearCapacity  *capacity.Result     `json:"shear_capacity,omitempty"`
	Deflection     *deflection.Result   `json:"deflection_analysis,omitempty"`
	OverallStatus  string               `json:"overall_status"`
	IsAcceptable   bool                 `json:"is_acceptable"`
}

// Complete runs factored load, utilization, safety factor, capacity and
// deflection in that order and stops at the first failure. The returned error
// keeps the kind of the step that failed.
func Complete(in Input) (Report, error) {
	var rep Report
	var err error

	if rep.FactoredLoad, err = loads.Calculate(in.Loads); err != nil {
		return Report{}, fmt.Errorf("factored load: %w", err)
	}
	if rep.Utilization, err = safety.CheckUtilization(rep.FactoredLoad.FactoredLoadKN, in.SectionCapacityKN); err != nil {
		return Report{}, fmt.Errorf("utilization: %w", err)
	}
	acceptable := rep.Utilization.IsSafe

	if in.AllowableStressMPa > 0 {
		sf, err := safety.CheckSafetyFactor(in.AppliedStressMPa, in.AllowableStressMPa)
		if err != nil {
			return Report{}, fmt.Errorf("safety factor: %w", err)
		}
		rep.SafetyFactor = &sf
		acceptable = acceptable && sf.IsSafe
	}

	fy := in.YieldMPa
	if in.Grade != "" {
		props, err := material.Lookup(in.Grade)
		if err != nil {
			return Report{}, fmt.Errorf("material: %w", err)
		}
		rep.Material = &props
		if fy <= 0 {
			fy = props.YieldMPa
		}
	}
	if fy > 0 {
		if in.SectionModulusMM3 > 0 {
			m, err := capacity.Moment(capacity.MomentInput{
				SectionModulusMM3: in.SectionModulusMM3,
				YieldMPa:          fy,
				GammaM0:           in.GammaM0,
			})
			if err != nil {
				return Report{}, fmt.Errorf("moment capacity: %w", err)
			}
			rep.MomentCapacity = &m
		}
		if in.ShearAreaMM2 > 0 {
			v, err := capacity.Shear(capacity.ShearInput{
				ShearAreaMM2: in.ShearAreaMM2,
				YieldMPa:     fy,
				GammaM0:      in.GammaM0,
			})
			if err != nil {
				return Report{}, fmt.Errorf("shear capacity: %w", err)
			}
			rep.ShearCapacity = &v
		}
	}

	if in.Deflection != nil {
		d, err := deflection.Check(*in.Deflection)
		if err != nil {
			return Report{}, fmt.Errorf("deflection: %w", err)
		}
		rep.Deflection = &d
		acceptable = acceptable && d.IsSafe
	}

	rep.IsAcceptable = acceptable
	rep.OverallStatus = StatusReviewRequired
	if acceptable {
		rep.OverallStatus = StatusAcceptable
	}
	return rep, nil
}
