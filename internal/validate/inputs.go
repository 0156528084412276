package validate

import (
	"Steelcheck/internal/calc/analysis"
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/capacity"
	"Steelcheck/internal/calc/deflection"
	"Steelcheck/internal/calc/design"
	"Steelcheck/internal/calc/factors"
	"Steelcheck/internal/calc/loads"
	"Steelcheck/internal/calc/material"
)

// Defaults are the process-wide values used when a request omits them.
type Defaults struct {
	GammaM0    float64
	LimitRatio float64
}

func (d Defaults) Normalized() Defaults {
	if d.GammaM0 <= 0 {
		d.GammaM0 = factors.GammaM0
	}
	if d.LimitRatio <= 0 {
		d.LimitRatio = deflection.DefaultLimitRatio
	}
	return d
}

// LoadInputs validates a factored-load request. Wind and seismic stay nil when
// absent; the combination defaults to normal.
func LoadInputs(raw Raw) (loads.Input, error) {
	var in loads.Input
	var err error
	if in.DeadKN, err = raw.required(NonNegativeRange, "dead_load"); err != nil {
		return loads.Input{}, err
	}
	if in.LiveKN, err = raw.required(NonNegativeRange, "live_load"); err != nil {
		return loads.Input{}, err
	}
	if in.WindKN, err = raw.optionalPtr(NonNegativeRange, "wind_load"); err != nil {
		return loads.Input{}, err
	}
	if in.SeismicKN, err = raw.optionalPtr(NonNegativeRange, "seismic_load", "earthquake_load"); err != nil {
		return loads.Input{}, err
	}
	combo, field, ok := raw.get("combination", "combination_type")
	if !ok {
		in.Combination = loads.CombinationNormal
		return in, nil
	}
	if in.Combination, err = Enum(combo, field, loads.Combinations); err != nil {
		return loads.Input{}, err
	}
	return in, nil
}

// SafetyInputs returns the applied and permissible values of a safety-factor check.
func SafetyInputs(raw Raw) (actual, permissible float64, err error) {
	if actual, err = raw.required(NonNegativeRange, "actual", "applied_stress"); err != nil {
		return 0, 0, err
	}
	if permissible, err = raw.required(PositiveRange, "permissible", "allowable_stress"); err != nil {
		return 0, 0, err
	}
	return actual, permissible, nil
}

func UtilizationInputs(raw Raw) (demand, capacity float64, err error) {
	if demand, err = raw.required(NonNegativeRange, "demand", "applied_load"); err != nil {
		return 0, 0, err
	}
	if capacity, err = raw.required(PositiveRange, "capacity", "section_capacity"); err != nil {
		return 0, 0, err
	}
	return demand, capacity, nil
}

// yield takes fy from yield_strength, falling back to the grade table when
// only a grade is given.
func yield(raw Raw) (float64, error) {
	if _, _, ok := raw.get("yield_strength"); !ok {
		if _, _, hasGrade := raw.get("grade", "steel_grade"); hasGrade {
			grade, err := Grade(raw)
			if err != nil {
				return 0, err
			}
			p, err := material.Lookup(grade)
			if err != nil {
				return 0, err
			}
			return p.YieldMPa, nil
		}
	}
	return raw.required(PositiveRange, "yield_strength")
}

func MomentInputs(raw Raw, d Defaults) (capacity.MomentInput, error) {
	d = d.Normalized()
	var in capacity.MomentInput
	var err error
	if in.SectionModulusMM3, err = raw.required(PositiveRange, "section_modulus", "plastic_modulus"); err != nil {
		return capacity.MomentInput{}, err
	}
	if in.YieldMPa, err = yield(raw); err != nil {
		return capacity.MomentInput{}, err
	}
	if in.GammaM0, err = raw.optional(PositiveRange, d.GammaM0, "gamma_m0"); err != nil {
		return capacity.MomentInput{}, err
	}
	if in.DemandKNM, err = raw.optional(NonNegativeRange, 0, "demand_knm"); err != nil {
		return capacity.MomentInput{}, err
	}
	return in, nil
}

func ShearInputs(raw Raw, d Defaults) (capacity.ShearInput, error) {
	d = d.Normalized()
	var in capacity.ShearInput
	var err error
	if in.ShearAreaMM2, err = raw.required(PositiveRange, "shear_area"); err != nil {
		return capacity.ShearInput{}, err
	}
	if in.YieldMPa, err = yield(raw); err != nil {
		return capacity.ShearInput{}, err
	}
	if in.GammaM0, err = raw.optional(PositiveRange, d.GammaM0, "gamma_m0"); err != nil {
		return capacity.ShearInput{}, err
	}
	if in.DemandKN, err = raw.optional(NonNegativeRange, 0, "demand_kn"); err != nil {
		return capacity.ShearInput{}, err
	}
	return in, nil
}

func DesignInputs(raw Raw, d Defaults) (design.Input, error) {
	d = d.Normalized()
	var in design.Input
	var err error
	if in.DemandKNM, err = raw.required(PositiveRange, "demand_knm", "design_moment"); err != nil {
		return design.Input{}, err
	}
	if in.YieldMPa, err = yield(raw); err != nil {
		return design.Input{}, err
	}
	if in.GammaM0, err = raw.optional(PositiveRange, d.GammaM0, "gamma_m0"); err != nil {
		return design.Input{}, err
	}
	if in.SectionModulusMM3, err = raw.optional(NonNegativeRange, 0, "section_modulus", "plastic_modulus"); err != nil {
		return design.Input{}, err
	}
	return in, nil
}

func categories() []deflection.Category {
	return []deflection.Category{
		deflection.CategoryIndustrial,
		deflection.CategoryNormal,
		deflection.CategorySensitive,
		deflection.CategoryCantilever,
	}
}

// DeflectionInputs resolves the limit ratio up front: explicit ratio, then
// category, then the process default.
func DeflectionInputs(raw Raw, d Defaults) (deflection.Input, error) {
	d = d.Normalized()
	var in deflection.Input
	var err error
	if in.SpanMM, err = raw.required(PositiveRange, "span", "span_length"); err != nil {
		return deflection.Input{}, err
	}
	if in.UDLKNM, err = raw.optional(NonNegativeRange, 0, "udl_kn_m"); err != nil {
		return deflection.Input{}, err
	}
	if in.InertiaMM4, err = raw.optional(NonNegativeRange, 0, "inertia_mm4"); err != nil {
		return deflection.Input{}, err
	}
	if in.E_MPa, err = raw.optional(NonNegativeRange, 0, "e_mpa"); err != nil {
		return deflection.Input{}, err
	}
	if in.UDLKNM == 0 || in.InertiaMM4 == 0 {
		if in.ActualMM, err = raw.required(NonNegativeRange, "actual_deflection"); err != nil {
			return deflection.Input{}, err
		}
	}
	if in.LimitRatio, err = raw.optional(PositiveRange, 0, "limit_ratio", "deflection_limit"); err != nil {
		return deflection.Input{}, err
	}
	if cat, field, ok := raw.get("category"); ok {
		if in.Category, err = Enum(cat, field, categories()); err != nil {
			return deflection.Input{}, err
		}
	}
	if in.LimitRatio, err = deflection.ResolveLimit(in.LimitRatio, in.Category, d.LimitRatio); err != nil {
		return deflection.Input{}, err
	}
	return in, nil
}

// Grade only checks presence; unknown codes are reported by the lookup.
func Grade(raw Raw) (string, error) {
	v, field, ok := raw.get("grade", "steel_grade")
	if !ok {
		return "", calcerr.Validation(field, "is required")
	}
	s, isStr := v.(string)
	if !isStr {
		return "", calcerr.Validation(field, "must be a string, got %T", v)
	}
	return s, nil
}

// AnalysisInputs validates a complete-analysis request. Capacity and
// deflection sections are optional and only validated when present.
func AnalysisInputs(raw Raw, d Defaults) (analysis.Input, error) {
	d = d.Normalized()
	var in analysis.Input
	var err error
	if in.Loads, err = LoadInputs(raw); err != nil {
		return analysis.Input{}, err
	}
	if in.SectionCapacityKN, err = raw.required(PositiveRange, "section_capacity", "capacity"); err != nil {
		return analysis.Input{}, err
	}
	if _, _, ok := raw.get("allowable_stress", "permissible"); ok {
		if in.AppliedStressMPa, in.AllowableStressMPa, err = SafetyInputs(raw); err != nil {
			return analysis.Input{}, err
		}
	}
	if _, _, ok := raw.get("grade", "steel_grade"); ok {
		if in.Grade, err = Grade(raw); err != nil {
			return analysis.Input{}, err
		}
	}
	if in.SectionModulusMM3, err = raw.optional(NonNegativeRange, 0, "section_modulus", "plastic_modulus"); err != nil {
		return analysis.Input{}, err
	}
	if in.ShearAreaMM2, err = raw.optional(NonNegativeRange, 0, "shear_area"); err != nil {
		return analysis.Input{}, err
	}
	if in.GammaM0, err = raw.optional(PositiveRange, d.GammaM0, "gamma_m0"); err != nil {
		return analysis.Input{}, err
	}
	if in.SectionModulusMM3 > 0 || in.ShearAreaMM2 > 0 {
		// an explicit fy wins; otherwise the grade supplies it during analysis
		if _, _, ok := raw.get("yield_strength"); ok || in.Grade == "" {
			if in.YieldMPa, err = raw.required(PositiveRange, "yield_strength"); err != nil {
				return analysis.Input{}, err
			}
		}
	}
	if _, _, ok := raw.get("span", "span_length"); ok {
		def, err := DeflectionInputs(raw, d)
		if err != nil {
			return analysis.Input{}, err
		}
		in.Deflection = &def
	}
	return in, nil
}
