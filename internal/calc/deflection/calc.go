package deflection

import (
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/factors"
	"fmt"
	"math"
	"strings"
)

const DefaultLimitRatio = 360.0

type Category string

const (
	CategoryIndustrial Category = "industrial"
	CategoryNormal     Category = "normal"
	CategorySensitive  Category = "sensitive"
	CategoryCantilever Category = "cantilever"
)

// Limits maps a serviceability category to its span/deflection ratio.
func Limits() map[Category]float64 {
	return map[Category]float64{
		CategoryIndustrial: 240,
		CategoryNormal:     300,
		CategorySensitive:  360,
		CategoryCantilever: 150,
	}
}

type Input struct {
	ActualMM   float64  `json:"actual_deflection"`
	SpanMM     float64  `json:"span"`
	LimitRatio float64  `json:"limit_ratio"`
	Category   Category `json:"category"`

	// When both are set the deflection of a simply supported beam under UDL
	// is computed and ActualMM is ignored.
	UDLKNM     float64 `json:"udl_kn_m"`
	InertiaMM4 float64 `json:"inertia_mm4"`
	E_MPa      float64 `json:"e_mpa"`
}

type Result struct {
	ActualMM      float64 `json:"actual_deflection"`
	PermissibleMM float64 `json:"permissible_deflection"`
	LimitRatio    float64 `json:"limit_ratio"`
	Limit         string  `json:"limit"`
	Ratio         float64 `json:"utilization"`
	IsSafe        bool    `json:"is_safe"`
	Status        string  `json:"status"`
	Computed      bool    `json:"computed"`
	Unit          string  `json:"unit"`
}

// ResolveLimit picks the explicit ratio, then the category, then def.
func ResolveLimit(ratio float64, category Category, def float64) (float64, error) {
	if ratio > 0 {
		return ratio, nil
	}
	if category != "" {
		r, ok := Limits()[Category(strings.ToLower(strings.TrimSpace(string(category))))]
		if !ok {
			return 0, calcerr.Validation("category", "unknown deflection category %q", category)
		}
		return r, nil
	}
	if def <= 0 {
		def = DefaultLimitRatio
	}
	return def, nil
}

func Check(in Input) (Result, error) {
	if in.SpanMM <= 0 {
		return Result{}, calcerr.Division("span", "must be greater than zero")
	}
	ratio, err := ResolveLimit(in.LimitRatio, in.Category, DefaultLimitRatio)
	if err != nil {
		return Result{}, err
	}

	actual := in.ActualMM
	computed := false
	if in.UDLKNM > 0 && in.InertiaMM4 > 0 {
		if in.E_MPa <= 0 {
			in.E_MPa = factors.ElasticModulusMPa
		}
		// 5 w L^4 / (384 E I); 1 kN/m = 1 N/mm
		actual = 5.0 * in.UDLKNM * math.Pow(in.SpanMM, 4) / (384.0 * in.E_MPa * in.InertiaMM4)
		computed = true
	}

	permissible := in.SpanMM / ratio
	util := actual / permissible
	res := Result{
		ActualMM:      actual,
		PermissibleMM: permissible,
		LimitRatio:    ratio,
		Limit:         fmt.Sprintf("L/%g", ratio),
		Ratio:         util,
		IsSafe:        actual <= permissible,
		Computed:      computed,
		Unit:          "mm",
	}
	switch {
	case !res.IsSafe:
		res.Status = "EXCEEDS LIMITS"
	case util <= 0.8:
		res.Status = "WELL WITHIN LIMITS"
	default:
		res.Status = "WITHIN LIMITS"
	}
	return res, nil
}
