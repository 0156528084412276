package material

import (
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/factors"
	"strings"
)

// Properties is one IS 2062 grade record.
type Properties struct {
	Grade             string  `json:"grade"`
	YieldMPa          float64 `json:"yield_strength"`
	UltimateMPa       float64 `json:"ultimate_strength"`
	ElongationPct     float64 `json:"elongation"`
	Description       string  `json:"description"`
	ElasticModulusMPa float64 `json:"elastic_modulus"`
}

var grades = [...]Properties{
	{Grade: "E250", YieldMPa: 250, UltimateMPa: 410, ElongationPct: 23, Description: "Mild Steel (Standard)"},
	{Grade: "E275", YieldMPa: 275, UltimateMPa: 430, ElongationPct: 22, Description: "Medium Carbon Steel"},
	{Grade: "E300", YieldMPa: 300, UltimateMPa: 440, ElongationPct: 22, Description: "Medium Strength Steel"},
	{Grade: "E350", YieldMPa: 350, UltimateMPa: 490, ElongationPct: 22, Description: "High Strength Steel"},
	{Grade: "E410", YieldMPa: 410, UltimateMPa: 540, ElongationPct: 20, Description: "High Strength Low Alloy"},
	{Grade: "E450", YieldMPa: 450, UltimateMPa: 570, ElongationPct: 20, Description: "Extra High Strength"},
}

// Codes returns the grade codes in ascending strength.
func Codes() []string {
	out := make([]string, len(grades))
	for i, g := range grades {
		out[i] = g.Grade
	}
	return out
}

// All returns a copy of the grade table.
func All() []Properties {
	out := make([]Properties, len(grades))
	for i, g := range grades {
		g.ElasticModulusMPa = factors.ElasticModulusMPa
		out[i] = g
	}
	return out
}

// Lookup is case-insensitive and ignores surrounding spaces. There is no
// interpolation between grades.
func Lookup(grade string) (Properties, error) {
	code := strings.ToUpper(strings.TrimSpace(grade))
	for _, g := range grades {
		if g.Grade == code {
			g.ElasticModulusMPa = factors.ElasticModulusMPa
			return g, nil
		}
	}
	return Properties{}, calcerr.GradeNotFound(grade)
}
