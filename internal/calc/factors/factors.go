// Package factors lists the IS 800:2007 partial safety factors used by the calculators.
package factors

// Partial safety factors for loads.
const (
	GammaDL = 1.5
	GammaLL = 1.5
	GammaWL = 1.5
	GammaEQ = 1.5

	// Wind and seismic combinations apply one factor to the summed loads.
	Combined = 1.2
)

// Partial safety factors for material.
const (
	GammaM0 = 1.10 // yielding and buckling
	GammaM1 = 1.25 // ultimate stress
)

const ElasticModulusMPa = 200000.0

// Table is the read-only view served to the dashboard.
type Table struct {
	GammaDL           float64 `json:"gamma_dl"`
	GammaLL           float64 `json:"gamma_ll"`
	GammaWL           float64 `json:"gamma_wl"`
	GammaEQ           float64 `json:"gamma_eq"`
	Combined          float64 `json:"combined_factor"`
	GammaM0           float64 `json:"gamma_m0"`
	GammaM1           float64 `json:"gamma_m1"`
	ElasticModulusMPa float64 `json:"elastic_modulus_mpa"`
}

func Defaults() Table {
	return Table{
		GammaDL:           GammaDL,
		GammaLL:           GammaLL,
		GammaWL:           GammaWL,
		GammaEQ:           GammaEQ,
		Combined:          Combined,
		GammaM0:           GammaM0,
		GammaM1:           GammaM1,
		ElasticModulusMPa: ElasticModulusMPa,
	}
}
