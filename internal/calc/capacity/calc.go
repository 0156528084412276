package capacity

import (
	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/factors"
	"Steelcheck/internal/calc/safety"
	"math"
)

type MomentInput struct {
	SectionModulusMM3 float64 `json:"section_modulus"`
	YieldMPa          float64 `json:"yield_strength"`
	GammaM0           float64 `json:"gamma_m0"`
	// Optional factored moment to check against the capacity.
	DemandKNM float64 `json:"demand_knm"`
}

type ShearInput struct {
	ShearAreaMM2 float64 `json:"shear_area"`
	YieldMPa     float64 `json:"yield_strength"`
	GammaM0      float64 `json:"gamma_m0"`
	DemandKN     float64 `json:"demand_kn"`
}

type Result struct {
	Capacity    float64        `json:"capacity"`     // N·mm or N
	CapacityKN  float64        `json:"capacity_kn"`  // kN·m or kN
	GammaM0     float64        `json:"gamma_m0"`
	Unit        string         `json:"unit"`
	Utilization *safety.Result `json:"utilization,omitempty"`
	Notes       string         `json:"notes"`
}

// Moment returns the design bending strength Md = fy·Z/γm0 (IS 800 cl. 8.2.1.2).
func Moment(in MomentInput) (Result, error) {
	if in.GammaM0 <= 0 {
		in.GammaM0 = factors.GammaM0
	}
	nmm := in.YieldMPa * in.SectionModulusMM3 / in.GammaM0
	res := Result{
		Capacity:   nmm,
		CapacityKN: nmm / 1e6,
		GammaM0:    in.GammaM0,
		Unit:       "kN-m",
		Notes:      "Design bending strength, laterally supported section.",
	}
	return withDemand(res, in.DemandKNM)
}

// Shear returns the design shear strength Vd = fy·Av/(√3·γm0) (IS 800 cl. 8.4.1).
func Shear(in ShearInput) (Result, error) {
	if in.GammaM0 <= 0 {
		in.GammaM0 = factors.GammaM0
	}
	n := in.YieldMPa * in.ShearAreaMM2 / (math.Sqrt(3) * in.GammaM0)
	res := Result{
		Capacity:   n,
		CapacityKN: n / 1000.0,
		GammaM0:    in.GammaM0,
		Unit:       "kN",
		Notes:      "Design shear strength, plastic shear resistance.",
	}
	return withDemand(res, in.DemandKN)
}

func withDemand(res Result, demand float64) (Result, error) {
	if demand <= 0 {
		return res, nil
	}
	if res.CapacityKN == 0 {
		return Result{}, calcerr.Division("capacity", "section has no capacity")
	}
	u, err := safety.CheckUtilization(demand, res.CapacityKN)
	if err != nil {
		return Result{}, err
	}
	res.Utilization = &u
	return res, nil
}
