package analysis

import (
	"errors"
	"testing"

	"Steelcheck/internal/calc/calcerr"
	"Steelcheck/internal/calc/deflection"
	"Steelcheck/internal/calc/loads"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		Loads:             loads.Input{Combination: loads.CombinationNormal, DeadKN: 100, LiveKN: 50},
		SectionCapacityKN: 300,
	}
}

func TestCompleteMinimal(t *testing.T) {
	rep, err := Complete(baseInput())
	require.NoError(t, err)
	assert.Equal(t, 225.0, rep.FactoredLoad.FactoredLoadKN)
	assert.Equal(t, 0.75, rep.Utilization.Ratio)
	assert.Nil(t, rep.SafetyFactor)
	assert.Nil(t, rep.MomentCapacity)
	assert.Nil(t, rep.Deflection)
	assert.True(t, rep.IsAcceptable)
	assert.Equal(t, StatusAcceptable, rep.OverallStatus)
}

func TestCompleteAllSteps(t *testing.T) {
	in := baseInput()
	in.AppliedStressMPa = 120
	in.AllowableStressMPa = 150
	in.Grade = "e250"
	in.SectionModulusMM3 = 1e6
	in.ShearAreaMM2 = 2000
	in.Deflection = &deflection.Input{ActualMM: 25, SpanMM: 6000}

	rep, err := Complete(in)
	require.NoError(t, err)
	require.NotNil(t, rep.SafetyFactor)
	require.NotNil(t, rep.Material)
	assert.Equal(t, "E250", rep.Material.Grade)
	require.NotNil(t, rep.MomentCapacity)
	assert.InDelta(t, 227.27, rep.MomentCapacity.CapacityKN, 0.01)
	require.NotNil(t, rep.ShearCapacity)
	require.NotNil(t, rep.Deflection)
	assert.False(t, rep.Deflection.IsSafe)
	assert.False(t, rep.IsAcceptable)
	assert.Equal(t, StatusReviewRequired, rep.OverallStatus)
}

func TestCompleteCapacitiesFromExplicitYield(t *testing.T) {
	in := baseInput()
	in.YieldMPa = 250
	in.SectionModulusMM3 = 1e6
	in.ShearAreaMM2 = 2000

	rep, err := Complete(in)
	require.NoError(t, err)
	assert.Nil(t, rep.Material)
	require.NotNil(t, rep.MomentCapacity)
	assert.InDelta(t, 227.27, rep.MomentCapacity.CapacityKN, 0.01)
	require.NotNil(t, rep.ShearCapacity)
	assert.InDelta(t, 262.43, rep.ShearCapacity.CapacityKN, 0.01)
}

func TestCompleteExplicitYieldOverridesGrade(t *testing.T) {
	in := baseInput()
	in.Grade = "E450"
	in.YieldMPa = 250
	in.SectionModulusMM3 = 1e6

	rep, err := Complete(in)
	require.NoError(t, err)
	require.NotNil(t, rep.Material)
	assert.Equal(t, 450.0, rep.Material.YieldMPa)
	require.NotNil(t, rep.MomentCapacity)
	assert.InDelta(t, 227.27, rep.MomentCapacity.CapacityKN, 0.01)
}

func TestCompleteOverUtilized(t *testing.T) {
	in := baseInput()
	in.SectionCapacityKN = 200
	rep, err := Complete(in)
	require.NoError(t, err)
	assert.False(t, rep.Utilization.IsSafe)
	assert.Equal(t, StatusReviewRequired, rep.OverallStatus)
}

func TestCompleteFailsFastWithKind(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"missing wind", func(in *Input) { in.Loads.Combination = loads.CombinationWind }, calcerr.ErrInvalidCombination},
		{"zero capacity", func(in *Input) { in.SectionCapacityKN = 0 }, calcerr.ErrDivision},
		{"unknown grade", func(in *Input) { in.Grade = "X999" }, calcerr.ErrGradeNotFound},
		{"zero span", func(in *Input) { in.Deflection = &deflection.Input{ActualMM: 1} }, calcerr.ErrDivision},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := baseInput()
			c.mutate(&in)
			_, err := Complete(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), err.Error())
		})
	}
}
