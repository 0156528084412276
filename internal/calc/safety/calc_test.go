package safety

import (
	"encoding/json"
	"errors"
	"testing"

	"Steelcheck/internal/calc/calcerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSafetyFactorSafe(t *testing.T) {
	res, err := CheckSafetyFactor(100, 150)
	require.NoError(t, err)
	assert.InDelta(t, 0.667, res.Ratio, 0.001)
	assert.True(t, res.IsSafe)
	assert.Equal(t, 50.0, res.Margin)
	assert.Equal(t, StatusSafe, res.Status)
}

func TestCheckSafetyFactorUnsafe(t *testing.T) {
	res, err := CheckSafetyFactor(150, 100)
	require.NoError(t, err)
	assert.Equal(t, 1.5, res.Ratio)
	assert.False(t, res.IsSafe)
	assert.Equal(t, -50.0, res.Margin)
	assert.Equal(t, StatusUnsafe, res.Status)
}

func TestCheckSafetyFactorZeroPermissible(t *testing.T) {
	_, err := CheckSafetyFactor(10, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerr.ErrDivision))
}

func TestCheckUtilizationBoundary(t *testing.T) {
	res, err := CheckUtilization(250, 250)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Ratio)
	assert.True(t, res.IsSafe)
	assert.Equal(t, StatusAdequate, res.Status)
	assert.Equal(t, 0.0, res.ReservePercent)
}

func TestCheckUtilizationBands(t *testing.T) {
	cases := []struct {
		demand float64
		status string
		safe   bool
	}{
		{0, StatusUnderUtilized, true},
		{70, StatusUnderUtilized, true},
		{85, StatusAdequate, true},
		{105, StatusMarginal, false},
		{150, StatusOverstressed, false},
	}
	for _, c := range cases {
		res, err := CheckUtilization(c.demand, 100)
		require.NoError(t, err)
		assert.Equal(t, c.status, res.Status, "demand %v", c.demand)
		assert.Equal(t, c.safe, res.IsSafe, "demand %v", c.demand)
	}
}

func TestCheckUtilizationReserve(t *testing.T) {
	res, err := CheckUtilization(60, 100)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, res.Percent, 1e-9)
	assert.InDelta(t, 40.0, res.ReservePercent, 1e-9)

	_, err = CheckUtilization(60, 0)
	assert.True(t, errors.Is(err, calcerr.ErrDivision))
}

func TestChecksAreDeterministic(t *testing.T) {
	a, _ := CheckUtilization(0.1, 0.3)
	b, _ := CheckUtilization(0.1, 0.3)
	assert.Equal(t, a, b)
}

func TestUtilizationJSONKeepsZeroPercentages(t *testing.T) {
	over, err := CheckUtilization(150, 100)
	require.NoError(t, err)
	idle, err := CheckUtilization(0, 100)
	require.NoError(t, err)

	for _, res := range []Result{over, idle} {
		b, err := json.Marshal(res)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(b, &m))
		assert.Contains(t, m, "utilization_percent")
		assert.Contains(t, m, "reserve_capacity")
	}
	assert.Equal(t, 0.0, over.ReservePercent)
	assert.Equal(t, 0.0, idle.Percent)
}

func TestCheckSafetyFactorPercentages(t *testing.T) {
	res, err := CheckSafetyFactor(80, 100)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, res.Percent, 1e-9)
	assert.InDelta(t, 20.0, res.ReservePercent, 1e-9)
}
