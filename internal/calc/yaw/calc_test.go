package yaw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	in := Input{
		RotorDiameterM:    126.0,
		TowerTopDiameterM: 3.78,
		BedplateHeightM:   1.8,
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	plate := math.Pi * 3.78 * (3.78 * 0.10) * (126.0 / 1000.0) * 8000.0
	assert.Equal(t, 8, res.MotorCount)
	assert.InDelta(t, plate+8*190.0, res.MassKG, 1e-6)
	assert.InDelta(t, -1.8, res.CM[2], 1e-12)
	assert.Zero(t, res.I)
}

func TestMotorCountDefaults(t *testing.T) {
	for _, tc := range []struct {
		diameter float64
		motors   int
	}{
		{80.0, 4},
		{100.0, 6},
		{150.0, 8},
	} {
		res, err := Calculate(Input{RotorDiameterM: tc.diameter, TowerTopDiameterM: 3.0})
		require.NoError(t, err)
		assert.Equal(t, tc.motors, res.MotorCount, "diameter %g", tc.diameter)
	}

	explicit, err := Calculate(Input{RotorDiameterM: 150.0, TowerTopDiameterM: 3.0, MotorCount: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, explicit.MotorCount)
}

func TestRejectsBadTowerDiameter(t *testing.T) {
	_, err := Calculate(Input{RotorDiameterM: 126.0})
	assert.Error(t, err)
}
