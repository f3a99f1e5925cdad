package hub

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 5 MW reference machine: 126 m rotor, 3.542 m blade roots, 17740 kg blades.
func referenceInput() Input {
	rootMy := (3.06 * math.Pi / 8.0) * 1.225 * (11.05 * 11.05) * (0.0517 * math.Pow(126.0, 3)) / 3.0
	return Input{
		RotorDiameterM:     126.0,
		BladeRootDiameterM: 3.542,
		BladeCount:         3,
		BladeMassKG:        17740.0,
		MachineRatingKW:    5000.0,
		RotorMyNM:          rootMy,
		ShaftAngleRad:      5.0 * math.Pi / 180.0,
		MB1Location:        [3]float64{-4.41, 0, 3.15},
	}
}

func TestReferenceMachineMasses(t *testing.T) {
	res, err := Calculate(referenceInput())
	require.NoError(t, err)

	assert.InDelta(t, 29852.8, res.HubMassKG, 29852.8*0.01)
	assert.InDelta(t, 13362.4, res.PitchMassKG, 13362.4*0.01)
	assert.InDelta(t, 1810.5, res.SpinnerKG, 1810.5*0.01)
	assert.InDelta(t, 45025.7, res.SystemMassKG, 45025.7*0.01)
	assert.InDelta(t, res.SystemMassKG+3*17740.0, res.RotorMassKG, 1e-6)
}

func TestShellGeometry(t *testing.T) {
	mass, d, thick := Shell(3.542, 5000, 3)
	assert.Greater(t, mass, 0.0)
	assert.InDelta(t, 1.1*3.542, d, 1e-12)
	assert.InDelta(t, d/20.0, thick, 1e-12)

	// With no root diameter the rating regression takes over.
	mass2, d2, _ := Shell(0, 5000, 3)
	assert.Greater(t, mass2, 0.0)
	assert.Greater(t, d2, 0.0)
}

func TestSystemCMFollowsBearing(t *testing.T) {
	in := referenceInput()
	in.DistanceHub2MBM = 1.912
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, in.MB1Location[0]-1.912, res.SystemCM[0], 1e-9)
	assert.InDelta(t, in.MB1Location[2]+1.912*math.Sin(in.ShaftAngleRad), res.SystemCM[2], 1e-9)
}

func TestInertiaPositive(t *testing.T) {
	res, err := Calculate(referenceInput())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Greater(t, res.SystemI[i], res.HubI[i])
	}
}

func TestCalculateRejectsBadInput(t *testing.T) {
	in := referenceInput()
	in.BladeCount = 0
	_, err := Calculate(in)
	assert.Error(t, err)

	in = referenceInput()
	in.BladeMassKG = 0
	_, err = Calculate(in)
	assert.Error(t, err)
}
