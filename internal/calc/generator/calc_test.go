package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGearedMassScaling(t *testing.T) {
	res, err := Calculate(Input{
		Design:          Geared,
		RotorDiameterM:  126.0,
		MachineRatingKW: 5000.0,
		GearRatio:       96.76,
		HSSLengthM:      1.5,
		HSSCM:           [3]float64{1.6, 0, 1.1},
	})
	require.NoError(t, err)

	assert.InDelta(t, 6.4737*math.Pow(5000.0, 0.9223), res.MassKG, 1e-6)
	length := 1.8 * 0.015 * 126.0
	assert.InDelta(t, 1.6+1.5/2.0+length/2.0, res.CM[0], 1e-9)
	assert.InDelta(t, 1.1, res.CM[2], 1e-12)
	assert.Greater(t, res.I[0], 0.0)
}

func TestDirectDriveUsesTorque(t *testing.T) {
	in := Input{
		Design:          PMDirect,
		RotorDiameterM:  126.0,
		MachineRatingKW: 5000.0,
		GearRatio:       1.0,
		RotorRPM:        12.1,
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	torque := (5000.0 * 1.1) / (12.1 * math.Pi / 30.0)
	assert.InDelta(t, 37.68*torque, res.MassKG, 1e-6)
}

func TestEmptyDesignDefaultsToGeared(t *testing.T) {
	in := Input{RotorDiameterM: 126.0, MachineRatingKW: 5000.0, GearRatio: 96.76}
	def, err := Calculate(in)
	require.NoError(t, err)

	in.Design = Geared
	geared, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, geared, def)
}

func TestRejectsBadInput(t *testing.T) {
	_, err := Calculate(Input{Design: Design("hydraulic"), GearRatio: 10})
	assert.Error(t, err)

	_, err = Calculate(Input{Design: Geared})
	assert.Error(t, err)
}
