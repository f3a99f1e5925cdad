package hss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	in := Input{
		RotorDiameterM: 126.0,
		RotorTorqueNM:  4.1e6,
		GearRatio:      96.76,
		LSSDiameterM:   0.9,
		GearboxLengthM: 1.512,
		GearboxHeightM: 1.89,
		GearboxCM:      [3]float64{0.1, 0, 0.75},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	// shaft at 0.025 kg per N*m of gearbox output torque, brake at half that
	designTorque := 4.1e6 / 96.76
	assert.InDelta(t, 1.5*0.025*designTorque, res.MassKG, 1e-6)
	assert.InDelta(t, 0.5+126.0/127.0, res.LengthM, 1e-12)
	assert.InDelta(t, 0.1+1.512/2.0+res.LengthM/2.0, res.CM[0], 1e-9)
	assert.InDelta(t, 0.75+0.2*1.89, res.CM[2], 1e-9)
	assert.Greater(t, res.I[0], 0.0)
	assert.InDelta(t, res.I[1], res.I[2], 1e-12)
}

func TestExplicitLength(t *testing.T) {
	in := Input{GearRatio: 50.0, LengthM: 2.0}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.LengthM, 1e-12)
}

func TestRejectsZeroRatio(t *testing.T) {
	_, err := Calculate(Input{})
	assert.Error(t, err)
}
