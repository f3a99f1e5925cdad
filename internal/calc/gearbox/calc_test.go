package gearbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInput() Input {
	return Input{
		Configuration:  EEP,
		ShaftFactor:    ShaftNormal,
		GearRatio:      96.76,
		PlanetNumbers:  [3]int{3, 3, 1},
		RotorDiameterM: 126.0,
		RotorTorqueNM:  4.1e6,
		InputCMX:       0.1,
	}
}

func TestStageRatiosMultiplyToOverall(t *testing.T) {
	for _, cfg := range []Configuration{EEP, EEP2, EEP3, EPP} {
		in := referenceInput()
		in.Configuration = cfg
		res, err := Calculate(in)
		require.NoError(t, err, "config %q", cfg)

		product := res.StageRatios[0] * res.StageRatios[1] * res.StageRatios[2]
		assert.InDelta(t, in.GearRatio, product, 1e-6, "config %q", cfg)
		for s, r := range res.StageRatios {
			assert.Greater(t, r, 0.0, "config %q stage %d", cfg, s)
		}
	}
}

func TestEEP3PinsFinalStage(t *testing.T) {
	in := referenceInput()
	in.Configuration = EEP3
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.StageRatios[2], 1e-12)
}

func TestMassScalesWithShortShaft(t *testing.T) {
	normal, err := Calculate(referenceInput())
	require.NoError(t, err)
	assert.Greater(t, normal.MassKG, 0.0)
	for _, m := range normal.StageMassesKG {
		assert.Greater(t, m, 0.0)
	}

	in := referenceInput()
	in.ShaftFactor = ShaftShort
	short, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, short.MassKG/normal.MassKG, 1e-9)
}

func TestEnvelopeTracksRotorDiameter(t *testing.T) {
	res, err := Calculate(referenceInput())
	require.NoError(t, err)
	assert.InDelta(t, 0.012*126.0, res.LengthM, 1e-12)
	assert.InDelta(t, 0.015*126.0, res.HeightM, 1e-12)
	assert.InDelta(t, 0.1, res.CM[0], 1e-12)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	in := referenceInput()
	in.GearRatio = 1.0
	_, err := Calculate(in)
	assert.Error(t, err)

	in = referenceInput()
	in.Configuration = Configuration("xxe")
	_, err = Calculate(in)
	assert.Error(t, err)

	in = referenceInput()
	in.ShaftFactor = ShaftFactor("long")
	_, err = Calculate(in)
	assert.Error(t, err)
}

func TestValidConfiguration(t *testing.T) {
	assert.True(t, ValidConfiguration(EEP))
	assert.True(t, ValidConfiguration(EPP))
	assert.False(t, ValidConfiguration(Configuration("abc")))
	assert.False(t, ValidConfiguration(Configuration("")))
}
