package bedplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInput() Input {
	return Input{
		GearboxLocationM:   0.1,
		GearboxMassKG:      40000.0,
		HSSLocationM:       1.6,
		HSSMassKG:          2000.0,
		GeneratorLocationM: 4.0,
		GeneratorMassKG:    16000.0,
		LSSLocationM:       -2.4,
		LSSMassKG:          30000.0,
		MB1CM:              [3]float64{-4.4, 0, 3.1},
		MB1FacewidthM:      0.25,
		MB1MassKG:          6500.0,
		TransformerMassKG:  13800.0,
		TransformerCM:      [3]float64{5.0, 0, 1.0},
		TowerTopDiameterM:  3.78,
		RotorDiameterM:     126.0,
		MachineRatingKW:    5000.0,
		RotorMassKG:        142585.0,
		RotorMyNM:          -16665000.0,
		RotorForceZN:       -842710.0,
		DistanceHub2MBM:    1.912,
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(referenceInput())
	require.NoError(t, err)

	assert.Greater(t, res.MassKG, 0.0)
	assert.Greater(t, res.LengthM, 0.0)
	assert.Greater(t, res.HeightM, 0.0)
	// frame pair plus the tower top standoff
	assert.Greater(t, res.WidthM, 3.78)
	// frames sit below the shaft line
	assert.Less(t, res.CM[2], 0.0)
	for _, i := range res.I {
		assert.Greater(t, i, 0.0)
	}
}

func TestHeavierRotorNeedsMoreBedplate(t *testing.T) {
	base, err := Calculate(referenceInput())
	require.NoError(t, err)

	in := referenceInput()
	in.RotorMassKG *= 3.0
	in.RotorMyNM *= 3.0
	in.RotorForceZN *= 3.0
	heavy, err := Calculate(in)
	require.NoError(t, err)

	assert.Greater(t, heavy.MassKG, base.MassKG)
}

func TestRejectsBadDiameters(t *testing.T) {
	in := referenceInput()
	in.RotorDiameterM = 0
	_, err := Calculate(in)
	assert.Error(t, err)

	in = referenceInput()
	in.TowerTopDiameterM = 0
	_, err = Calculate(in)
	assert.Error(t, err)
}
