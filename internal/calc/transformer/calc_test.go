package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDowntowerIsZero(t *testing.T) {
	res, err := Calculate(Input{Uptower: false, MachineRatingKW: 5000.0})
	require.NoError(t, err)
	assert.Zero(t, res)
}

func TestUptowerMassAndPlacement(t *testing.T) {
	in := Input{
		Uptower:           true,
		MachineRatingKW:   5000.0,
		TowerTopDiameterM: 3.78,
		GeneratorCM:       [3]float64{4.0, 0, 1.5},
		RotorDiameterM:    126.0,
		RNAMassKG:         350000.0,
		RNACMX:            -1.0,
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 2.4445*5000.0+1599.0, res.MassKG, 1e-6)
	// RNA CM inside the tower bottom radius: transformer trails the generator.
	assert.InDelta(t, 4.0+1.8*0.015*126.0, res.CM[0], 1e-9)
	assert.InDelta(t, 1.5/0.75*0.5, res.CM[2], 1e-9)
	for _, i := range res.I {
		assert.Greater(t, i, 0.0)
	}
}

func TestUptowerCounterweightBranch(t *testing.T) {
	in := Input{
		Uptower:           true,
		MachineRatingKW:   5000.0,
		TowerTopDiameterM: 3.78,
		GeneratorCM:       [3]float64{4.0, 0, 1.5},
		RotorDiameterM:    126.0,
		RNAMassKG:         350000.0,
		RNACMX:            -3.5,
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	// CM falls outside the tower bottom radius, so the transformer moves
	// aft to pull it back; the position is capped near the generator.
	mass := 2.4445*5000.0 + 1599.0
	bottomR := 3.78 * 1.7 / 2.0
	want := (bottomR*(350000.0+mass) - 350000.0*-3.5) / mass
	if want > 4.0*3.0 {
		want = 4.0 + 1.6*0.015*126.0
	}
	assert.InDelta(t, want, res.CM[0], 1e-6)
}

func TestRejectsBadRating(t *testing.T) {
	_, err := Calculate(Input{Uptower: true})
	assert.Error(t, err)
}
