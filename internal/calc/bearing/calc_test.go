package bearing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dyn "Driveline/internal/calc/dyn"
)

func testSpectrum(scale float64) dyn.LoadSpectrum {
	return dyn.LoadSpectrum{
		RadialN: []float64{1.0e6 * scale, 1.2e6 * scale, 1.4e6 * scale},
		AxialN:  []float64{1.0e5 * scale, 1.2e5 * scale, 1.4e5 * scale},
		Cycles:  []float64{0, 5e5, 1e6},
	}
}

func TestResizeSRBGeometry(t *testing.T) {
	spec, err := Resize(SRB, 0.72)
	require.NoError(t, err)
	assert.InDelta(t, 0.198864, spec.FacewidthM, 1e-6)
	assert.InDelta(t, 498.35, spec.MassKG, 0.1)
	assert.False(t, spec.Reinforced)
}

func TestResizeUnknownType(t *testing.T) {
	_, err := Resize(Type("XYZ"), 0.5)
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Resize(SRB, 0)
	assert.Error(t, err)
}

func TestRatingLifeMonotoneInLife(t *testing.T) {
	s := testSpectrum(1)
	c1, err := RatingLife(SRB, s, 1e8)
	require.NoError(t, err)
	c2, err := RatingLife(SRB, s, 1e9)
	require.NoError(t, err)
	assert.Greater(t, c2, c1)
}

func TestRatingLifeMonotoneInLoad(t *testing.T) {
	c1, err := RatingLife(SRB, testSpectrum(1), 1e8)
	require.NoError(t, err)
	c2, err := RatingLife(SRB, testSpectrum(2), 1e8)
	require.NoError(t, err)
	assert.Greater(t, c2, c1)
}

func TestRatingLifeMalformedSpectrum(t *testing.T) {
	s := dyn.LoadSpectrum{
		RadialN: []float64{1e6, 1e6},
		AxialN:  []float64{0, 0},
		Cycles:  []float64{0, 1e6},
	}
	_, err := RatingLife(SRB, s, 1e8)
	assert.ErrorIs(t, err, dyn.ErrMalformedLoadSpectrum)
}

func TestCARBRejectsAxialLoad(t *testing.T) {
	_, err := RatingLife(CARB, testSpectrum(1), 1e8)
	assert.ErrorIs(t, err, ErrInvalidLoadCondition)

	noAxial := dyn.LoadSpectrum{
		RadialN: []float64{1e6, 1.2e6, 1.4e6},
		AxialN:  []float64{0, 0, 0},
		Cycles:  []float64{0, 5e5, 1e6},
	}
	_, err = RatingLife(CARB, noAxial, 1e8)
	assert.NoError(t, err)
}

func TestCRBRejectsHighAxialRatio(t *testing.T) {
	s := dyn.LoadSpectrum{
		RadialN: []float64{1e6, 1.2e6, 1.4e6},
		AxialN:  []float64{6e5, 7e5, 8e5},
		Cycles:  []float64{0, 5e5, 1e6},
	}
	_, err := RatingLife(CRB, s, 1e8)
	assert.ErrorIs(t, err, ErrInvalidLoadCondition)
}

func TestSizeForFatigueReinforcedSelection(t *testing.T) {
	const d = 0.8
	// Modest demand stays on the standard curve.
	light, err := SizeForFatigue(SRB, d, testSpectrum(1), 1e6)
	require.NoError(t, err)
	assert.False(t, light.Reinforced)

	// Extreme demand crosses the rating threshold.
	heavy, err := SizeForFatigue(SRB, d, testSpectrum(50), 1e10)
	require.NoError(t, err)
	assert.True(t, heavy.Reinforced)
	assert.Greater(t, heavy.MassKG, light.MassKG)
	assert.Greater(t, heavy.FacewidthM, light.FacewidthM)
}

func TestDeflectionLimits(t *testing.T) {
	for _, typ := range []Type{CARB, SRB, TRB1, TRB2, CRB, RB} {
		lim, err := DeflectionLimitRad(typ)
		require.NoError(t, err)
		assert.Greater(t, lim, 0.0)
	}
	_, err := DeflectionLimitRad(Type("XYZ"))
	assert.ErrorIs(t, err, ErrUnknownType)
}
