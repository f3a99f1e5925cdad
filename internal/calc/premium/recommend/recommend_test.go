package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bearing "Driveline/internal/calc/bearing"
	dyn "Driveline/internal/calc/dyn"
)

func testSpectrum() dyn.LoadSpectrum {
	return dyn.LoadSpectrum{
		RadialN: []float64{1.0e6, 1.2e6, 1.4e6},
		AxialN:  []float64{1.0e5, 1.2e5, 1.4e5},
		Cycles:  []float64{0, 5e5, 1e6},
	}
}

func TestBearingRanksByMass(t *testing.T) {
	res, err := Bearing(BearingRecommendInput{
		ShaftDiameterM: 0.9,
		Spectrum:       testSpectrum(),
		LifeCycles:     1e8,
	})
	require.NoError(t, err)

	// CARB drops out on the axial component; everything else survives.
	require.NotEmpty(t, res.Options)
	for _, opt := range res.Options {
		assert.NotEqual(t, bearing.CARB, opt.Type)
		assert.Greater(t, opt.CMin, 0.0)
	}
	assert.Equal(t, res.Options[0], res.Best)
	for i := 1; i < len(res.Options); i++ {
		assert.LessOrEqual(t, res.Options[i-1].Spec.MassKG, res.Options[i].Spec.MassKG)
	}
}

func TestBearingHonorsCandidateList(t *testing.T) {
	res, err := Bearing(BearingRecommendInput{
		ShaftDiameterM: 0.9,
		Spectrum:       testSpectrum(),
		LifeCycles:     1e8,
		Candidates:     []bearing.Type{bearing.SRB},
	})
	require.NoError(t, err)
	require.Len(t, res.Options, 1)
	assert.Equal(t, bearing.SRB, res.Best.Type)

	_, err = Bearing(BearingRecommendInput{
		ShaftDiameterM: 0.9,
		Spectrum:       testSpectrum(),
		LifeCycles:     1e8,
		Candidates:     []bearing.Type{bearing.Type("XYZ")},
	})
	assert.ErrorIs(t, err, bearing.ErrUnknownType)
}

func TestBearingRejectsBadInput(t *testing.T) {
	_, err := Bearing(BearingRecommendInput{Spectrum: testSpectrum(), LifeCycles: 1e8})
	assert.Error(t, err)

	_, err = Bearing(BearingRecommendInput{
		ShaftDiameterM: 0.9,
		Spectrum:       dyn.LoadSpectrum{Cycles: []float64{0, 1}},
		LifeCycles:     1e8,
	})
	assert.ErrorIs(t, err, dyn.ErrMalformedLoadSpectrum)

	// All candidates ruled out by load condition.
	_, err = Bearing(BearingRecommendInput{
		ShaftDiameterM: 0.9,
		Spectrum:       testSpectrum(),
		LifeCycles:     1e8,
		Candidates:     []bearing.Type{bearing.CARB},
	})
	assert.Error(t, err)
}
