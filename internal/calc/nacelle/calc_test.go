package nacelle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboveYawAdders(t *testing.T) {
	in := AboveYawInput{
		MachineRatingKW: 5000.0,
		LSSMassKG:       30000.0,
		MB1MassKG:       6000.0,
		GearboxMassKG:   40000.0,
		HSSMassKG:       2000.0,
		GeneratorMassKG: 16000.0,
		BedplateMassKG:  80000.0,
		BedplateLengthM: 10.0,
		BedplateWidthM:  4.5,
		Crane:           true,
	}
	res, err := AboveYaw(in)
	require.NoError(t, err)

	assert.InDelta(t, 400.0, res.HVACKG, 1e-9)
	assert.InDelta(t, 10000.0, res.PlatformsKG, 1e-9)
	assert.InDelta(t, 3000.0, res.CraneKG, 1e-9)
	assert.InDelta(t, 93000.0, res.MainframeKG, 1e-9)
	assert.InDelta(t, 84.1*200.0/2.0, res.CoverKG, 1e-9)

	expected := 30000.0 + 6000.0 + 40000.0 + 2000.0 + 16000.0 +
		res.MainframeKG + res.HVACKG + res.CoverKG
	assert.InDelta(t, expected, res.AboveYawMassKG, 1e-6)
	assert.InDelta(t, 10.0, res.LengthM, 1e-12)
	assert.InDelta(t, 2.0/3.0*10.0, res.HeightM, 1e-12)

	in.BedplateMassKG = 0
	_, err = AboveYaw(in)
	assert.Error(t, err)
}

func TestRNARollup(t *testing.T) {
	in := RNAInput{
		RotorMassKG:     100000.0,
		LSSMassKG:       30000.0,
		GearboxMassKG:   40000.0,
		GeneratorMassKG: 16000.0,
		LSSCM:           [3]float64{-2.0, 0, 0},
		GearboxCM:       [3]float64{0.5, 0, 0},
		GeneratorCM:     [3]float64{3.0, 0, 0},
		OverhangM:       5.0,
	}
	res, err := RNA(in)
	require.NoError(t, err)

	assert.InDelta(t, 186000.0, res.MassKG, 1e-6)
	moment := 100000.0*-5.0 + 30000.0*-2.0 + 40000.0*0.5 + 16000.0*3.0
	assert.InDelta(t, moment/186000.0, res.CMX, 1e-9)
	assert.Less(t, res.CMX, 0.0)
}

func TestRNADefaultsRotorMass(t *testing.T) {
	res, err := RNA(RNAInput{
		MachineRatingKW: 5000.0,
		LSSMassKG:       30000.0,
		OverhangM:       5.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 23.566*5000.0+30000.0, res.MassKG, 1e-6)
}

func TestSystemRollup(t *testing.T) {
	in := SystemInput{
		AboveYawMassKG:  200000.0,
		YawMassKG:       12000.0,
		LSSMassKG:       30000.0,
		GearboxMassKG:   40000.0,
		HSSMassKG:       2000.0,
		GeneratorMassKG: 16000.0,
		BedplateMassKG:  80000.0,
		MainframeMassKG: 93000.0,
		LSSCM:           [3]float64{-2.0, 0, 1.0},
		GearboxCM:       [3]float64{0.5, 0, 0.8},
		HSSCM:           [3]float64{1.5, 0, 1.0},
		GeneratorCM:     [3]float64{3.0, 0, 1.0},
		BedplateCM:      [3]float64{0.2, 0, -1.0},
		LSSI:            [3]float64{1e5, 5e4, 5e4},
		GearboxI:        [3]float64{2e5, 1e5, 1e5},
		HSSI:            [3]float64{1e3, 5e2, 5e2},
		GeneratorI:      [3]float64{5e4, 3e4, 3e4},
		BedplateI:       [3]float64{4e5, 2e6, 2e6},
	}
	res, err := System(in)
	require.NoError(t, err)

	assert.InDelta(t, 212000.0, res.MassKG, 1e-6)

	// Inertia is a plain component sum with the bedplate share scaled up
	// to the full mainframe; no axis transfer to the system CM.
	scale := 93000.0 / 80000.0
	assert.InDelta(t, 1e5+2e5+1e3+5e4+scale*4e5, res.I[0], 1e-3)
	assert.InDelta(t, 5e4+1e5+5e2+3e4+scale*2e6, res.I[1], 1e-3)

	in.BedplateMassKG = 0
	_, err = System(in)
	assert.Error(t, err)
}
