package shaft

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bearing "Driveline/internal/calc/bearing"
)

// 5 MW reference machine inputs.
func referenceInput() Input {
	rpm := 12.1
	torque := 1.5 * (5000 * 1000 / 0.95) / (rpm * math.Pi / 30.0)
	return Input{
		RotorDiameterM:  126.0,
		RotorMassKG:     142585.0,
		RotorThrustN:    599610.0,
		RotorForceYN:    186780.0,
		RotorForceZN:    -842710.0,
		RotorMxNM:       torque,
		RotorMyNM:       -16665000.0,
		RotorMzNM:       2896300.0,
		OverhangM:       5.0,
		MachineRatingKW: 5000.0,
		GearboxMassKG:   39000.0,
		CarrierMassKG:   8000.0,
		GearboxCM:       [3]float64{0.1, 0, 0.5},
		GearboxLengthM:  1.512,
		ShrinkDiscKG:    333.3 * 5000 / 1000.0,
		FlangeLengthM:   0.5,
		DistanceHub2MBM: 1.912,
		ShaftAngleRad:   5.0 * math.Pi / 180.0,
		ShaftRatio:      0.10,
	}
}

func TestThreePointSizing(t *testing.T) {
	in := referenceInput()
	in.Topology = ThreePoint
	in.MB1Type = bearing.SRB

	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Greater(t, res.Diameter1M, 0.0)
	assert.GreaterOrEqual(t, res.Diameter1M, res.Diameter2M)
	assert.Greater(t, res.MassKG, 0.0)
	assert.Greater(t, res.LengthM, in.FlangeLengthM)
	assert.InDelta(t, in.ShaftRatio, res.InnerDiameterM/res.Diameter1M, 0.05)

	// Utility-scale 5 MW shafts land in the 0.5-1.5 m diameter range.
	assert.Greater(t, res.Diameter1M, 0.5)
	assert.Less(t, res.Diameter1M, 1.5)

	// Single support: the second seat stays empty.
	assert.Zero(t, res.MB2)
	assert.Greater(t, res.MB1.MassKG, 0.0)
	assert.InDelta(t, 0.2762*res.Diameter1M, res.MB1.FacewidthM, 1e-9)

	// Shaft hangs upwind of the gearbox along the tilted axis.
	assert.Less(t, res.CM[0], 0.0)
	assert.Greater(t, res.CM[2], 0.0)
}

func TestFourPointSizing(t *testing.T) {
	in := referenceInput()
	in.Topology = FourPoint
	in.MB1Type = bearing.CARB
	in.MB2Type = bearing.SRB

	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Greater(t, res.Diameter1M, 0.0)
	assert.GreaterOrEqual(t, res.Diameter1M, res.Diameter2M)
	assert.Greater(t, res.MassKG, 0.0)

	assert.Greater(t, res.MB1.MassKG, 0.0)
	assert.Greater(t, res.MB2.MassKG, 0.0)
	// Upwind seat sits further from the gearbox than the downwind seat.
	assert.Less(t, res.MB1.CM[0], res.MB2.CM[0])

	for _, i := range res.I {
		assert.Greater(t, i, 0.0)
	}
}

func TestCalculateRejectsBadInput(t *testing.T) {
	in := referenceInput()
	in.Topology = Topology("two_point")
	in.MB1Type = bearing.SRB
	_, err := Calculate(in)
	assert.Error(t, err)

	in = referenceInput()
	in.Topology = ThreePoint
	in.MB1Type = bearing.Type("XYZ")
	_, err = Calculate(in)
	assert.ErrorIs(t, err, bearing.ErrUnknownType)

	in = referenceInput()
	in.Topology = FourPoint
	in.MB1Type = bearing.CARB
	in.MB2Type = bearing.Type("XYZ")
	_, err = Calculate(in)
	assert.ErrorIs(t, err, bearing.ErrUnknownType)

	in = referenceInput()
	in.Topology = ThreePoint
	in.MB1Type = bearing.SRB
	in.ShaftRatio = 1.0
	_, err = Calculate(in)
	assert.Error(t, err)
}

func TestRegressionDefaults(t *testing.T) {
	assert.InDelta(t, 0.007835*126+0.9642, DefaultDistanceHub2MB(126), 1e-12)
	assert.InDelta(t, 23.566*5000, DefaultRotorMass(5000), 1e-9)
}
