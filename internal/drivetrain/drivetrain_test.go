package drivetrain

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Driveline/internal/calc/bearing"
	"Driveline/internal/calc/gearbox"
	"Driveline/internal/calc/shaft"
)

func referenceConfig() Config {
	return Config{
		Topology:          shaft.FourPoint,
		MB1Type:           bearing.CARB,
		MB2Type:           bearing.SRB,
		GearConfiguration: gearbox.EEP,
		ShaftFactor:       gearbox.ShaftNormal,
		Uptower:           true,
		Crane:             true,
		BladeCount:        3,
	}
}

// 5 MW reference machine.
func referenceCase() Input {
	rpm := 12.1
	torque := 1.5 * (5000 * 1000 / 0.95) / (rpm * math.Pi / 30.0)
	return Input{
		RotorDiameterM:     126.0,
		RotorMassKG:        142585.0,
		RotorRPM:           rpm,
		RotorTorqueNM:      torque,
		RotorThrustN:       599610.0,
		RotorForceYN:       186780.0,
		RotorForceZN:       -842710.0,
		RotorMxNM:          torque,
		RotorMyNM:          -16665000.0,
		RotorMzNM:          2896300.0,
		MachineRatingKW:    5000.0,
		GearRatio:          96.76,
		PlanetNumbers:      [3]int{3, 3, 1},
		ShaftAngleRad:      5.0 * math.Pi / 180.0,
		ShaftRatio:         0.10,
		ShrinkDiscKG:       333.3 * 5000 / 1000.0,
		CarrierMassKG:      8000.0,
		FlangeLengthM:      0.5,
		OverhangM:          5.0,
		DistanceHub2MBM:    1.912,
		GearboxCMX:         0.1,
		HSSLengthM:         1.5,
		TowerTopDiameterM:  3.78,
		BladeRootDiameterM: 3.542,
		BladeMassKG:        17740.0,
	}
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := referenceConfig()
	cfg.Topology = shaft.Topology("two_point")
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrUnknownTopology)

	cfg = referenceConfig()
	cfg.MB1Type = bearing.Type("XYZ")
	_, err = New(cfg)
	assert.ErrorIs(t, err, bearing.ErrUnknownType)

	cfg = referenceConfig()
	cfg.MB2Type = bearing.Type("XYZ")
	_, err = New(cfg)
	assert.ErrorIs(t, err, bearing.ErrUnknownType)

	cfg = referenceConfig()
	cfg.GearConfiguration = gearbox.Configuration("abc")
	_, err = New(cfg)
	assert.Error(t, err)

	// A bad second bearing is ignored on the single-bearing layout.
	cfg = referenceConfig()
	cfg.Topology = shaft.ThreePoint
	cfg.MB1Type = bearing.SRB
	cfg.MB2Type = bearing.Type("XYZ")
	_, err = New(cfg)
	assert.NoError(t, err)
}

func TestEvaluateFourPoint(t *testing.T) {
	g, err := New(referenceConfig())
	require.NoError(t, err)

	out, err := g.Evaluate(referenceCase())
	require.NoError(t, err)

	assert.Greater(t, out.Shaft.MassKG, 0.0)
	assert.Greater(t, out.MB1.MassKG, 0.0)
	assert.Greater(t, out.MB2.MassKG, 0.0)
	assert.Greater(t, out.Gearbox.MassKG, 0.0)
	assert.Greater(t, out.HSS.MassKG, 0.0)
	assert.Greater(t, out.Generator.MassKG, 0.0)
	assert.Greater(t, out.Transformer.MassKG, 0.0)
	assert.Greater(t, out.Bedplate.MassKG, 0.0)
	assert.Greater(t, out.Yaw.MassKG, 0.0)
	assert.Greater(t, out.Hub.SystemMassKG, 0.0)

	assert.InDelta(t, out.AboveYaw.AboveYawMassKG+out.Yaw.MassKG, out.Nacelle.MassKG, 1e-6)
	assert.Greater(t, out.RNA.MassKG, out.Shaft.MassKG)
	// Rotor overhang keeps the assembly CM upwind of the tower axis.
	assert.Less(t, out.RNA.CMX, 0.0)
}

func TestEvaluateThreePointHasNoSecondBearing(t *testing.T) {
	cfg := referenceConfig()
	cfg.Topology = shaft.ThreePoint
	cfg.MB1Type = bearing.SRB
	cfg.MB2Type = ""
	g, err := New(cfg)
	require.NoError(t, err)

	out, err := g.Evaluate(referenceCase())
	require.NoError(t, err)
	assert.Zero(t, out.MB2)
	assert.Zero(t, out.Shaft.MB2)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	g, err := New(referenceConfig())
	require.NoError(t, err)

	first, err := g.Evaluate(referenceCase())
	require.NoError(t, err)
	second, err := g.Evaluate(referenceCase())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluateConcurrently(t *testing.T) {
	g, err := New(referenceConfig())
	require.NoError(t, err)

	want, err := g.Evaluate(referenceCase())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := g.Evaluate(referenceCase())
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestDowntowerTransformerIsZero(t *testing.T) {
	cfg := referenceConfig()
	cfg.Uptower = false
	g, err := New(cfg)
	require.NoError(t, err)

	out, err := g.Evaluate(referenceCase())
	require.NoError(t, err)
	assert.Zero(t, out.Transformer)
}
