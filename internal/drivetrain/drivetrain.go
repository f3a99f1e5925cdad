package drivetrain

import (
	"errors"
	"fmt"

	"Driveline/internal/calc/bearing"
	"Driveline/internal/calc/bedplate"
	"Driveline/internal/calc/gearbox"
	"Driveline/internal/calc/generator"
	"Driveline/internal/calc/hss"
	"Driveline/internal/calc/hub"
	"Driveline/internal/calc/mainbearing"
	"Driveline/internal/calc/nacelle"
	"Driveline/internal/calc/shaft"
	"Driveline/internal/calc/transformer"
	"Driveline/internal/calc/yaw"
)

// ErrUnknownTopology is returned by New for a topology other than the
// three-point and four-point suspensions.
var ErrUnknownTopology = errors.New("unknown drivetrain topology")

// Config fixes the drivetrain architecture. Everything here is resolved at
// graph construction; per-design numbers go into Input instead.
type Config struct {
	Topology          shaft.Topology        `json:"topology"`
	MB1Type           bearing.Type          `json:"mb1_type"`
	MB2Type           bearing.Type          `json:"mb2_type"` // four-point only
	GearConfiguration gearbox.Configuration `json:"gear_configuration"`
	ShaftFactor       gearbox.ShaftFactor   `json:"shaft_factor"`
	GeneratorDesign   generator.Design      `json:"generator_design"`
	Uptower           bool                  `json:"uptower_transformer"`
	Crane             bool                  `json:"crane"`
	YawMotorCount     int                   `json:"yaw_motor_count"`
	BladeCount        int                   `json:"blade_count"`
}

// Input is the per-design port set fed into one evaluation.
type Input struct {
	RotorDiameterM  float64 `json:"rotor_diameter_m"`
	RotorMassKG     float64 `json:"rotor_mass_kg"`
	RotorRPM        float64 `json:"rotor_rpm"`
	RotorTorqueNM   float64 `json:"rotor_torque_nm"`
	RotorThrustN    float64 `json:"rotor_thrust_n"`
	RotorForceYN    float64 `json:"rotor_force_y_n"`
	RotorForceZN    float64 `json:"rotor_force_z_n"`
	RotorMxNM       float64 `json:"rotor_mx_nm"`
	RotorMyNM       float64 `json:"rotor_my_nm"`
	RotorMzNM       float64 `json:"rotor_mz_nm"`
	MachineRatingKW float64 `json:"machine_rating_kw"`
	GearRatio       float64 `json:"gear_ratio"`
	PlanetNumbers   [3]int  `json:"planet_numbers"`
	ShaftAngleRad   float64 `json:"shaft_angle_rad"`
	ShaftRatio      float64 `json:"shaft_ratio"`
	ShrinkDiscKG    float64 `json:"shrink_disc_kg"`
	CarrierMassKG   float64 `json:"carrier_mass_kg"`
	FlangeLengthM   float64 `json:"flange_length_m"`
	OverhangM       float64 `json:"overhang_m"`
	DistanceHub2MBM float64 `json:"distance_hub2mb_m"`
	GearboxCMX      float64 `json:"gearbox_cm_x"`
	HSSLengthM      float64 `json:"hss_length_m"`

	TowerTopDiameterM float64 `json:"tower_top_diameter_m"`

	// hub system
	BladeRootDiameterM float64 `json:"blade_root_diameter_m"`
	BladeMassKG        float64 `json:"blade_mass_kg"`
}

// Output exposes every block's result plus the system totals.
type Output struct {
	Shaft       shaft.Result           `json:"shaft"`
	MB1         mainbearing.Result     `json:"mb1"`
	MB2         mainbearing.Result     `json:"mb2"`
	Gearbox     gearbox.Result         `json:"gearbox"`
	HSS         hss.Result             `json:"hss"`
	Generator   generator.Result       `json:"generator"`
	RNA         nacelle.RNAResult      `json:"rna"`
	Transformer transformer.Result     `json:"transformer"`
	Bedplate    bedplate.Result        `json:"bedplate"`
	AboveYaw    nacelle.AboveYawResult `json:"above_yaw"`
	Yaw         yaw.Result             `json:"yaw"`
	Nacelle     nacelle.SystemResult   `json:"nacelle"`
	Hub         hub.Result             `json:"hub"`
}

// state is the port namespace threaded through one evaluation.
type state struct {
	in  Input
	out Output
}

type block struct {
	name string
	run  func(cfg Config, s *state) error
}

// Graph is an immutable ordered block list. The three-point and four-point
// suspensions build structurally different lists; evaluation is a single
// forward pass with no fixed-point iteration.
type Graph struct {
	cfg    Config
	blocks []block
}

func New(cfg Config) (*Graph, error) {
	switch cfg.Topology {
	case shaft.ThreePoint, shaft.FourPoint:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, cfg.Topology)
	}
	if !bearing.Valid(cfg.MB1Type) {
		return nil, fmt.Errorf("%w: mb1 %q", bearing.ErrUnknownType, cfg.MB1Type)
	}
	if cfg.Topology == shaft.FourPoint && !bearing.Valid(cfg.MB2Type) {
		return nil, fmt.Errorf("%w: mb2 %q", bearing.ErrUnknownType, cfg.MB2Type)
	}
	if !gearbox.ValidConfiguration(cfg.GearConfiguration) {
		return nil, fmt.Errorf("unknown gear configuration %q", cfg.GearConfiguration)
	}
	design := cfg.GeneratorDesign
	if design == "" {
		design = generator.Geared
	}
	if !generator.Valid(design) {
		return nil, fmt.Errorf("unknown generator design %q", cfg.GeneratorDesign)
	}
	cfg.GeneratorDesign = design

	blocks := []block{
		{name: "gearbox", run: runGearbox},
		{name: "shaft", run: runShaft},
		{name: "main bearing", run: runMB1},
	}
	if cfg.Topology == shaft.FourPoint {
		blocks = append(blocks, block{name: "second bearing", run: runMB2})
	}
	blocks = append(blocks,
		block{name: "high speed side", run: runHSS},
		block{name: "generator", run: runGenerator},
		block{name: "rotor nacelle assembly", run: runRNA},
		block{name: "transformer", run: runTransformer},
		block{name: "bedplate", run: runBedplate},
		block{name: "above yaw", run: runAboveYaw},
		block{name: "yaw system", run: runYaw},
		block{name: "nacelle", run: runNacelle},
		block{name: "hub system", run: runHub},
	)
	return &Graph{cfg: cfg, blocks: blocks}, nil
}

// Evaluate runs every block once in topological order. It never mutates the
// graph or the caller's input, so concurrent calls are safe.
func (g *Graph) Evaluate(in Input) (Output, error) {
	s := state{in: in}
	for _, b := range g.blocks {
		if err := b.run(g.cfg, &s); err != nil {
			return Output{}, fmt.Errorf("%s: %w", b.name, err)
		}
	}
	return s.out, nil
}

func runGearbox(cfg Config, s *state) error {
	res, err := gearbox.Calculate(gearbox.Input{
		Configuration:  cfg.GearConfiguration,
		ShaftFactor:    cfg.ShaftFactor,
		GearRatio:      s.in.GearRatio,
		PlanetNumbers:  s.in.PlanetNumbers,
		RotorDiameterM: s.in.RotorDiameterM,
		RotorTorqueNM:  s.in.RotorTorqueNM,
		InputCMX:       s.in.GearboxCMX,
	})
	if err != nil {
		return err
	}
	s.out.Gearbox = res
	return nil
}

func runShaft(cfg Config, s *state) error {
	res, err := shaft.Calculate(shaft.Input{
		Topology:        cfg.Topology,
		MB1Type:         cfg.MB1Type,
		MB2Type:         cfg.MB2Type,
		RotorDiameterM:  s.in.RotorDiameterM,
		RotorMassKG:     s.in.RotorMassKG,
		RotorThrustN:    s.in.RotorThrustN,
		RotorForceYN:    s.in.RotorForceYN,
		RotorForceZN:    s.in.RotorForceZN,
		RotorMxNM:       s.in.RotorMxNM,
		RotorMyNM:       s.in.RotorMyNM,
		RotorMzNM:       s.in.RotorMzNM,
		OverhangM:       s.in.OverhangM,
		MachineRatingKW: s.in.MachineRatingKW,
		GearboxMassKG:   s.out.Gearbox.MassKG,
		CarrierMassKG:   s.in.CarrierMassKG,
		GearboxCM:       s.out.Gearbox.CM,
		GearboxLengthM:  s.out.Gearbox.LengthM,
		ShrinkDiscKG:    s.in.ShrinkDiscKG,
		FlangeLengthM:   s.in.FlangeLengthM,
		DistanceHub2MBM: s.in.DistanceHub2MBM,
		ShaftAngleRad:   s.in.ShaftAngleRad,
		ShaftRatio:      s.in.ShaftRatio,
	})
	if err != nil {
		return err
	}
	s.out.Shaft = res
	return nil
}

func runMB1(cfg Config, s *state) error {
	res, err := mainbearing.Calculate(mainbearing.Input{
		Position:       mainbearing.Main,
		BearingMassKG:  s.out.Shaft.MB1.MassKG,
		LSSDiameterM:   s.out.Shaft.Diameter1M,
		RotorDiameterM: s.in.RotorDiameterM,
		Location:       s.out.Shaft.MB1.CM,
	})
	if err != nil {
		return err
	}
	s.out.MB1 = res
	return nil
}

func runMB2(cfg Config, s *state) error {
	res, err := mainbearing.Calculate(mainbearing.Input{
		Position:       mainbearing.Second,
		BearingMassKG:  s.out.Shaft.MB2.MassKG,
		LSSDiameterM:   s.out.Shaft.Diameter2M,
		RotorDiameterM: s.in.RotorDiameterM,
		Location:       s.out.Shaft.MB2.CM,
	})
	if err != nil {
		return err
	}
	s.out.MB2 = res
	return nil
}

func runHSS(cfg Config, s *state) error {
	res, err := hss.Calculate(hss.Input{
		RotorDiameterM: s.in.RotorDiameterM,
		RotorTorqueNM:  s.in.RotorTorqueNM,
		GearRatio:      s.in.GearRatio,
		LSSDiameterM:   s.out.Shaft.Diameter1M,
		GearboxLengthM: s.out.Gearbox.LengthM,
		GearboxHeightM: s.out.Gearbox.HeightM,
		GearboxCM:      s.out.Gearbox.CM,
		LengthM:        s.in.HSSLengthM,
	})
	if err != nil {
		return err
	}
	s.out.HSS = res
	return nil
}

func runGenerator(cfg Config, s *state) error {
	res, err := generator.Calculate(generator.Input{
		Design:          cfg.GeneratorDesign,
		RotorDiameterM:  s.in.RotorDiameterM,
		MachineRatingKW: s.in.MachineRatingKW,
		GearRatio:       s.in.GearRatio,
		HSSLengthM:      s.out.HSS.LengthM,
		HSSCM:           s.out.HSS.CM,
		RotorRPM:        s.in.RotorRPM,
	})
	if err != nil {
		return err
	}
	s.out.Generator = res
	return nil
}

func runRNA(cfg Config, s *state) error {
	res, err := nacelle.RNA(nacelle.RNAInput{
		LSSMassKG:       s.out.Shaft.MassKG,
		MB1MassKG:       s.out.MB1.MassKG,
		MB2MassKG:       s.out.MB2.MassKG,
		GearboxMassKG:   s.out.Gearbox.MassKG,
		HSSMassKG:       s.out.HSS.MassKG,
		GeneratorMassKG: s.out.Generator.MassKG,
		LSSCM:           s.out.Shaft.CM,
		MB1CM:           s.out.MB1.CM,
		MB2CM:           s.out.MB2.CM,
		GearboxCM:       s.out.Gearbox.CM,
		HSSCM:           s.out.HSS.CM,
		GeneratorCM:     s.out.Generator.CM,
		OverhangM:       s.in.OverhangM,
		RotorMassKG:     s.in.RotorMassKG,
		MachineRatingKW: s.in.MachineRatingKW,
	})
	if err != nil {
		return err
	}
	s.out.RNA = res
	return nil
}

func runTransformer(cfg Config, s *state) error {
	res, err := transformer.Calculate(transformer.Input{
		Uptower:           cfg.Uptower,
		MachineRatingKW:   s.in.MachineRatingKW,
		TowerTopDiameterM: s.in.TowerTopDiameterM,
		GeneratorCM:       s.out.Generator.CM,
		RotorDiameterM:    s.in.RotorDiameterM,
		RNAMassKG:         s.out.RNA.MassKG,
		RNACMX:            s.out.RNA.CMX,
	})
	if err != nil {
		return err
	}
	s.out.Transformer = res
	return nil
}

func runBedplate(cfg Config, s *state) error {
	res, err := bedplate.Calculate(bedplate.Input{
		GearboxLocationM:   s.out.Gearbox.CM[0],
		GearboxMassKG:      s.out.Gearbox.MassKG,
		HSSLocationM:       s.out.HSS.CM[0],
		HSSMassKG:          s.out.HSS.MassKG,
		GeneratorLocationM: s.out.Generator.CM[0],
		GeneratorMassKG:    s.out.Generator.MassKG,
		LSSLocationM:       s.out.Shaft.CM[0],
		LSSMassKG:          s.out.Shaft.MassKG,
		MB1CM:              s.out.MB1.CM,
		MB1FacewidthM:      s.out.Shaft.MB1.FacewidthM,
		MB1MassKG:          s.out.MB1.MassKG,
		MB2CM:              s.out.MB2.CM,
		MB2MassKG:          s.out.MB2.MassKG,
		TransformerMassKG:  s.out.Transformer.MassKG,
		TransformerCM:      s.out.Transformer.CM,
		TowerTopDiameterM:  s.in.TowerTopDiameterM,
		RotorDiameterM:     s.in.RotorDiameterM,
		MachineRatingKW:    s.in.MachineRatingKW,
		RotorMassKG:        s.in.RotorMassKG,
		RotorMyNM:          s.in.RotorMyNM,
		RotorForceZN:       s.in.RotorForceZN,
		DistanceHub2MBM:    s.in.DistanceHub2MBM,
	})
	if err != nil {
		return err
	}
	s.out.Bedplate = res
	return nil
}

func runAboveYaw(cfg Config, s *state) error {
	res, err := nacelle.AboveYaw(nacelle.AboveYawInput{
		MachineRatingKW:   s.in.MachineRatingKW,
		LSSMassKG:         s.out.Shaft.MassKG,
		MB1MassKG:         s.out.MB1.MassKG,
		MB2MassKG:         s.out.MB2.MassKG,
		GearboxMassKG:     s.out.Gearbox.MassKG,
		HSSMassKG:         s.out.HSS.MassKG,
		GeneratorMassKG:   s.out.Generator.MassKG,
		BedplateMassKG:    s.out.Bedplate.MassKG,
		BedplateLengthM:   s.out.Bedplate.LengthM,
		BedplateWidthM:    s.out.Bedplate.WidthM,
		TransformerMassKG: s.out.Transformer.MassKG,
		Crane:             cfg.Crane,
	})
	if err != nil {
		return err
	}
	s.out.AboveYaw = res
	return nil
}

func runYaw(cfg Config, s *state) error {
	res, err := yaw.Calculate(yaw.Input{
		RotorDiameterM:    s.in.RotorDiameterM,
		RotorThrustN:      s.in.RotorThrustN,
		TowerTopDiameterM: s.in.TowerTopDiameterM,
		AboveYawMassKG:    s.out.AboveYaw.AboveYawMassKG,
		BedplateHeightM:   s.out.Bedplate.HeightM,
		MotorCount:        cfg.YawMotorCount,
	})
	if err != nil {
		return err
	}
	s.out.Yaw = res
	return nil
}

func runNacelle(cfg Config, s *state) error {
	res, err := nacelle.System(nacelle.SystemInput{
		AboveYawMassKG:    s.out.AboveYaw.AboveYawMassKG,
		YawMassKG:         s.out.Yaw.MassKG,
		LSSMassKG:         s.out.Shaft.MassKG,
		MB1MassKG:         s.out.MB1.MassKG,
		MB2MassKG:         s.out.MB2.MassKG,
		GearboxMassKG:     s.out.Gearbox.MassKG,
		HSSMassKG:         s.out.HSS.MassKG,
		GeneratorMassKG:   s.out.Generator.MassKG,
		BedplateMassKG:    s.out.Bedplate.MassKG,
		MainframeMassKG:   s.out.AboveYaw.MainframeKG,
		TransformerMassKG: s.out.Transformer.MassKG,
		LSSCM:             s.out.Shaft.CM,
		MB1CM:             s.out.MB1.CM,
		MB2CM:             s.out.MB2.CM,
		GearboxCM:         s.out.Gearbox.CM,
		HSSCM:             s.out.HSS.CM,
		GeneratorCM:       s.out.Generator.CM,
		BedplateCM:        s.out.Bedplate.CM,
		TransformerCM:     s.out.Transformer.CM,
		LSSI:              s.out.Shaft.I,
		MB1I:              s.out.MB1.I,
		MB2I:              s.out.MB2.I,
		GearboxI:          s.out.Gearbox.I,
		HSSI:              s.out.HSS.I,
		GeneratorI:        s.out.Generator.I,
		BedplateI:         s.out.Bedplate.I,
		TransformerI:      s.out.Transformer.I,
	})
	if err != nil {
		return err
	}
	s.out.Nacelle = res
	return nil
}

func runHub(cfg Config, s *state) error {
	res, err := hub.Calculate(hub.Input{
		RotorDiameterM:     s.in.RotorDiameterM,
		BladeRootDiameterM: s.in.BladeRootDiameterM,
		BladeCount:         cfg.BladeCount,
		BladeMassKG:        s.in.BladeMassKG,
		MachineRatingKW:    s.in.MachineRatingKW,
		RotorMyNM:          s.in.RotorMyNM,
		DistanceHub2MBM:    s.in.DistanceHub2MBM,
		ShaftAngleRad:      s.in.ShaftAngleRad,
		MB1Location:        s.out.MB1.CM,
	})
	if err != nil {
		return err
	}
	s.out.Hub = res
	return nil
}
