package nacelle

import (
	"fmt"

	"Driveline/internal/calc/shaft"
)

// Mass adders for everything above the yaw bearing plus the system-level
// nacelle and rotor-nacelle-assembly rollups.

// AboveYawInput collects the drivetrain component masses plus the bedplate
// envelope that sizes the nacelle cover.
type AboveYawInput struct {
	MachineRatingKW   float64 `json:"machine_rating_kw"`
	LSSMassKG         float64 `json:"lss_mass_kg"`
	MB1MassKG         float64 `json:"mb1_mass_kg"`
	MB2MassKG         float64 `json:"mb2_mass_kg"`
	GearboxMassKG     float64 `json:"gearbox_mass_kg"`
	HSSMassKG         float64 `json:"hss_mass_kg"`
	GeneratorMassKG   float64 `json:"generator_mass_kg"`
	BedplateMassKG    float64 `json:"bedplate_mass_kg"`
	BedplateLengthM   float64 `json:"bedplate_length_m"`
	BedplateWidthM    float64 `json:"bedplate_width_m"`
	TransformerMassKG float64 `json:"transformer_mass_kg"`
	Crane             bool    `json:"crane"`
}

type AboveYawResult struct {
	ElectricalKG    float64 `json:"electrical_kg"`
	VSElectronicsKG float64 `json:"vs_electronics_kg"`
	HVACKG          float64 `json:"hvac_kg"`
	ControlsKG      float64 `json:"controls_kg"`
	PlatformsKG     float64 `json:"platforms_kg"`
	CraneKG         float64 `json:"crane_kg"`
	MainframeKG     float64 `json:"mainframe_kg"`
	CoverKG         float64 `json:"cover_kg"`
	AboveYawMassKG  float64 `json:"above_yaw_mass_kg"`
	LengthM         float64 `json:"length_m"`
	WidthM          float64 `json:"width_m"`
	HeightM         float64 `json:"height_m"`
}

func AboveYaw(in AboveYawInput) (AboveYawResult, error) {
	if in.BedplateMassKG <= 0 {
		return AboveYawResult{}, fmt.Errorf("bedplate mass must be positive, got %g", in.BedplateMassKG)
	}

	var res AboveYawResult
	// variable-speed electronics live in the transformer estimate
	res.HVACKG = 0.08 * in.MachineRatingKW
	res.PlatformsKG = 0.125 * in.BedplateMassKG
	if in.Crane {
		res.CraneKG = 3000.0
	}
	res.MainframeKG = in.BedplateMassKG + res.CraneKG + res.PlatformsKG

	// Sunderland cover area, halved to approach the NREL cost and scaling model
	coverArea := 2.0 * in.BedplateLengthM * in.BedplateLengthM
	res.CoverKG = 84.1 * coverArea / 2.0

	res.AboveYawMassKG = in.LSSMassKG + in.MB1MassKG + in.MB2MassKG +
		in.GearboxMassKG + in.HSSMassKG + in.GeneratorMassKG +
		res.MainframeKG + in.TransformerMassKG +
		res.ElectricalKG + res.VSElectronicsKG + res.HVACKG + res.CoverKG

	res.LengthM = in.BedplateLengthM
	res.WidthM = in.BedplateWidthM
	res.HeightM = 2.0 / 3.0 * res.LengthM
	return res, nil
}

// RNAInput gathers the rotating masses used to place the transformer. The
// rollup deliberately leaves out the yaw system, transformer and bedplate.
type RNAInput struct {
	LSSMassKG       float64    `json:"lss_mass_kg"`
	MB1MassKG       float64    `json:"mb1_mass_kg"`
	MB2MassKG       float64    `json:"mb2_mass_kg"`
	GearboxMassKG   float64    `json:"gearbox_mass_kg"`
	HSSMassKG       float64    `json:"hss_mass_kg"`
	GeneratorMassKG float64    `json:"generator_mass_kg"`
	LSSCM           [3]float64 `json:"lss_cm"`
	MB1CM           [3]float64 `json:"mb1_cm"`
	MB2CM           [3]float64 `json:"mb2_cm"`
	GearboxCM       [3]float64 `json:"gearbox_cm"`
	HSSCM           [3]float64 `json:"hss_cm"`
	GeneratorCM     [3]float64 `json:"generator_cm"`
	OverhangM       float64    `json:"overhang_m"`
	RotorMassKG     float64    `json:"rotor_mass_kg"`
	MachineRatingKW float64    `json:"machine_rating_kw"`
}

type RNAResult struct {
	MassKG float64 `json:"mass_kg"`
	CMX    float64 `json:"cm_x"`
}

func RNA(in RNAInput) (RNAResult, error) {
	rotorMass := in.RotorMassKG
	if rotorMass <= 0 {
		rotorMass = shaft.DefaultRotorMass(in.MachineRatingKW)
	}

	masses := [7]float64{rotorMass, in.LSSMassKG, in.MB1MassKG, in.MB2MassKG,
		in.GearboxMassKG, in.HSSMassKG, in.GeneratorMassKG}
	locs := [7]float64{-in.OverhangM, in.LSSCM[0], in.MB1CM[0], in.MB2CM[0],
		in.GearboxCM[0], in.HSSCM[0], in.GeneratorCM[0]}

	var total, moment float64
	for i, m := range masses {
		total += m
		moment += m * locs[i]
	}
	if total <= 0 {
		return RNAResult{}, fmt.Errorf("total rotor-nacelle mass must be positive, got %g", total)
	}
	return RNAResult{MassKG: total, CMX: moment / total}, nil
}

// SystemInput rolls the full component set into nacelle totals.
type SystemInput struct {
	AboveYawMassKG    float64    `json:"above_yaw_mass_kg"`
	YawMassKG         float64    `json:"yaw_mass_kg"`
	LSSMassKG         float64    `json:"lss_mass_kg"`
	MB1MassKG         float64    `json:"mb1_mass_kg"`
	MB2MassKG         float64    `json:"mb2_mass_kg"`
	GearboxMassKG     float64    `json:"gearbox_mass_kg"`
	HSSMassKG         float64    `json:"hss_mass_kg"`
	GeneratorMassKG   float64    `json:"generator_mass_kg"`
	BedplateMassKG    float64    `json:"bedplate_mass_kg"`
	MainframeMassKG   float64    `json:"mainframe_mass_kg"`
	TransformerMassKG float64    `json:"transformer_mass_kg"`
	LSSCM             [3]float64 `json:"lss_cm"`
	MB1CM             [3]float64 `json:"mb1_cm"`
	MB2CM             [3]float64 `json:"mb2_cm"`
	GearboxCM         [3]float64 `json:"gearbox_cm"`
	HSSCM             [3]float64 `json:"hss_cm"`
	GeneratorCM       [3]float64 `json:"generator_cm"`
	BedplateCM        [3]float64 `json:"bedplate_cm"`
	TransformerCM     [3]float64 `json:"transformer_cm"`
	LSSI              [3]float64 `json:"lss_i"`
	MB1I              [3]float64 `json:"mb1_i"`
	MB2I              [3]float64 `json:"mb2_i"`
	GearboxI          [3]float64 `json:"gearbox_i"`
	HSSI              [3]float64 `json:"hss_i"`
	GeneratorI        [3]float64 `json:"generator_i"`
	BedplateI         [3]float64 `json:"bedplate_i"`
	TransformerI      [3]float64 `json:"transformer_i"`
}

type SystemResult struct {
	MassKG float64    `json:"mass_kg"`
	CM     [3]float64 `json:"cm"`
	I      [3]float64 `json:"i"`
}

// System aggregates the nacelle. Component inertias are summed about their
// own centers of mass with no transfer to the system CM, matching the
// upstream sizing convention.
func System(in SystemInput) (SystemResult, error) {
	if in.BedplateMassKG <= 0 {
		return SystemResult{}, fmt.Errorf("bedplate mass must be positive, got %g", in.BedplateMassKG)
	}

	var res SystemResult
	res.MassKG = in.AboveYawMassKG + in.YawMassKG

	// mainframe mass beyond the bedplate itself sits at the bedplate CM;
	// the yaw system sits at the tower top center
	denom := in.LSSMassKG + in.MB1MassKG + in.MB2MassKG + in.GearboxMassKG +
		in.HSSMassKG + in.GeneratorMassKG + in.MainframeMassKG + in.YawMassKG
	if denom <= 0 {
		return SystemResult{}, fmt.Errorf("component masses must be positive, got total %g", denom)
	}
	for a := 0; a < 3; a++ {
		res.CM[a] = (in.LSSMassKG*in.LSSCM[a] +
			in.TransformerMassKG*in.TransformerCM[a] +
			in.MB1MassKG*in.MB1CM[a] +
			in.MB2MassKG*in.MB2CM[a] +
			in.GearboxMassKG*in.GearboxCM[a] +
			in.HSSMassKG*in.HSSCM[a] +
			in.GeneratorMassKG*in.GeneratorCM[a] +
			in.MainframeMassKG*in.BedplateCM[a]) / denom
	}

	mainframeScale := in.MainframeMassKG / in.BedplateMassKG
	for a := 0; a < 3; a++ {
		res.I[a] = in.LSSI[a] + in.MB1I[a] + in.MB2I[a] + in.GearboxI[a] +
			in.HSSI[a] + in.GeneratorI[a] + in.TransformerI[a] +
			mainframeScale*in.BedplateI[a]
	}
	return res, nil
}
