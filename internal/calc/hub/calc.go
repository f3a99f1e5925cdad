// Package hub models the rotor hub assembly: cast hub shell, pitch
// system, spinner, and the combined hub-system mass/cm/inertia the
// nacelle aggregation consumes.
package hub

import (
	"fmt"
	"math"

	shaft "Driveline/internal/calc/shaft"
)

type Input struct {
	RotorDiameterM     float64 `json:"rotor_diameter_m"`
	BladeRootDiameterM float64 `json:"blade_root_diameter_m"` // zero selects the rating regression
	BladeCount         int     `json:"blade_count"`
	BladeMassKG        float64 `json:"blade_mass_kg"`
	MachineRatingKW    float64 `json:"machine_rating_kw"`
	RotorMyNM          float64 `json:"rotor_moment_y_nm"` // flapwise root bending moment

	DistanceHub2MBM float64    `json:"distance_hub2mb_m"` // zero selects the regression default
	ShaftAngleRad   float64    `json:"shaft_angle_rad"`
	MB1Location     [3]float64 `json:"mb1_location_m"`
}

type Result struct {
	HubMassKG    float64 `json:"hub_mass_kg"`
	HubDiameterM float64 `json:"hub_diameter_m"`
	HubThickM    float64 `json:"hub_thickness_m"`
	PitchMassKG  float64 `json:"pitch_system_mass_kg"`
	SpinnerKG    float64 `json:"spinner_mass_kg"`

	SystemMassKG float64    `json:"hub_system_mass_kg"`
	SystemCM     [3]float64 `json:"hub_system_cm_m"`
	SystemI      [3]float64 `json:"hub_system_i_kgm2"`
	HubI         [3]float64 `json:"hub_i_kgm2"`
	RotorMassKG  float64    `json:"rotor_mass_kg"`
}

func Calculate(in Input) (Result, error) {
	if in.BladeCount <= 0 {
		return Result{}, fmt.Errorf("blade count must be positive")
	}
	if in.BladeMassKG <= 0 {
		return Result{}, fmt.Errorf("blade mass must be positive")
	}

	var res Result
	res.HubMassKG, res.HubDiameterM, res.HubThickM = Shell(in.BladeRootDiameterM, in.MachineRatingKW, in.BladeCount)
	res.PitchMassKG = PitchSystem(in.BladeMassKG, in.RotorMyNM, in.BladeCount)
	res.SpinnerKG = Spinner(in.RotorDiameterM)

	res.SystemMassKG = res.HubMassKG + res.PitchMassKG + res.SpinnerKG
	res.RotorMassKG = res.SystemMassKG + float64(in.BladeCount)*in.BladeMassKG

	res.HubI = hollowSphereI(res.HubMassKG, res.HubDiameterM, res.HubThickM)

	pitchI0 := res.PitchMassKG * res.HubDiameterM * res.HubDiameterM / 4.0

	spinnerD := res.HubDiameterM
	if spinnerD == 0 {
		spinnerD = 3.30
	}
	// thickness scaled from the 1.5 MW reference spinner (0.055 m on a
	// 3.3 m shell)
	spinnerI := hollowSphereI(res.SpinnerKG, spinnerD, spinnerD*(0.055/3.30))

	for i := 0; i < 3; i++ {
		res.SystemI[i] = res.HubI[i] + pitchI0 + spinnerI[i]
	}

	hub2mb := in.DistanceHub2MBM
	if hub2mb <= 0 {
		hub2mb = shaft.DefaultDistanceHub2MB(in.RotorDiameterM)
	}
	res.SystemCM = [3]float64{
		in.MB1Location[0] - hub2mb,
		0,
		in.MB1Location[2] + hub2mb*math.Sin(in.ShaftAngleRad),
	}
	return res, nil
}

// Shell models the hub as a cast cylinder with openings for each blade
// root and the nacelle flange.
func Shell(bladeRootDiameterM, machineRatingKW float64, bladeCount int) (massKG, diameterM, thicknessM float64) {
	rootD := bladeRootDiameterM
	if rootD <= 0 {
		rootD = 2.659 * math.Pow(machineRatingKW*1e3, 0.3254)
	}
	rCyl := 1.1 * rootD / 2.0
	hCyl := 2.8 * rootD / 2.0
	cast := rCyl / 10.0

	cylVol := 2 * math.Pi * rCyl * cast * hCyl
	rootVol := math.Pi * (rootD / 2.0) * (rootD / 2.0) * cast
	netVol := cylVol - (1.0+float64(bladeCount))*rootVol

	const castDensity = 7200.0
	return netVol * castDensity, 2 * rCyl, cast
}

// PitchSystem applies the Sunderland pitch mass model.
func PitchSystem(bladeMassKG, rotorMyNM float64, bladeCount int) float64 {
	const (
		matlDensity = 7860.0 // BS1503-622, same as the main shaft
		matlStress  = 371.0e6
		hubFactor   = 1.0 // 0.54 for modern designs
	)
	return hubFactor * (0.22*bladeMassKG*float64(bladeCount) + 12.6*rotorMyNM*(matlDensity/matlStress))
}

// Spinner mass from the NREL cost and scaling model.
func Spinner(rotorDiameterM float64) float64 {
	return 18.5*rotorDiameterM - 520.5
}

// hollowSphereI is the moment of inertia of a thin spherical shell of
// outer diameter d and wall t, identical about all three axes.
func hollowSphereI(mass, d, t float64) [3]float64 {
	ro := d / 2.0
	ri := ro - t
	i := 0.4 * mass * (math.Pow(ro, 5) - math.Pow(ri, 5)) / (math.Pow(ro, 3) - math.Pow(ri, 3))
	return [3]float64{i, i, i}
}
