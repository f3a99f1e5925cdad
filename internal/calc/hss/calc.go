package hss

import (
	"fmt"
	"math"
)

// High speed shaft plus mechanical brake assembly downstream of the gearbox.

const matlDensity = 7850.0

type Input struct {
	RotorDiameterM float64    `json:"rotor_diameter_m"`
	RotorTorqueNM  float64    `json:"rotor_torque_nm"`
	GearRatio      float64    `json:"gear_ratio"`
	LSSDiameterM   float64    `json:"lss_diameter_m"`
	GearboxLengthM float64    `json:"gearbox_length_m"`
	GearboxHeightM float64    `json:"gearbox_height_m"`
	GearboxCM      [3]float64 `json:"gearbox_cm"`
	LengthM        float64    `json:"length_m"` // 0 picks the rotor-diameter default
}

type Result struct {
	MassKG  float64    `json:"mass_kg"`
	CM      [3]float64 `json:"cm"`
	I       [3]float64 `json:"i"`
	LengthM float64    `json:"length_m"`
}

func Calculate(in Input) (Result, error) {
	if in.GearRatio <= 0 {
		return Result{}, fmt.Errorf("gear ratio must be positive, got %g", in.GearRatio)
	}

	designTorque := in.RotorTorqueNM / in.GearRatio
	shaftMass := 0.025 * designTorque
	// brake share derived from the Sunderland HSS multiplier at 750 kW and 1.5 MW
	brakeMass := 0.5 * shaftMass

	diameter := 1.5 * in.LSSDiameterM
	length := in.LengthM
	if length == 0 {
		length = 0.5 + in.RotorDiameterM/127.0
	}

	var res Result
	res.MassKG = shaftMass + brakeMass
	res.LengthM = length
	res.CM[0] = in.GearboxCM[0] + in.GearboxLengthM/2.0 + length/2.0
	res.CM[1] = in.GearboxCM[1]
	res.CM[2] = in.GearboxCM[2] + 0.2*in.GearboxHeightM
	res.I[0] = 0.25 * length * math.Pi * matlDensity * diameter * diameter * in.GearRatio * in.GearRatio * diameter * diameter / 8.0
	res.I[1] = res.MassKG * (0.75*diameter*diameter + length*length) / 12.0
	res.I[2] = res.I[1]
	return res, nil
}
