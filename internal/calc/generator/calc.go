package generator

import (
	"fmt"
	"math"
)

// Design selects the generator scaling law.
type Design string

const (
	Geared      Design = "geared"
	SingleStage Design = "single_stage"
	MultiDrive  Design = "multi"
	PMDirect    Design = "pm_direct"
)

func Valid(d Design) bool {
	switch d {
	case Geared, SingleStage, MultiDrive, PMDirect:
		return true
	}
	return false
}

// mass = coeff * rating^exp for geared machines, coeff * torque^exp for
// direct drive
func coefficients(d Design) (coeff, exp float64) {
	switch d {
	case Geared:
		return 6.4737, 0.9223
	case SingleStage:
		return 10.51, 0.9223
	case MultiDrive:
		return 5.34, 0.9223
	case PMDirect:
		return 37.68, 1.0
	}
	return 0, 0
}

type Input struct {
	Design          Design     `json:"design"`
	RotorDiameterM  float64    `json:"rotor_diameter_m"`
	MachineRatingKW float64    `json:"machine_rating_kw"`
	GearRatio       float64    `json:"gear_ratio"`
	HSSLengthM      float64    `json:"hss_length_m"`
	HSSCM           [3]float64 `json:"hss_cm"`
	RotorRPM        float64    `json:"rotor_rpm"` // 0 assumes an 80 m/s tip speed
}

type Result struct {
	MassKG float64    `json:"mass_kg"`
	CM     [3]float64 `json:"cm"`
	I      [3]float64 `json:"i"`
}

func Calculate(in Input) (Result, error) {
	design := in.Design
	if design == "" {
		design = Geared
	}
	if !Valid(design) {
		return Result{}, fmt.Errorf("unknown generator design %q", in.Design)
	}
	if in.GearRatio <= 0 {
		return Result{}, fmt.Errorf("gear ratio must be positive, got %g", in.GearRatio)
	}

	rpm := in.RotorRPM
	if rpm == 0 {
		rpm = 80.0 / (in.RotorDiameterM * 0.5 * math.Pi / 30.0)
	}
	torque := (in.MachineRatingKW * 1.1) / (rpm * math.Pi / 30.0)

	coeff, exp := coefficients(design)
	var mass float64
	if design == PMDirect {
		mass = coeff * math.Pow(torque, exp)
	} else {
		mass = coeff * math.Pow(in.MachineRatingKW, exp)
	}

	length := 1.8 * 0.015 * in.RotorDiameterM
	depth := 0.015 * in.RotorDiameterM
	width := 0.5 * depth

	var res Result
	res.MassKG = mass
	res.CM[0] = in.HSSCM[0] + in.HSSLengthM/2.0 + length/2.0
	res.CM[1] = in.HSSCM[1]
	res.CM[2] = in.HSSCM[2]
	res.I[0] = 4.86e-5*math.Pow(in.RotorDiameterM, 5.333) + (2.0/3.0*mass)*(depth*depth+width*width)/8.0
	res.I[1] = res.I[0]/2.0/(in.GearRatio*in.GearRatio) +
		1.0/3.0*mass*length*length/12.0 +
		2.0/3.0*mass*(depth*depth+width*width+4.0/3.0*length*length)/16.0
	res.I[2] = res.I[1]
	return res, nil
}
