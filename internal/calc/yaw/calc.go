package yaw

import (
	"fmt"
	"math"
)

// Friction plate yaw system with electric drives, sized off the Vestas V80
// Bonfiglioli 709T2M motor.

const (
	steelDensity = 8000.0
	motorMassKG  = 190.0
)

type Input struct {
	RotorDiameterM    float64 `json:"rotor_diameter_m"`
	RotorThrustN      float64 `json:"rotor_thrust_n"`
	TowerTopDiameterM float64 `json:"tower_top_diameter_m"`
	AboveYawMassKG    float64 `json:"above_yaw_mass_kg"`
	BedplateHeightM   float64 `json:"bedplate_height_m"`
	MotorCount        int     `json:"motor_count"` // 0 picks a rotor-diameter default
}

type Result struct {
	MassKG     float64    `json:"mass_kg"`
	CM         [3]float64 `json:"cm"`
	I          [3]float64 `json:"i"`
	MotorCount int        `json:"motor_count"`
}

func Calculate(in Input) (Result, error) {
	if in.TowerTopDiameterM <= 0 {
		return Result{}, fmt.Errorf("tower top diameter must be positive, got %g", in.TowerTopDiameterM)
	}

	motors := in.MotorCount
	if motors == 0 {
		switch {
		case in.RotorDiameterM < 90.0:
			motors = 4
		case in.RotorDiameterM < 120.0:
			motors = 6
		default:
			motors = 8
		}
	}

	// friction plate surface width 1/10 its diameter, thickness scaling
	// with rotor diameter
	plateVol := math.Pi * in.TowerTopDiameterM * (in.TowerTopDiameterM * 0.10) * (in.RotorDiameterM / 1000.0)
	plateMass := plateVol * steelDensity

	var res Result
	res.MassKG = plateMass + float64(motors)*motorMassKG
	res.MotorCount = motors
	// collocated with the tower top center; treated as nonrotating mass
	res.CM[2] = -in.BedplateHeightM
	return res, nil
}
