// Package mainbearing turns the raw bearing race the shaft sizing
// selected into a full main-bearing assembly with housing, location and
// inertia.
package mainbearing

import (
	"fmt"
)

type Position string

const (
	Main   Position = "main"
	Second Position = "second"
)

type Input struct {
	Position       Position   `json:"position"`
	BearingMassKG  float64    `json:"bearing_mass_kg"` // race mass, no housing
	LSSDiameterM   float64    `json:"lss_diameter_m"`
	RotorDiameterM float64    `json:"rotor_diameter_m"`
	Location       [3]float64 `json:"location_m"` // zero means use the default placement
}

type Result struct {
	MassKG float64    `json:"mass_kg"`
	CM     [3]float64 `json:"cm_m"`
	I      [3]float64 `json:"i_kgm2"`
}

func Calculate(in Input) (Result, error) {
	if in.Position != Main && in.Position != Second {
		return Result{}, fmt.Errorf("bearing position must be %q or %q, got %q", Main, Second, in.Position)
	}

	// Housing runs just under 3x the race mass (DriveSE sec. 2.2.4.2).
	mass := in.BearingMassKG
	mass += mass * (8000.0 / 2700.0)

	var res Result
	switch in.Position {
	case Main:
		res.CM = in.Location
		if in.Location[0] == 0 {
			res.CM = [3]float64{-0.035 * in.RotorDiameterM, 0, 0.025 * in.RotorDiameterM}
		}
	case Second:
		// A second bearing with no placement does not exist in the
		// 3-point layout and contributes nothing.
		if mass <= 0 || in.Location[0] == 0 {
			return Result{}, nil
		}
		res.CM = in.Location
	}

	i0 := mass * in.LSSDiameterM * in.LSSDiameterM / 4.0
	res.MassKG = mass
	res.I = [3]float64{i0, i0 / 2.0, i0 / 2.0}
	return res, nil
}
