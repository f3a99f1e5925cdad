package transformer

import "fmt"

// The uptower transformer is placed so that the nacelle CM stays within the
// tower bottom outer diameter, which keeps tower base moments down.

type Input struct {
	Uptower           bool       `json:"uptower"`
	MachineRatingKW   float64    `json:"machine_rating_kw"`
	TowerTopDiameterM float64    `json:"tower_top_diameter_m"`
	GeneratorCM       [3]float64 `json:"generator_cm"`
	RotorDiameterM    float64    `json:"rotor_diameter_m"`
	RNAMassKG         float64    `json:"rna_mass_kg"`
	RNACMX            float64    `json:"rna_cm_x"`
}

type Result struct {
	MassKG float64    `json:"mass_kg"`
	CM     [3]float64 `json:"cm"`
	I      [3]float64 `json:"i"`
}

func Calculate(in Input) (Result, error) {
	if !in.Uptower {
		return Result{}, nil
	}
	if in.MachineRatingKW <= 0 {
		return Result{}, fmt.Errorf("machine rating must be positive, got %g", in.MachineRatingKW)
	}

	// approximate average from industry data
	bottomOD := in.TowerTopDiameterM * 1.7

	mass := 2.4445*in.MachineRatingKW + 1599.0

	var x float64
	if in.RNACMX <= -bottomOD/2.0 {
		x = (bottomOD/2.0*(in.RNAMassKG+mass) - in.RNAMassKG*in.RNACMX) / mass
		if x > in.GeneratorCM[0]*3.0 {
			x = in.GeneratorCM[0] + 1.6*0.015*in.RotorDiameterM
		}
	} else {
		x = in.GeneratorCM[0] + 1.8*0.015*in.RotorDiameterM
	}

	width := in.TowerTopDiameterM + 0.5
	height := 0.016 * in.RotorDiameterM
	length := 0.012 * in.RotorDiameterM

	var res Result
	res.MassKG = mass
	res.CM[0] = x
	res.CM[1] = in.GeneratorCM[1]
	res.CM[2] = in.GeneratorCM[2] / 0.75 * 0.5
	res.I[0] = mass * (height*height + width*width) / 12.0
	res.I[1] = mass * (length*length + height*height) / 12.0
	res.I[2] = mass * (length*length + width*width) / 12.0
	return res, nil
}
