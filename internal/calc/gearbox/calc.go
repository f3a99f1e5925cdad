// Package gearbox estimates gearbox mass with the Sunderland
// surface-durability model. Stage ratios are chosen by minimizing total
// gear volume subject to the product of the three stages matching the
// overall ratio; the product constraint is eliminated by substitution
// so the remaining problem is unconstrained.
package gearbox

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Configuration is the stage layout string: 'e' epicyclic, 'p' parallel.
type Configuration string

const (
	EEP  Configuration = "eep"
	EEP2 Configuration = "eep_2" // final stage ratio held near 2
	EEP3 Configuration = "eep_3" // final stage ratio fixed at 3
	EPP  Configuration = "epp"
)

type ShaftFactor string

const (
	ShaftNormal ShaftFactor = "normal"
	ShaftShort  ShaftFactor = "short"
)

type Input struct {
	Configuration  Configuration `json:"configuration"`
	ShaftFactor    ShaftFactor   `json:"shaft_factor"`
	GearRatio      float64       `json:"gear_ratio"`
	PlanetNumbers  [3]int        `json:"planet_numbers"`
	RotorDiameterM float64       `json:"rotor_diameter_m"`
	RotorTorqueNM  float64       `json:"rotor_torque_nm"`
	InputCMX       float64       `json:"input_cm_x_m"` // gearbox position along x
}

type Result struct {
	MassKG        float64    `json:"mass_kg"`
	StageMassesKG [3]float64 `json:"stage_masses_kg"`
	StageRatios   [3]float64 `json:"stage_ratios"`
	CM            [3]float64 `json:"cm_m"`
	I             [3]float64 `json:"i_kgm2"`
	LengthM       float64    `json:"length_m"`
	HeightM       float64    `json:"height_m"`
	DiameterM     float64    `json:"diameter_m"`
}

func Calculate(in Input) (Result, error) {
	if in.GearRatio <= 1 {
		return Result{}, fmt.Errorf("gear ratio must exceed 1, got %g", in.GearRatio)
	}
	stageTypes, err := stageTypes(in.Configuration)
	if err != nil {
		return Result{}, err
	}
	kShaft, err := shaftK(in.ShaftFactor)
	if err != nil {
		return Result{}, err
	}

	ratios := stageRatios(in.Configuration, in.GearRatio, in.PlanetNumbers)

	// K factor for pitting analysis.
	kFact := 1100.0
	switch {
	case in.RotorTorqueNM < 200:
		kFact = 850.0
	case in.RotorTorqueNM < 700:
		kFact = 950.0
	}
	const (
		ka    = 0.6
		kUnit = 8.029
	)

	var res Result
	res.StageRatios = ratios
	torque := in.RotorTorqueNM
	for s := 0; s < 3; s++ {
		torque /= ratios[s]
		res.StageMassesKG[s] = kUnit * ka / kFact * torque *
			stageMass(ratios[s], in.PlanetNumbers[s], stageTypes[s])
		res.MassKG += res.StageMassesKG[s]
	}
	res.MassKG *= kShaft

	res.LengthM = 0.012 * in.RotorDiameterM
	res.HeightM = 0.015 * in.RotorDiameterM
	res.DiameterM = 0.75 * res.HeightM
	res.CM = [3]float64{in.InputCMX, 0, 0.4 * res.HeightM}

	d2 := res.DiameterM * res.DiameterM
	res.I[0] = res.MassKG*d2/8 + (res.MassKG/2)*res.HeightM*res.HeightM/8
	res.I[1] = res.MassKG * (0.5*d2 + (2.0/3.0)*res.LengthM*res.LengthM + 0.25*res.HeightM*res.HeightM) / 8
	res.I[2] = res.I[1]
	return res, nil
}

// ValidConfiguration reports whether c names a supported stage layout.
func ValidConfiguration(c Configuration) bool {
	_, err := stageTypes(c)
	return err == nil
}

func stageTypes(c Configuration) ([3]int, error) {
	var out [3]int
	if len(c) < 3 {
		return out, fmt.Errorf("unknown gearbox configuration %q", c)
	}
	for i, ch := range string(c)[:3] {
		switch ch {
		case 'e':
			out[i] = 2
		case 'p':
			out[i] = 1
		default:
			return out, fmt.Errorf("unknown gearbox configuration %q", c)
		}
	}
	return out, nil
}

func shaftK(f ShaftFactor) (float64, error) {
	switch f {
	case ShaftNormal, "":
		return 1.0, nil
	case ShaftShort:
		return 1.25, nil
	default:
		return 0, fmt.Errorf("shaft factor must be %q or %q, got %q", ShaftNormal, ShaftShort, f)
	}
}

// stageMass computes the dimensionless mass of one stage. stageType is
// 1 for parallel, 2 for epicyclic.
func stageMass(ratio float64, np, stageType int) float64 {
	if stageType == 1 {
		return 1.0 + ratio + ratio*ratio + 1.0/ratio
	}
	// Application factors for ring/housing/carrier weight.
	const kr = 0.4
	kGamma := 1.1
	if np == 5 {
		kGamma = 1.35
	}
	n := float64(np)
	sun := 0.5*ratio - 1.0
	return kGamma * (1/n + 1/(n*sun) + sun + sun*sun +
		kr*(ratio-1)*(ratio-1)/n +
		kr*(ratio-1)*(ratio-1)/(n*sun))
}

// epicyclicVolume is the per-stage volume term for an epicyclic stage
// of ratio r with b planets and structure coefficient kr.
func epicyclicVolume(r, b, kr float64) float64 {
	if r <= 2.0 {
		return math.Inf(1)
	}
	sun := r/2.0 - 1.0
	return 1.0/b + 1.0/(b*sun) + sun + sun*sun +
		kr*(r-1)*(r-1)/b + kr*(r-1)*(r-1)/(b*sun)
}

func parallelVolume(r float64) float64 {
	if r <= 0 {
		return math.Inf(1)
	}
	return 1.0 + 1.0/r + r + r*r
}

// stageRatios minimizes the total stage volume over the first two
// ratios; the third is pinned by the overall ratio (or fixed outright
// for eep_3).
func stageRatios(c Configuration, overall float64, planets [3]int) [3]float64 {
	b1 := float64(planets[0])
	b2 := float64(planets[1])
	seed := math.Cbrt(overall)

	var volume func(x []float64) float64
	var unpack func(x []float64) [3]float64

	switch c {
	case EEP3:
		// Last stage fixed at 3, leaving a single free ratio.
		volume = func(x []float64) float64 {
			r1 := x[0]
			r2 := overall / 3.0 / r1
			if r1 <= 2 || r2 <= 2 {
				return math.Inf(1)
			}
			return epicyclicVolume(r1, b1, 0)/r1 +
				epicyclicVolume(r2, b2, 0.8)/(r1*r2) +
				parallelVolume(3.0)/overall
		}
		unpack = func(x []float64) [3]float64 {
			return [3]float64{x[0], overall / 3.0 / x[0], 3.0}
		}
	case EPP:
		volume = func(x []float64) float64 {
			r1, r2 := x[0], x[1]
			r3 := overall / (r1 * r2)
			if r1 <= 2 || r2 <= 0 || r3 <= 0 {
				return math.Inf(1)
			}
			return epicyclicVolume(r1, b1, 0)/r1 +
				parallelVolume(r2)/(r1*r2) +
				parallelVolume(r3)/overall
		}
		unpack = func(x []float64) [3]float64 {
			return [3]float64{x[0], x[1], overall / (x[0] * x[1])}
		}
	default: // eep, eep_2
		kr2 := 0.0
		if c == EEP2 {
			kr2 = 1.6
		}
		volume = func(x []float64) float64 {
			r1, r2 := x[0], x[1]
			r3 := overall / (r1 * r2)
			if r1 <= 2 || r2 <= 2 || r3 <= 0 {
				return math.Inf(1)
			}
			return epicyclicVolume(r1, b1, 0)/r1 +
				epicyclicVolume(r2, b2, kr2)/(r1*r2) +
				parallelVolume(r3)/overall
		}
		unpack = func(x []float64) [3]float64 {
			return [3]float64{x[0], x[1], overall / (x[0] * x[1])}
		}
	}

	x0 := []float64{seed, seed}
	if c == EEP3 {
		x0 = []float64{math.Sqrt(overall / 3.0)}
	}
	problem := optimize.Problem{Func: volume}
	result, err := optimize.Minimize(problem, x0, &optimize.Settings{}, &optimize.NelderMead{})
	if err != nil || result == nil {
		// Fall back to the even split seed.
		return unpack(x0)
	}
	return unpack(result.X)
}
