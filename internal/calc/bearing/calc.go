// Package bearing sizes rolling-element main bearings. Two entry
// points: SizeForFatigue integrates a duty-cycle load spectrum into a
// required dynamic load rating and picks standard or reinforced race
// geometry, Resize applies the standard geometry curve directly when no
// spectrum is available.
package bearing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	dyn "Driveline/internal/calc/dyn"
)

type Type string

const (
	CARB Type = "CARB"
	SRB  Type = "SRB"
	TRB1 Type = "TRB1"
	TRB2 Type = "TRB2"
	CRB  Type = "CRB"
	RB   Type = "RB"
)

var (
	ErrUnknownType          = errors.New("unknown bearing type")
	ErrInvalidLoadCondition = errors.New("invalid load condition")
)

type Spec struct {
	Type           Type    `json:"bearing_type"`
	ShaftDiameterM float64 `json:"shaft_diameter_m"`
	FacewidthM     float64 `json:"facewidth_m"`
	MassKG         float64 `json:"mass_kg"`
	Reinforced     bool    `json:"reinforced"`
}

// fatigue calculation factors per ISO 281 style equivalent-load model:
// P = Fr + Y1*Fa below the e ratio, P = X2*Fr + Y2*Fa above it.
// p is the life exponent (10/3 roller, 3 ball).
type factors struct {
	e, y1, x2, y2, p float64
}

// geometry curves: facewidth = fwA*D + fwB, mass = mA*D^mExp.
type curve struct {
	fwA, fwB, mA, mExp float64
}

// reinforced geometry applies above cThreshold(D) = cA*D^cExp + cB (kN).
type family struct {
	factors    factors
	standard   curve
	reinforced curve
	cA, cExp   float64
	cB         float64
}

var families = map[Type]family{
	CARB: {
		factors:    factors{e: 1, y1: 0, x2: 1, y2: 0, p: 10.0 / 3},
		standard:   curve{0.2663, 0.0435, 1561.4, 2.6007},
		reinforced: curve{0.4299, 0.0382, 3682.8, 2.7676},
		cA:         13980, cExp: 1.5602,
	},
	SRB: {
		factors:    factors{e: 0.32, y1: 2.1, x2: 0.67, y2: 3.1, p: 10.0 / 3},
		standard:   curve{0.2762, 0, 876.7, 1.7195},
		reinforced: curve{0.4801, 0, 2688.3, 1.8877},
		cA:         13878, cExp: 1.0796,
	},
	TRB1: {
		factors:    factors{e: 0.37, y1: 0, x2: 0.4, y2: 1.6, p: 10.0 / 3},
		standard:   curve{0, 0.0740, 92.863, 0.8399},
		reinforced: curve{0, 0.1335, 269.83, 0.441},
		cA:         670, cExp: 1, cB: 1690,
	},
	CRB: {
		factors:    factors{e: 0.2, y1: 0, x2: 0.92, y2: 0.6, p: 10.0 / 3},
		standard:   curve{0.1136, 0, 304.19, 1.8885},
		reinforced: curve{0.2603, 0, 1070.8, 1.8278},
		cA:         4526.5, cExp: 0.9556,
	},
	TRB2: {
		factors:    factors{e: 0.4, y1: 2.5, x2: 0.4, y2: 1.75, p: 10.0 / 3},
		standard:   curve{0.1499, 0, 543.01, 1.9043},
		reinforced: curve{0.3689, 0, 1442.6, 1.8932},
		cA:         6579.9, cExp: 0.8592,
	},
	RB: {
		factors:    factors{e: 0.4, y1: 1.6, x2: 0.75, y2: 2.15, p: 3},
		standard:   curve{0, 0.0839, 229.47, 1.8036},
		reinforced: curve{0, 0.1571, 646.46, 2},
		cA:         884.5, cExp: 0.9964,
	},
}

// Valid reports whether t is a recognized bearing type. Assemblies call
// this at construction so a bad code fails before any evaluation.
func Valid(t Type) bool {
	_, ok := families[t]
	return ok
}

// DeflectionLimitRad is the allowable shaft slope at the bearing seat,
// per bearing family (DriveSE report sec. 2.2.3.3).
func DeflectionLimitRad(t Type) (float64, error) {
	switch t {
	case TRB1, TRB2:
		return 3.0 / 60.0 / 180.0 * math.Pi, nil
	case CRB:
		return 4.0 / 60.0 / 180.0 * math.Pi, nil
	case SRB, RB:
		return 0.078, nil
	case CARB:
		return 0.5 / 180.0 * math.Pi, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}

// RatingLife computes C_min (kN), the dynamic load rating demanded by
// the spectrum over life cycles at the reference 1e6-cycle rating life.
func RatingLife(t Type, spectrum dyn.LoadSpectrum, lifeCycles float64) (float64, error) {
	fam, ok := families[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if err := spectrum.Validate(); err != nil {
		return 0, err
	}
	if lifeCycles <= 0 {
		return 0, fmt.Errorf("design life must be positive, got %g cycles", lifeCycles)
	}
	if err := checkLoadCondition(t, spectrum); err != nil {
		return 0, err
	}
	f := fam.factors

	// The Fa/Fr branch is chosen once from the spectrum maxima and held
	// for every point, matching the rated-load tables.
	var pEq []float64
	useHigh := spectrum.MaxAxial()/spectrum.MaxRadial() > f.e
	for i := range spectrum.Cycles {
		var P float64
		if useHigh {
			P = f.x2*spectrum.RadialN[i] + f.y2*spectrum.AxialN[i]
		} else {
			P = spectrum.RadialN[i] + f.y1*spectrum.AxialN[i]
		}
		pEq = append(pEq, math.Pow(P, f.p))
	}
	span := spectrum.Cycles[len(spectrum.Cycles)-1] - spectrum.Cycles[0]
	mean := integrate.Simpsons(spectrum.Cycles, pEq) / span
	cMin := math.Pow(mean, 1/f.p) * math.Pow(lifeCycles/1e6, 1/f.p) / 1000
	return cMin, nil
}

// SizeForFatigue picks race geometry for shaft diameter d from the
// fatigue demand of the spectrum.
func SizeForFatigue(t Type, d float64, spectrum dyn.LoadSpectrum, lifeCycles float64) (Spec, error) {
	if d <= 0 {
		return Spec{}, fmt.Errorf("shaft diameter must be positive, got %g m", d)
	}
	cMin, err := RatingLife(t, spectrum, lifeCycles)
	if err != nil {
		return Spec{}, err
	}
	fam := families[t]
	threshold := fam.cA*math.Pow(d, fam.cExp) + fam.cB
	c := fam.standard
	reinforced := cMin > threshold
	if reinforced {
		c = fam.reinforced
	}
	return spec(t, d, c, reinforced), nil
}

// Resize applies the standard geometry curve without fatigue analysis,
// for callers with no load spectrum.
func Resize(t Type, d float64) (Spec, error) {
	fam, ok := families[t]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if d <= 0 {
		return Spec{}, fmt.Errorf("shaft diameter must be positive, got %g m", d)
	}
	return spec(t, d, fam.standard, false), nil
}

func spec(t Type, d float64, c curve, reinforced bool) Spec {
	return Spec{
		Type:           t,
		ShaftDiameterM: d,
		FacewidthM:     c.fwA*d + c.fwB,
		MassKG:         c.mA * math.Pow(d, c.mExp),
		Reinforced:     reinforced,
	}
}

func checkLoadCondition(t Type, s dyn.LoadSpectrum) error {
	switch t {
	case CARB:
		// Toroidal rollers carry no thrust at all.
		if s.MaxAxial() > 0 {
			return fmt.Errorf("%w: CARB bearing cannot carry axial load (max %g N)", ErrInvalidLoadCondition, s.MaxAxial())
		}
	case CRB:
		if ratio := s.MaxAxial() / s.MaxRadial(); ratio >= 0.5 {
			return fmt.Errorf("%w: CRB axial/radial ratio %.3f at load maxima exceeds 0.5", ErrInvalidLoadCondition, ratio)
		}
		if ratio := minAbs(s.AxialN) / minAbs(s.RadialN); ratio >= 0.5 {
			return fmt.Errorf("%w: CRB axial/radial ratio %.3f at load minima exceeds 0.5", ErrInvalidLoadCondition, ratio)
		}
	}
	return nil
}

func minAbs(v []float64) float64 {
	m := math.Inf(1)
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if x < m {
			m = x
		}
	}
	return m
}
