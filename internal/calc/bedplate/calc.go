package bedplate

import (
	"fmt"
	"math"

	"Driveline/internal/calc/shaft"
)

// Two parallel I-beams carry the drivetrain: a rear steel frame under the
// gearbox/generator/transformer group and a front cast frame under the
// shaft and main bearings. Each section grows its cross-section until the
// root stress and the tip deflection both pass.

const (
	gravity = 9.81

	steelDensity = 7800.0
	castDensity  = 7100.0
	steelE       = 210e9
	castE        = 169e9
	// yield limits, alloy steel and EN-GJS-400-18-LT cast iron
	steelStressMax = 620e6
	castStressMax  = 200e6

	deflDenom  = 1500.0
	stressTol  = 5e5
	deflTol    = 1e-4
	stressMult = 8.0 // fitted to industry data
)

type Input struct {
	GearboxLocationM   float64    `json:"gearbox_location_m"`
	GearboxMassKG      float64    `json:"gearbox_mass_kg"`
	HSSLocationM       float64    `json:"hss_location_m"`
	HSSMassKG          float64    `json:"hss_mass_kg"`
	GeneratorLocationM float64    `json:"generator_location_m"`
	GeneratorMassKG    float64    `json:"generator_mass_kg"`
	LSSLocationM       float64    `json:"lss_location_m"`
	LSSMassKG          float64    `json:"lss_mass_kg"`
	MB1CM              [3]float64 `json:"mb1_cm"`
	MB1FacewidthM      float64    `json:"mb1_facewidth_m"`
	MB1MassKG          float64    `json:"mb1_mass_kg"`
	MB2CM              [3]float64 `json:"mb2_cm"`
	MB2MassKG          float64    `json:"mb2_mass_kg"`
	TransformerMassKG  float64    `json:"transformer_mass_kg"`
	TransformerCM      [3]float64 `json:"transformer_cm"`
	TowerTopDiameterM  float64    `json:"tower_top_diameter_m"`
	RotorDiameterM     float64    `json:"rotor_diameter_m"`
	MachineRatingKW    float64    `json:"machine_rating_kw"`
	RotorMassKG        float64    `json:"rotor_mass_kg"`
	RotorMyNM          float64    `json:"rotor_my_nm"`
	RotorForceZN       float64    `json:"rotor_force_z_n"`
	DistanceHub2MBM    float64    `json:"distance_hub2mb_m"`
}

type Result struct {
	MassKG  float64    `json:"mass_kg"`
	CM      [3]float64 `json:"cm"`
	I       [3]float64 `json:"i"`
	LengthM float64    `json:"length_m"`
	HeightM float64    `json:"height_m"`
	WidthM  float64    `json:"width_m"`
}

// pointLoad holds a concentrated load at a distance from the root. The
// deflection load is per beam (halved); the root-moment contribution is
// fixed at add time because the rear frame books its point masses in full
// while the front frame halves them.
type pointLoad struct {
	loc    float64
	load   float64 // N per beam
	moment float64 // N*m at the root
}

// beam is one I-beam section being grown to meet stress and deflection limits.
type beam struct {
	tf, tw, h0, b0 float64

	length      float64
	density     float64
	modulus     float64
	stressMax   float64
	momentShare float64

	points      []pointLoad
	deflPoints  []pointLoad // contribute deflection but no root moment
	extraMoment float64     // N*m added straight to the root moment
	extraDefl   func(ei float64) float64
}

func newBeam(length, density, modulus, stressMax, momentShare float64) *beam {
	return &beam{
		tf: 0.01905, tw: 0.0127, h0: 0.6096, b0: 0.6096 / 2.0,
		length: length, density: density, modulus: modulus,
		stressMax: stressMax, momentShare: momentShare,
	}
}

func (b *beam) addMass(loc, massKG float64) {
	b.points = append(b.points, pointLoad{
		loc:    loc,
		load:   massKG * gravity / 2.0,
		moment: loc * massKG * gravity * b.momentShare,
	})
}

func (b *beam) addForce(loc, forceN float64) {
	b.points = append(b.points, pointLoad{
		loc:    loc,
		load:   forceN / 2.0,
		moment: loc * forceN * b.momentShare,
	})
}

// addDeflMass books a load for the tip-deflection check only.
func (b *beam) addDeflMass(loc, massKG float64) {
	b.deflPoints = append(b.deflPoints, pointLoad{loc: loc, load: massKG * gravity / 2.0})
}

// midDeflection is the tip deflection for a load applied at x (DriveSE eq 2.66).
func midDeflection(totalLen, loadLen, load, e, i float64) float64 {
	return load * loadLen * loadLen * (3.0*totalLen - loadLen) / (6.0 * e * i)
}

// distDeflection is the tip deflection for the beam's own weight (eq 2.67).
func distDeflection(totalLen, distWeight, e, i float64) float64 {
	return distWeight * math.Pow(totalLen, 4) / (8.0 * e * i)
}

// grow runs the sizing loop and returns the section mass for both parallel
// beams plus the final overall height and width.
func (b *beam) grow() (mass, height, width float64) {
	deflMax := b.length / deflDenom
	rootStress := 250e6
	tipDefl := 1.0
	var area float64

	for (rootStress*stressMult-b.stressMax) > stressTol || (tipDefl-deflMax) > deflTol {
		bi := (b.b0 - b.tw) / 2.0
		hi := b.h0 - 2.0*b.tf
		ib := b.b0*math.Pow(b.h0, 3)/12.0 - 2.0*bi*math.Pow(hi, 3)/12.0
		area = b.b0*b.h0 - 2.0*bi*hi
		w := area * b.density

		tipDefl = distDeflection(b.length, w*gravity, b.modulus, ib)
		moment := w * b.length * b.length / 2.0 * gravity
		for _, p := range b.points {
			tipDefl += midDeflection(b.length, p.loc, p.load, b.modulus, ib)
			moment += p.moment
		}
		for _, p := range b.deflPoints {
			tipDefl += midDeflection(b.length, p.loc, p.load, b.modulus, ib)
		}
		moment += b.extraMoment
		if b.extraDefl != nil {
			tipDefl += b.extraDefl(b.modulus * ib)
		}
		rootStress = moment * b.h0 / (2.0 * ib)

		b.tf += 0.002
		b.tw += 0.002
		b.b0 += 0.006
		b.h0 += 0.006
	}

	return 2.0 * area * b.length * b.density, b.h0, b.b0
}

func Calculate(in Input) (Result, error) {
	if in.RotorDiameterM <= 0 {
		return Result{}, fmt.Errorf("rotor diameter must be positive, got %g", in.RotorDiameterM)
	}
	if in.TowerTopDiameterM <= 0 {
		return Result{}, fmt.Errorf("tower top diameter must be positive, got %g", in.TowerTopDiameterM)
	}

	hub2mb := in.DistanceHub2MBM
	if hub2mb <= 0 {
		hub2mb = shaft.DefaultDistanceHub2MB(in.RotorDiameterM)
	}

	// converter rides with the transformer when uptower, otherwise scale
	// a downtower transformer estimate
	var transLoc, convMass float64
	if in.TransformerMassKG > 0 {
		transLoc = in.TransformerCM[0]
		convMass = 0.3 * in.TransformerMassKG
	} else {
		convMass = (2.4445*in.MachineRatingKW + 1599.0) * 0.3
	}
	convLoc := in.GeneratorLocationM * 2.0

	var rearLength float64
	if transLoc > 0 {
		rearLength = transLoc * 1.1
	} else {
		// scaled off of the GE 1.5
		rearLength = in.GeneratorLocationM*4.237/2.886 - in.TowerTopDiameterM/2.0
	}
	frontLength := math.Abs(in.MB1CM[0]) + in.MB1FacewidthM/2.0

	rotorLoc := math.Abs(in.MB1CM[0]) + hub2mb
	rotorFz := math.Abs(in.RotorForceZN)
	rotorMy := math.Abs(in.RotorMyNM)
	if in.RotorMassKG > 0 && rotorMy == 0 {
		rotorMy = 59.7 * in.RotorMassKG * hub2mb
	}
	if rotorFz == 0 && in.RotorMassKG > 0 {
		rotorFz = in.RotorMassKG * gravity
	}

	rear := newBeam(rearLength, steelDensity, steelE, steelStressMax, 1.0)
	rear.addMass(in.HSSLocationM, in.HSSMassKG)
	rear.addMass(in.GeneratorLocationM, in.GeneratorMassKG)
	rear.addMass(convLoc, convMass)
	rear.addMass(transLoc, in.TransformerMassKG)
	if in.GearboxLocationM != 0 {
		// gearbox adds deflection over the rear frame; its root moment is
		// carried by whichever frame it sits on
		rear.addDeflMass(in.GearboxLocationM, in.GearboxMassKG)
	}
	steelMass, rearHeight, _ := rear.grow()

	front := newBeam(frontLength, castDensity, castE, castStressMax, 0.5)
	if in.GearboxLocationM < 0 {
		front.addDeflMass(math.Abs(in.GearboxLocationM), in.GearboxMassKG)
	}
	front.addMass(math.Abs(in.MB1CM[0]), in.MB1MassKG)
	front.addMass(math.Abs(in.MB2CM[0]), in.MB2MassKG)
	front.addMass(math.Abs(in.LSSLocationM), in.LSSMassKG)
	front.addMass(rotorLoc, in.RotorMassKG)
	front.addForce(rotorLoc, rotorFz)
	front.extraMoment = rotorMy / 2.0
	front.extraDefl = func(ei float64) float64 {
		return rotorMy / 2.0 * frontLength * frontLength / (2.0 * ei)
	}
	castMass, frontHeight, frontWidth := front.grow()

	// extraneous support mass fraction shrinks for larger machines
	supportMult := 1.1 + 5e13*math.Pow(in.RotorDiameterM, -8)
	steelMass *= supportMult
	castMass *= supportMult
	mass := steelMass + castMass

	length := frontLength + rearLength
	width := frontWidth + in.TowerTopDiameterM
	height := math.Max(frontHeight, rearHeight)
	depth := length / 2.0

	var res Result
	res.MassKG = mass
	res.LengthM = length
	res.WidthM = width
	res.HeightM = height
	res.CM[0] = (steelMass*rearLength/2.0 - castMass*frontLength/2.0) / mass
	res.CM[2] = -height / 2.0
	res.I[0] = mass * (width*width + depth*depth) / 8.0
	res.I[1] = mass * (depth*depth + width*width + (4.0/3.0)*length*length) / 16.0
	res.I[2] = res.I[1]
	return res, nil
}
