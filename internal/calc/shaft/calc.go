// Package shaft sizes the low-speed main shaft for a 3-point (single
// main bearing) or 4-point (two main bearings) suspension. The shaft
// diameter comes from distortion-energy theory at the worst bending
// section; the length between supports is grown until the shaft slope
// at the bearing seat stays inside the bearing family's limit.
package shaft

import (
	"fmt"
	"math"

	bearing "Driveline/internal/calc/bearing"
)

type Topology string

const (
	ThreePoint Topology = "three_point"
	FourPoint  Topology = "four_point"
)

const (
	gravity       = 9.81
	youngsModulus = 2.1e11
	yieldPSI      = 66000 // tensile strength of shaft steel, psi
	safetyFactor  = 2.5
	bearingSafety = 1.0

	// 1 kN*m = 8850.74577 lb*in, 1 in = 0.0254 m
	knmToInLb = 8850.745454036
	inToM     = 0.0254000508001

	lenPts = 101
	tol    = 1e-4
)

type Input struct {
	Topology Topology     `json:"topology"`
	MB1Type  bearing.Type `json:"mb1_type"`
	MB2Type  bearing.Type `json:"mb2_type"` // 4-point only

	RotorDiameterM float64 `json:"rotor_diameter_m"`
	RotorMassKG    float64 `json:"rotor_mass_kg"`
	RotorThrustN   float64 `json:"rotor_thrust_n"`
	RotorForceYN   float64 `json:"rotor_force_y_n"`
	RotorForceZN   float64 `json:"rotor_force_z_n"`
	RotorMxNM      float64 `json:"rotor_moment_x_nm"`
	RotorMyNM      float64 `json:"rotor_moment_y_nm"`
	RotorMzNM      float64 `json:"rotor_moment_z_nm"`

	OverhangM       float64    `json:"overhang_m"`
	MachineRatingKW float64    `json:"machine_rating_kw"`
	GearboxMassKG   float64    `json:"gearbox_mass_kg"`
	CarrierMassKG   float64    `json:"carrier_mass_kg"`
	GearboxCM       [3]float64 `json:"gearbox_cm_m"`
	GearboxLengthM  float64    `json:"gearbox_length_m"`
	ShrinkDiscKG    float64    `json:"shrink_disc_mass_kg"`
	FlangeLengthM   float64    `json:"flange_length_m"` // zero selects the regression default
	DistanceHub2MBM float64    `json:"distance_hub2mb_m"`
	ShaftAngleRad   float64    `json:"shaft_angle_rad"`
	ShaftRatio      float64    `json:"shaft_ratio"` // inner/outer diameter, zero for solid
}

// Support is the bearing seat the shaft sizing hands to the main
// bearing block: raw race mass (no housing), seat location, facewidth.
type Support struct {
	MassKG     float64    `json:"mass_kg"`
	CM         [3]float64 `json:"cm_m"`
	FacewidthM float64    `json:"facewidth_m"`
	DiameterM  float64    `json:"diameter_m"`
}

type Result struct {
	LengthM        float64    `json:"length_m"`
	Diameter1M     float64    `json:"diameter1_m"`
	Diameter2M     float64    `json:"diameter2_m"`
	InnerDiameterM float64    `json:"inner_diameter_m"`
	MassKG         float64    `json:"mass_kg"`
	CM             [3]float64 `json:"cm_m"`
	I              [3]float64 `json:"i_kgm2"`
	MB1            Support    `json:"mb1"`
	MB2            Support    `json:"mb2"` // zero value for 3-point
}

// DefaultDistanceHub2MB is the hub-center to main-bearing distance
// regression in rotor diameter.
func DefaultDistanceHub2MB(rotorDiameterM float64) float64 {
	return 0.007835*rotorDiameterM + 0.9642
}

// DefaultRotorMass estimates rotor mass from machine rating (kW) when
// the caller supplies forces but no mass.
func DefaultRotorMass(machineRatingKW float64) float64 {
	return 23.566 * machineRatingKW
}

func Calculate(in Input) (Result, error) {
	switch in.Topology {
	case ThreePoint, FourPoint:
	default:
		return Result{}, fmt.Errorf("unknown shaft topology %q", in.Topology)
	}
	if !bearing.Valid(in.MB1Type) {
		return Result{}, fmt.Errorf("%w: mb1 %q", bearing.ErrUnknownType, in.MB1Type)
	}
	if in.Topology == FourPoint && !bearing.Valid(in.MB2Type) {
		return Result{}, fmt.Errorf("%w: mb2 %q", bearing.ErrUnknownType, in.MB2Type)
	}
	if in.RotorDiameterM <= 0 {
		return Result{}, fmt.Errorf("rotor diameter must be positive")
	}
	if in.ShaftRatio < 0 || in.ShaftRatio >= 1 {
		return Result{}, fmt.Errorf("shaft ratio must be in [0,1), got %g", in.ShaftRatio)
	}

	s := newSolver(in)
	if in.Topology == ThreePoint {
		return s.sizeThreePoint()
	}
	return s.sizeFourPoint()
}

// solver carries the resolved inputs plus the diameters that persist
// across length iterations.
type solver struct {
	in      Input
	hub2mb  float64
	my, mz  float64
	rotorKG float64
	flange  float64
	density float64

	rotorW, gearboxW, shrinkW float64 // weights, N

	dMax, dMin, dMed, dIn float64
	fMbY, fMbZ            float64
	lssW                  float64
}

func newSolver(in Input) *solver {
	s := &solver{in: in}

	s.hub2mb = in.DistanceHub2MBM
	if s.hub2mb == 0 {
		s.hub2mb = DefaultDistanceHub2MB(in.RotorDiameterM)
	}
	s.rotorKG = in.RotorMassKG
	if s.rotorKG == 0 {
		s.rotorKG = DefaultRotorMass(in.MachineRatingKW)
	}
	// Crude load approximations when the caller knows the rotor mass
	// but not the hub moments.
	s.my = in.RotorMyNM
	if s.rotorKG > 0 && s.my == 0 {
		s.my = 59.7 * s.rotorKG * s.hub2mb
	}
	s.mz = in.RotorMzNM
	if s.rotorKG > 0 && s.mz == 0 {
		s.mz = 53.846 * s.rotorKG * s.hub2mb
	}
	s.flange = in.FlangeLengthM
	if s.flange == 0 {
		d := in.RotorDiameterM / 100.0
		s.flange = 0.3*d*d - 0.1*d + 0.4
	}
	s.density = 7850.0
	if in.Topology == FourPoint {
		s.density = 7800.0
	}
	s.rotorW = s.rotorKG * gravity
	s.gearboxW = in.GearboxMassKG * gravity
	s.shrinkW = in.ShrinkDiscKG * gravity

	s.dMax = 1.0
	s.dMin = 0.2
	return s
}

// designDiameter implements the distortion-energy shaft diameter,
// DriveSE eq. 2.30. Bending moment and torque in N*m, result in m.
func designDiameter(bendingNM, torqueNM float64) float64 {
	d1 := 16.0 * safetyFactor / math.Pi / yieldPSI
	d2 := knmToInLb * math.Sqrt(4.0*math.Pow(bendingNM*0.001, 2)+3.0*math.Pow(torqueNM*0.001, 2))
	return math.Cbrt(d1*d2) * inToM
}

// hollow grows an outer diameter so a shaft bored to dIn keeps the
// solid section modulus.
func hollow(d, dIn float64) float64 {
	return math.Pow(math.Pow(d, 4)+math.Pow(dIn, 4), 0.25)
}

// Euler-Bernoulli E*I*v and E*I*dv/dx along the shaft with the rotor
// load at z=0 and the bearing reaction at z=hub2mb (DriveSE eq. 2.33).
func eiDeflection(fz, wR, gamma, mY, fMbZ, hub2mb, wMs, span, z float64) float64 {
	return -fz*z*z*z/6.0 + wR*math.Cos(gamma)*z*z*z/6.0 - mY*z*z/2.0 -
		fMbZ*math.Pow(z-hub2mb, 3)/6.0 + wMs/span/24.0*math.Pow(z, 4)
}

func eiSlope(fz, wR, gamma, mY, fMbZ, hub2mb, wMs, span, c1, z float64) float64 {
	return -fz*z*z/2.0 + wR*math.Cos(gamma)*z*z/2.0 - mY*z -
		fMbZ*math.Pow(z-hub2mb, 2)/2.0 + wMs/span/6.0*math.Pow(z, 3) + c1
}

// Two-reaction variant for the section aft of the second bearing.
func eiSlope2(fz, wR, gamma, mY, fMb1Z, fMb2Z, hub2mb, lMb, wMs, span, z float64) float64 {
	return -fz*z*z/2.0 + wR*math.Cos(gamma)*z*z/2.0 - mY*z -
		fMb1Z*math.Pow(z-hub2mb, 2)/2.0 - fMb2Z*math.Pow(z-hub2mb-lMb, 2)/2.0 +
		wMs/span/6.0*math.Pow(z, 3)
}

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	return out
}

// ---------------------------------------------------------------------
// 3-point suspension
// ---------------------------------------------------------------------

// sizeIter3 runs one sizing pass at shaft length lMs and returns the
// slope at the bearing seat end. Diameters persist on the solver.
func (s *solver) sizeIter3(lMs float64) float64 {
	in := s.in
	lBg := 6.11 * in.MachineRatingKW / 5.0e3
	lAs := lMs / 2.0
	hGb := 1.0
	lGb := 0.0

	lssW := math.Pi / 3.0 * (s.dMax*s.dMax + s.dMin*s.dMin + s.dMax*s.dMin) * lMs * s.density * gravity / 4.0

	cosSA := math.Cos(in.ShaftAngleRad)
	sinSA := math.Sin(in.ShaftAngleRad)

	s.fMbY = s.mz/lBg - in.RotorForceYN*(lBg+s.hub2mb)/lBg
	s.fMbZ = (-s.my +
		s.rotorW*(cosSA*(s.hub2mb+lBg)+sinSA*hGb) +
		lssW*(lBg-lAs)*cosSA +
		s.shrinkW*cosSA*(lBg-lMs) -
		s.gearboxW*cosSA*lGb -
		in.RotorForceZN*cosSA*(lBg+s.hub2mb)) / lBg

	// Bending moments hub->bearing then bearing->gearbox.
	xRb := linspace(0, s.hub2mb, lenPts)
	xMs := linspace(s.hub2mb, s.hub2mb+lMs, lenPts)
	mmMax, mmLast := 0.0, 0.0
	for _, x := range xRb {
		my := -s.my + s.rotorW*cosSA*x + 0.5*lssW/lMs*x*x - in.RotorForceZN*x
		mz := -s.mz - in.RotorForceYN*x
		if mm := math.Hypot(my, mz); mm > mmMax {
			mmMax = mm
		}
	}
	for _, x := range xMs {
		my := -in.RotorForceZN*x - s.my + s.rotorW*cosSA*x -
			s.fMbZ*(x-s.hub2mb) + 0.5*lssW/lMs*x*x
		mz := -s.mz - s.fMbY*(x-s.hub2mb) - in.RotorForceYN*x
		mmLast = math.Hypot(my, mz)
		if mmLast > mmMax {
			mmMax = mmLast
		}
	}

	s.dMax = designDiameter(mmMax, in.RotorMxNM)
	s.dMin = designDiameter(mmLast, in.RotorMxNM)
	s.dIn = in.ShaftRatio * s.dMax
	s.dMax = hollow(s.dMax, s.dIn)
	s.dMin = hollow(s.dMin, s.dIn)

	// Hollow taper between supports plus the solid stub out to the hub.
	lssWNew := (math.Pi/12.0*lMs*(s.dMax*s.dMax+s.dMin*s.dMin+s.dMax*s.dMin) -
		math.Pi/4.0*lMs*s.dIn*s.dIn +
		math.Pi/4.0*s.hub2mb*s.dMax*s.dMax) * s.density * gravity

	span := lMs + s.hub2mb
	d1 := eiDeflection(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, s.fMbZ, s.hub2mb, lssWNew, span, s.hub2mb+lMs)
	d2 := eiDeflection(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, s.fMbZ, s.hub2mb, lssWNew, span, s.hub2mb)
	c1 := -(d1 - d2) / lMs

	i2 := math.Pi / 64.0 * (math.Pow(s.dMax, 4) - math.Pow(s.dIn, 4))
	return eiSlope(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, s.fMbZ, s.hub2mb, lssWNew, span, c1, s.hub2mb+lMs) /
		youngsModulus / i2
}

func (s *solver) sizeThreePoint() (Result, error) {
	in := s.in
	limit, err := bearing.DeflectionLimitRad(in.MB1Type)
	if err != nil {
		return Result{}, err
	}

	lengthMax := in.OverhangM - s.hub2mb + (in.GearboxCM[0] - in.GearboxLengthM/2.0)
	lMs, lMsNew := 0.5, 0.0
	check := 1.0
	for math.Abs(check) > tol && lMsNew < lengthMax {
		if lMsNew > 0 {
			lMs = lMsNew
		}
		theta := s.sizeIter3(lMs)
		check = math.Abs(math.Abs(theta) - limit/bearingSafety)
		lMsNew = lMs + 0.05
	}

	mb1, err := bearing.Resize(in.MB1Type, s.dMax)
	if err != nil {
		return Result{}, err
	}
	// The downwind seat stands in for the gearbox connection.
	gbSeat, err := bearing.Resize(bearing.SRB, s.dMin)
	if err != nil {
		return Result{}, err
	}
	d1, d2 := mb1.ShaftDiameterM, gbSeat.ShaftDiameterM
	fw1, fw2 := mb1.FacewidthM, gbSeat.FacewidthM

	// Taper + both seat sections - bore (DriveSE eq. 2.37).
	vol := math.Pi/3.0*(d1*d1+d2*d2+d1*d2)*(lMs-(fw1+fw2)/2.0)/4.0 +
		math.Pi/4.0*(d1*d1-s.dIn*s.dIn)*fw1 +
		math.Pi/4.0*(d2*d2-s.dIn*s.dIn)*fw2 -
		math.Pi/4.0*s.dIn*s.dIn*(lMs+(fw1+fw2)/2.0)
	mass := vol * s.density * 1.35 // flange allowance

	length := lMsNew + (fw1+fw2)/2.0 + s.flange
	res := Result{
		LengthM:        length,
		Diameter1M:     d1,
		Diameter2M:     d2,
		InnerDiameterM: s.dIn,
	}
	s.finishMassProps(&res, mass, length, d1)
	res.MB1 = Support{MassKG: mb1.MassKG, FacewidthM: fw1, DiameterM: d1, CM: s.seatCM(lMs)}
	return res, nil
}

// ---------------------------------------------------------------------
// 4-point suspension
// ---------------------------------------------------------------------

// sizeIter4Span runs the single-bearing pass used to pick the first
// bearing position (loop 1).
func (s *solver) sizeIter4Span(lMs float64) float64 {
	in := s.in
	lBg := 6.11 - s.hub2mb
	lAs := lMs / 2.0
	hGb := 1.0
	lGb := 0.0

	lssW := math.Pi / 3.0 * (s.dMax*s.dMax + s.dMin*s.dMin + s.dMax*s.dMin) * lMs * s.density * gravity / 4.0
	s.lssW = lssW

	cosSA := math.Cos(in.ShaftAngleRad)
	sinSA := math.Sin(in.ShaftAngleRad)

	s.fMbY = s.mz/lBg - in.RotorForceYN*(lBg+s.hub2mb)/lBg
	s.fMbZ = (-s.my +
		s.rotorW*(cosSA*(s.hub2mb+lBg)+sinSA*hGb) +
		lssW*cosSA*(lBg-lAs) +
		s.shrinkW*cosSA*(lBg-lMs) -
		s.gearboxW*cosSA*lGb -
		in.RotorForceZN*cosSA*(lBg+s.hub2mb)) / lBg

	xRb := linspace(0, s.hub2mb, lenPts)
	xMs := linspace(s.hub2mb, s.hub2mb+lMs, lenPts)
	mmMax, mmLast := 0.0, 0.0
	for _, x := range xRb {
		my := -s.my + s.rotorW*cosSA*x + 0.5*lssW/lMs*x*x - in.RotorForceZN*x
		mz := -s.mz - in.RotorForceYN*x
		if mm := math.Hypot(my, mz); mm > mmMax {
			mmMax = mm
		}
	}
	for _, x := range xMs {
		my := -in.RotorForceZN*x - s.my + s.rotorW*cosSA*x -
			s.fMbZ*(x-s.hub2mb) + 0.5*lssW/lMs*x*x
		mz := -s.mz - s.fMbY*(x-s.hub2mb) - in.RotorForceYN*x
		mmLast = math.Hypot(my, mz)
		if mmLast > mmMax {
			mmMax = mmLast
		}
	}

	s.dMax = designDiameter(mmMax, in.RotorMxNM)
	s.dMin = designDiameter(mmLast, in.RotorMxNM)
	s.dIn = in.ShaftRatio * s.dMax
	s.dMax = hollow(s.dMax, s.dIn)
	s.dMin = hollow(s.dMin, s.dIn)

	lssWNew := (math.Pi/3.0*(s.dMax*s.dMax+s.dMin*s.dMin+s.dMax*s.dMin)*lMs/4.0 -
		math.Pi/4.0*s.dIn*s.dIn*lMs) * gravity * s.density

	span := lMs + s.hub2mb
	d1 := eiDeflection(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, s.fMbZ, s.hub2mb, lssWNew, span, s.hub2mb+lMs)
	d2 := eiDeflection(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, s.fMbZ, s.hub2mb, lssWNew, span, s.hub2mb)
	c1 := -(d1 - d2) / lMs

	i2 := math.Pi / 64.0 * (math.Pow(s.dMax, 4) - math.Pow(s.dIn, 4))
	return eiSlope(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, s.fMbZ, s.hub2mb, lssWNew, span, c1, s.hub2mb+lMs) /
		youngsModulus / i2
}

// sizeIter4Dual runs the two-bearing pass (loop 2) for bearing span lMb
// and aft length lMsGb, returning the slope at the gearbox end.
func (s *solver) sizeIter4Dual(lMb, lMsGb float64) float64 {
	in := s.in
	lAs := (lMsGb + lMb) / 2.0
	lGb := 0.0
	lMs0 := 0.5

	cosSA := math.Cos(in.ShaftAngleRad)

	fMb2Y := -s.mz/lMb + in.RotorForceYN*s.hub2mb/lMb
	fMb2Z := (s.my -
		s.rotorW*cosSA*s.hub2mb -
		s.lssW*lAs*cosSA -
		s.shrinkW*(lMb+lMs0)*cosSA +
		s.gearboxW*cosSA*lGb +
		in.RotorForceZN*cosSA*s.hub2mb) / lMb
	fMb1Y := -in.RotorForceYN - fMb2Y
	fMb1Z := (s.rotorW+s.lssW+s.shrinkW)*cosSA - in.RotorForceZN - fMb2Z

	xRb := linspace(0, s.hub2mb, lenPts)
	xMb := linspace(s.hub2mb, s.hub2mb+lMb, lenPts)
	xMs := linspace(s.hub2mb+lMb, s.hub2mb+lMb+lMsGb, lenPts)

	wPerLen := 0.5 * s.lssW / (lMb + lMs0)
	mmMax, mmMed, mmLast := 0.0, 0.0, 0.0
	for _, x := range xRb {
		my := -in.RotorForceZN*x + s.rotorW*cosSA*x - s.my + wPerLen*x*x
		mz := -s.mz - in.RotorForceYN*x
		if mm := math.Hypot(my, mz); mm > mmMax {
			mmMax = mm
		}
	}
	for _, x := range xMb {
		my := -in.RotorForceZN*x + s.rotorW*cosSA*x - s.my + wPerLen*x*x -
			fMb1Z*(x-s.hub2mb)
		mz := -s.mz - in.RotorForceYN*x - fMb1Y*(x-s.hub2mb)
		mmMed = math.Hypot(my, mz)
		if mmMed > mmMax {
			mmMax = mmMed
		}
	}
	for _, x := range xMs {
		my := -in.RotorForceZN*x + s.rotorW*cosSA*x - s.my + wPerLen*x*x -
			fMb1Z*(x-s.hub2mb) - fMb2Z*(x-s.hub2mb-lMb)
		mz := -s.mz - in.RotorForceYN*x - fMb1Y*(x-s.hub2mb) - fMb2Y*(x-s.hub2mb-lMb)
		mmLast = math.Hypot(my, mz)
		if mmLast > mmMax {
			mmMax = mmLast
		}
	}

	s.dMax = designDiameter(mmMax, in.RotorMxNM)
	s.dMin = designDiameter(mmLast, in.RotorMxNM)
	s.dMed = designDiameter(mmMed, in.RotorMxNM)
	s.dIn = in.ShaftRatio * s.dMax
	s.dMax = hollow(s.dMax, s.dIn)
	s.dMin = hollow(s.dMin, s.dIn)
	s.dMed = hollow(s.dMed, s.dIn)

	lssWNew := (math.Pi/12.0*lMb*(s.dMax*s.dMax+s.dMed*s.dMed+s.dMax*s.dMed) -
		math.Pi/4.0*s.dIn*s.dIn*lMb) * gravity * s.density

	span := lMs0 + lMb
	d11 := eiDeflection(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, fMb1Z, s.hub2mb, lssWNew, span, s.hub2mb+lMb)
	d21 := eiDeflection(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, fMb1Z, s.hub2mb, lssWNew, span, s.hub2mb)
	c11 := -(d11 - d21) / lMb

	i2 := math.Pi / 64.0 * (math.Pow(s.dMax, 4) - math.Pow(s.dIn, 4))

	zMb := s.hub2mb + lMb
	zEnd := zMb + lMsGb
	c12 := eiSlope(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, fMb1Z, s.hub2mb, lssWNew, span, c11, zMb) -
		eiSlope2(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, fMb1Z, fMb2Z, s.hub2mb, lMb, lssWNew, span, zMb)
	return (eiSlope2(in.RotorForceZN, s.rotorW, in.ShaftAngleRad, s.my, fMb1Z, fMb2Z, s.hub2mb, lMb, lssWNew, span, zEnd) + c12) /
		youngsModulus / i2
}

func (s *solver) sizeFourPoint() (Result, error) {
	in := s.in
	limit1, err := bearing.DeflectionLimitRad(in.MB1Type)
	if err != nil {
		return Result{}, err
	}
	limit2, err := bearing.DeflectionLimitRad(in.MB2Type)
	if err != nil {
		return Result{}, err
	}

	lengthMax := in.OverhangM - s.hub2mb + (in.GearboxCM[0] - in.GearboxLengthM/2.0)

	// Pass 1: place the upwind bearing as for a single support.
	lMs, lMsNew := 0.5, 0.0
	check := 1.0
	for math.Abs(check) > tol && lMsNew < lengthMax {
		if lMsNew > 0 {
			lMs = lMsNew
		}
		theta := s.sizeIter4Span(lMs)
		check = math.Abs(math.Abs(theta) - limit1/bearingSafety)
		lMsNew = lMs + 0.05
	}

	// Pass 2: grow the bearing span until the downwind seat also
	// meets its slope limit.
	lMb, lMbNew := lMsNew, 0.0
	checkMb := 1.0
	var lMsGb float64
	for math.Abs(checkMb) > tol && lMbNew < lengthMax {
		if lMbNew > 0 {
			lMb = lMbNew
		}
		lMsGbNew := 0.0
		lMsGb = 0.5
		check = 1.0
		for counter := 0; math.Abs(check) > tol && counter < 2; counter++ {
			if lMsGbNew > 0 {
				lMsGb = lMsGbNew
			}
			theta := s.sizeIter4Dual(lMb, lMsGb)
			check = math.Abs(math.Abs(theta) - limit1/bearingSafety)
			lMsGbNew = lMsGb + 0.0025
			checkMb = math.Abs(math.Abs(theta) - limit2/bearingSafety)
			lMbNew = lMb + 0.05
		}
	}

	mb1, err := bearing.Resize(in.MB1Type, s.dMax)
	if err != nil {
		return Result{}, err
	}
	mb2, err := bearing.Resize(in.MB2Type, s.dMed)
	if err != nil {
		return Result{}, err
	}
	d1, d2 := mb1.ShaftDiameterM, mb2.ShaftDiameterM
	fw1, fw2 := mb1.FacewidthM, mb2.FacewidthM

	vol := math.Pi/3.0*(d1*d1+d2*d2+d1*d2)*(lMb-(fw1+fw2)/2.0)/4.0 +
		math.Pi/4.0*(d1*d1-s.dIn*s.dIn)*fw1 +
		math.Pi/4.0*(d2*d2-s.dIn*s.dIn)*fw2 -
		math.Pi/4.0*s.dIn*s.dIn*(lMb+(fw1+fw2)/2.0)
	mass := vol * s.density * 1.33 // flange allowance

	length := lMbNew + (fw1+fw2)/2.0 + s.flange
	res := Result{
		LengthM:        length,
		Diameter1M:     d1,
		Diameter2M:     d2,
		InnerDiameterM: s.dIn,
	}
	s.finishMassProps(&res, mass, length, s.dMax)
	res.MB1 = Support{MassKG: mb1.MassKG, FacewidthM: fw1, DiameterM: d1, CM: s.seatCM(lMbNew + fw2/2.0)}
	res.MB2 = Support{MassKG: mb2.MassKG, FacewidthM: fw2, DiameterM: d2, CM: s.seatCM(fw2 * 0.5)}
	return res, nil
}

// seatCM places a bearing seat dist meters upwind of the gearbox
// connection along the inclined shaft.
func (s *solver) seatCM(dist float64) [3]float64 {
	gb := s.in.GearboxCM
	x0 := gb[0] - s.in.GearboxLengthM/2.0
	return [3]float64{
		x0 - dist*math.Cos(s.in.ShaftAngleRad),
		gb[1],
		gb[2] + dist*math.Sin(s.in.ShaftAngleRad),
	}
}

// finishMassProps fills mass, cm and inertia. outerD is the diameter
// used for the inertia formulas, which differs between topologies.
func (s *solver) finishMassProps(res *Result, mass, length, outerD float64) {
	gb := s.in.GearboxCM
	x0 := gb[0] - s.in.GearboxLengthM/2.0
	cosSA := math.Cos(s.in.ShaftAngleRad)
	sinSA := math.Sin(s.in.ShaftAngleRad)

	// Solid-model CM sits near 0.65 of total length; shrink disc rides
	// at the gearbox connection.
	cmX := x0 - 0.65*length*cosSA
	cmZ := gb[2] + 0.65*length*sinSA
	res.CM[0] = (cmX*mass + x0*s.in.ShrinkDiscKG) / (mass + s.in.ShrinkDiscKG)
	res.CM[1] = gb[1]
	res.CM[2] = (cmZ*mass + gb[2]*s.in.ShrinkDiscKG) / (mass + s.in.ShrinkDiscKG)
	mass += s.in.ShrinkDiscKG
	res.MassKG = mass

	res.I[0] = mass * (s.dIn*s.dIn + outerD*outerD) / 8.0
	res.I[1] = mass * (s.dIn*s.dIn + outerD*outerD + (4.0/3.0)*length*length) / 16.0
	res.I[2] = res.I[1]
}
