// Package rotorloads folds per-blade root loads into a single load
// vector in the fixed hub frame. Each blade vector is rotated through
// its azimuth plus the shared cone and pitch angles, the two
// non-principal components are scaled by an IEC-style conservatism
// factor, and the three blades are summed.
package rotorloads

import (
	"fmt"
	"math"

	dyn "Driveline/internal/calc/dyn"
)

const (
	// Per-axis conservatism on the non-principal components.
	MomentFactor = 1.1
	ForceFactor  = 1.3
)

type Input struct {
	// Blade-local root loads, one [x,y,z] triple per blade, N*m and N.
	BladeMomentsNM [3][3]float64 `json:"blade_moments_nm"`
	BladeForcesN   [3][3]float64 `json:"blade_forces_n"`
	// Rotor position of each blade. Zero values mean the standard
	// three-bladed 0/120/240 arrangement.
	AzimuthDeg [3]float64 `json:"azimuth_deg"`
	ConeDeg    float64    `json:"cone_deg"`
	PitchDeg   float64    `json:"pitch_deg"`
}

type Result struct {
	Hub dyn.LoadVector `json:"hub"`
}

func Calculate(in Input) (Result, error) {
	if math.Abs(in.ConeDeg) >= 90 || math.Abs(in.PitchDeg) >= 90 {
		return Result{}, fmt.Errorf("cone/pitch angle out of range")
	}
	az := in.AzimuthDeg
	if az == [3]float64{} {
		az = DefaultAzimuthDeg()
	}
	var m, f [3]float64
	for b := 0; b < 3; b++ {
		mb := TransformMoment(in.BladeMomentsNM[b], az[b], in.ConeDeg, in.PitchDeg)
		fb := TransformForce(in.BladeForcesN[b], az[b], in.ConeDeg, in.PitchDeg)
		for i := 0; i < 3; i++ {
			m[i] += mb[i]
			f[i] += fb[i]
		}
	}
	return Result{Hub: dyn.LoadVector{
		Frame: dyn.FrameHub,
		Fx:    f[0], Fy: f[1], Fz: f[2],
		Mx: m[0], My: m[1], Mz: m[2],
	}}, nil
}

func DefaultAzimuthDeg() [3]float64 { return [3]float64{0, 120, 240} }

// TransformMoment maps one blade's local moment triple into the hub
// frame with the moment conservatism factor applied.
func TransformMoment(local [3]float64, azimuthDeg, coneDeg, pitchDeg float64) [3]float64 {
	return transform(local, azimuthDeg, coneDeg, pitchDeg, MomentFactor)
}

// TransformForce maps one blade's local force triple into the hub frame
// with the force conservatism factor applied.
func TransformForce(local [3]float64, azimuthDeg, coneDeg, pitchDeg float64) [3]float64 {
	return transform(local, azimuthDeg, coneDeg, pitchDeg, ForceFactor)
}

func transform(v [3]float64, azimuthDeg, coneDeg, pitchDeg, factor float64) [3]float64 {
	// x is the principal (shaft-parallel) axis; the factor lands on the
	// two in-plane components only.
	v[1] *= factor
	v[2] *= factor

	v = rotZ(v, rad(pitchDeg))
	v = rotY(v, rad(coneDeg))
	v = rotX(v, rad(azimuthDeg))
	return v
}

func rad(deg float64) float64 { return deg * math.Pi / 180.0 }

func rotX(v [3]float64, a float64) [3]float64 {
	c, s := math.Cos(a), math.Sin(a)
	return [3]float64{v[0], c*v[1] - s*v[2], s*v[1] + c*v[2]}
}

func rotY(v [3]float64, a float64) [3]float64 {
	c, s := math.Cos(a), math.Sin(a)
	return [3]float64{c*v[0] + s*v[2], v[1], -s*v[0] + c*v[2]}
}

func rotZ(v [3]float64, a float64) [3]float64 {
	c, s := math.Cos(a), math.Sin(a)
	return [3]float64{c*v[0] - s*v[1], s*v[0] + c*v[1], v[2]}
}
