// Package dyn holds the shared quantities every drivetrain block trades
// in: six-component load vectors, mass properties, and duty-cycle load
// spectra. All values are SI (m, kg, N, N*m) unless a field name says
// otherwise.
package dyn

import (
	"errors"
	"fmt"
)

// Frame names the coordinate system a LoadVector is expressed in.
// Loads never change frame implicitly.
type Frame string

const (
	FrameHub      Frame = "hub"
	FrameShaft    Frame = "shaft"
	FrameBedplate Frame = "bedplate"
)

var (
	ErrMalformedLoadSpectrum = errors.New("malformed load spectrum")
)

type LoadVector struct {
	Frame Frame   `json:"frame"`
	Fx    float64 `json:"fx"`
	Fy    float64 `json:"fy"`
	Fz    float64 `json:"fz"`
	Mx    float64 `json:"mx"`
	My    float64 `json:"my"`
	Mz    float64 `json:"mz"`
}

// MassProperty describes a component for the aggregation chain. I is
// taken about the component's own CM, not about any shared origin.
type MassProperty struct {
	MassKG float64    `json:"mass_kg"`
	CM     [3]float64 `json:"cm_m"`
	I      [3]float64 `json:"i_kgm2"`
}

// LoadSpectrum is a duty-cycle histogram: radial and axial load (N) per
// cumulative cycle count. Cycles is the integration abscissa and must be
// strictly increasing.
type LoadSpectrum struct {
	RadialN []float64 `json:"radial_n"`
	AxialN  []float64 `json:"axial_n"`
	Cycles  []float64 `json:"cycles"`
}

func (s LoadSpectrum) Validate() error {
	if len(s.RadialN) != len(s.Cycles) || len(s.AxialN) != len(s.Cycles) {
		return fmt.Errorf("%w: radial/axial/cycle lengths %d/%d/%d differ",
			ErrMalformedLoadSpectrum, len(s.RadialN), len(s.AxialN), len(s.Cycles))
	}
	if len(s.Cycles) < 3 {
		return fmt.Errorf("%w: need at least 3 points, got %d", ErrMalformedLoadSpectrum, len(s.Cycles))
	}
	for i := 1; i < len(s.Cycles); i++ {
		if s.Cycles[i] <= s.Cycles[i-1] {
			return fmt.Errorf("%w: cycle counts not strictly increasing at index %d", ErrMalformedLoadSpectrum, i)
		}
	}
	return nil
}

// MaxRadial returns the largest radial load magnitude in the spectrum.
func (s LoadSpectrum) MaxRadial() float64 { return maxAbs(s.RadialN) }

// MaxAxial returns the largest axial load magnitude in the spectrum.
func (s LoadSpectrum) MaxAxial() float64 { return maxAbs(s.AxialN) }

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	return m
}
