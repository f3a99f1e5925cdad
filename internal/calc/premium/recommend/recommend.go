package recommend

import (
	"errors"
	"fmt"
	"sort"

	bearing "Driveline/internal/calc/bearing"
	dyn "Driveline/internal/calc/dyn"
)

type BearingRecommendInput struct {
	ShaftDiameterM float64          `json:"shaft_diameter_m"`
	Spectrum       dyn.LoadSpectrum `json:"spectrum"`
	LifeCycles     float64          `json:"life_cycles"`
	Candidates     []bearing.Type   `json:"candidates"` // empty means all types
}

type BearingOption struct {
	Type bearing.Type `json:"type"`
	Spec bearing.Spec `json:"spec"`
	CMin float64      `json:"c_min_kn"`
}

type BearingRecommendResult struct {
	Best    BearingOption   `json:"best"`
	Options []BearingOption `json:"options"`
	Notes   string          `json:"notes"`
}

// Bearing sizes every candidate type against the load spectrum and ranks
// the survivors by mass. Types whose load condition rules reject the
// spectrum are skipped rather than failing the whole request.
func Bearing(in BearingRecommendInput) (BearingRecommendResult, error) {
	if in.ShaftDiameterM <= 0 {
		return BearingRecommendResult{}, fmt.Errorf("invalid shaft diameter")
	}
	if err := in.Spectrum.Validate(); err != nil {
		return BearingRecommendResult{}, err
	}

	candidates := in.Candidates
	if len(candidates) == 0 {
		candidates = []bearing.Type{bearing.CARB, bearing.SRB, bearing.TRB1,
			bearing.TRB2, bearing.CRB, bearing.RB}
	}

	var options []BearingOption
	for _, t := range candidates {
		if !bearing.Valid(t) {
			return BearingRecommendResult{}, fmt.Errorf("%w: %q", bearing.ErrUnknownType, t)
		}
		cMin, err := bearing.RatingLife(t, in.Spectrum, in.LifeCycles)
		if err != nil {
			if errors.Is(err, bearing.ErrInvalidLoadCondition) {
				continue
			}
			return BearingRecommendResult{}, err
		}
		spec, err := bearing.SizeForFatigue(t, in.ShaftDiameterM, in.Spectrum, in.LifeCycles)
		if err != nil {
			return BearingRecommendResult{}, err
		}
		options = append(options, BearingOption{Type: t, Spec: spec, CMin: cMin})
	}
	if len(options) == 0 {
		return BearingRecommendResult{}, fmt.Errorf("no bearing type admits this load spectrum")
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Spec.MassKG < options[j].Spec.MassKG
	})
	return BearingRecommendResult{
		Best:    options[0],
		Options: options,
		Notes:   "Lightest bearing satisfying the fatigue life target.",
	}, nil
}
