package autodesign

import (
	"fmt"

	bearing "Driveline/internal/calc/bearing"
	shaft "Driveline/internal/calc/shaft"
	drivetrain "Driveline/internal/drivetrain"
)

type TopologyAutoInput struct {
	Config drivetrain.Config `json:"config"` // topology field is ignored
	Input  drivetrain.Input  `json:"input"`
}

type TopologyAutoResult struct {
	ThreePoint drivetrain.Output `json:"three_point"`
	FourPoint  drivetrain.Output `json:"four_point"`
	Suggested  shaft.Topology    `json:"suggested"`
	Notes      string            `json:"notes"`
}

// Topology evaluates the same design under both suspensions and suggests
// the one with the lower nacelle mass.
func Topology(in TopologyAutoInput) (TopologyAutoResult, error) {
	cfg := in.Config
	cfg.Topology = shaft.ThreePoint
	if cfg.MB2Type == "" {
		// four-point needs a downwind bearing; mirror the upwind choice of
		// the NREL 5 MW baseline
		cfg.MB2Type = bearing.SRB
	}
	g3, err := drivetrain.New(cfg)
	if err != nil {
		return TopologyAutoResult{}, fmt.Errorf("three point: %w", err)
	}
	out3, err := g3.Evaluate(in.Input)
	if err != nil {
		return TopologyAutoResult{}, fmt.Errorf("three point: %w", err)
	}

	cfg.Topology = shaft.FourPoint
	g4, err := drivetrain.New(cfg)
	if err != nil {
		return TopologyAutoResult{}, fmt.Errorf("four point: %w", err)
	}
	out4, err := g4.Evaluate(in.Input)
	if err != nil {
		return TopologyAutoResult{}, fmt.Errorf("four point: %w", err)
	}

	res := TopologyAutoResult{
		ThreePoint: out3,
		FourPoint:  out4,
		Suggested:  shaft.ThreePoint,
		Notes:      "Suspension with the lower nacelle mass.",
	}
	if out4.Nacelle.MassKG < out3.Nacelle.MassKG {
		res.Suggested = shaft.FourPoint
	}
	return res, nil
}
