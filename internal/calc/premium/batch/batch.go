package batch

import (
	"fmt"

	drivetrain "Driveline/internal/drivetrain"
)

type DrivetrainBatchInput struct {
	Items []drivetrain.CalcRequest `json:"items"`
}

type DrivetrainBatchResult struct {
	Results []drivetrain.Output `json:"results"`
}

func CalculateDrivetrain(in DrivetrainBatchInput) (DrivetrainBatchResult, error) {
	if len(in.Items) == 0 {
		return DrivetrainBatchResult{}, fmt.Errorf("no items")
	}
	out := DrivetrainBatchResult{Results: make([]drivetrain.Output, 0, len(in.Items))}
	for i, item := range in.Items {
		g, err := drivetrain.New(item.Config)
		if err != nil {
			return DrivetrainBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		res, err := g.Evaluate(item.Input)
		if err != nil {
			return DrivetrainBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
