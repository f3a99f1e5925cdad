package drivetrain

import (
	"encoding/json"
	"errors"
	"net/http"

	"Driveline/internal/calc/bearing"
)

type Handler struct{}

// CalcRequest pairs the drivetrain architecture with one input set.
type CalcRequest struct {
	Config Config `json:"config"`
	Input  Input  `json:"input"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	g, err := New(req.Config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := g.Evaluate(req.Input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, bearing.ErrInvalidLoadCondition) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
