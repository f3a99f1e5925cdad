package bearing

import (
	"encoding/json"
	"errors"
	"net/http"

	"Driveline/internal/calc/dyn"
)

type Handler struct{}

type calcRequest struct {
	Type           Type             `json:"type"`
	ShaftDiameterM float64          `json:"shaft_diameter_m"`
	Spectrum       dyn.LoadSpectrum `json:"spectrum"`
	LifeCycles     float64          `json:"life_cycles"`
}

type calcResponse struct {
	Spec Spec    `json:"spec"`
	CMin float64 `json:"c_min_kn"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	cMin, err := RatingLife(req.Type, req.Spectrum, req.LifeCycles)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	spec, err := SizeForFatigue(req.Type, req.ShaftDiameterM, req.Spectrum, req.LifeCycles)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcResponse{Spec: spec, CMin: cMin})
}

// statusFor separates bad requests from inputs that are well formed but
// outside the model's validity envelope.
func statusFor(err error) int {
	if errors.Is(err, ErrInvalidLoadCondition) || errors.Is(err, dyn.ErrMalformedLoadSpectrum) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
