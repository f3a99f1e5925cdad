package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	bearing "Driveline/internal/calc/bearing"
	dyn "Driveline/internal/calc/dyn"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SpectrumImportResult struct {
	Points   int              `json:"points"`
	Spectrum dyn.LoadSpectrum `json:"spectrum"`
	Spec     *bearing.Spec    `json:"spec,omitempty"`
	CMin     float64          `json:"c_min_kn,omitempty"`
}

// Spectrum reads a load spectrum from the first sheet of an uploaded
// workbook (columns: radial_n, axial_n, cycles; first row is a header).
// When the form also carries a bearing type, shaft diameter and target
// life, the imported spectrum is run through the fatigue sizer.
func (h *Handler) Spectrum(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var spectrum dyn.LoadSpectrum
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		radial, err := toFloat(row[0])
		if err != nil {
			continue
		}
		axial, err := toFloat(row[1])
		if err != nil {
			continue
		}
		cycles, err := toFloat(row[2])
		if err != nil {
			continue
		}
		spectrum.RadialN = append(spectrum.RadialN, radial)
		spectrum.AxialN = append(spectrum.AxialN, axial)
		spectrum.Cycles = append(spectrum.Cycles, cycles)
	}
	if err := spectrum.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	result := SpectrumImportResult{Points: len(spectrum.Cycles), Spectrum: spectrum}

	bearingType := bearing.Type(r.FormValue("type"))
	if bearingType != "" {
		diameter, _ := toFloat(r.FormValue("shaft_diameter_m"))
		life, _ := toFloat(r.FormValue("life_cycles"))
		cMin, err := bearing.RatingLife(bearingType, spectrum, life)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		spec, err := bearing.SizeForFatigue(bearingType, diameter, spectrum, life)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		result.Spec = &spec
		result.CMin = cMin
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
