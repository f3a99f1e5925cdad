package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	drivetrain "Driveline/internal/drivetrain"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string            `json:"project"`
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Notes   string            `json:"notes"`
	Config  drivetrain.Config `json:"config"`
	Case    drivetrain.Input  `json:"case"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Drivetrain Sizing Report"
	}

	g, err := drivetrain.New(input.Config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := g.Evaluate(input.Case)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Topology: %s   Rating: %.0f kW   Rotor: %.1f m",
		input.Config.Topology, input.Case.MachineRatingKW, input.Case.RotorDiameterM))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 7, "Component", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Mass, kg", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "CM x, m", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	row := func(name string, mass, cmx float64) {
		pdf.CellFormat(70, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.1f", mass), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.3f", cmx), "1", 1, "R", false, 0, "")
	}
	row("Low speed shaft", out.Shaft.MassKG, out.Shaft.CM[0])
	row("Main bearing", out.MB1.MassKG, out.MB1.CM[0])
	if out.MB2.MassKG > 0 {
		row("Second bearing", out.MB2.MassKG, out.MB2.CM[0])
	}
	row("Gearbox", out.Gearbox.MassKG, out.Gearbox.CM[0])
	row("High speed side", out.HSS.MassKG, out.HSS.CM[0])
	row("Generator", out.Generator.MassKG, out.Generator.CM[0])
	row("Bedplate", out.Bedplate.MassKG, out.Bedplate.CM[0])
	row("Transformer", out.Transformer.MassKG, out.Transformer.CM[0])
	row("Yaw system", out.Yaw.MassKG, out.Yaw.CM[0])
	row("Hub system", out.Hub.SystemMassKG, out.Hub.SystemCM[0])
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Nacelle mass: %.1f kg   RNA mass: %.1f kg", out.Nacelle.MassKG, out.RNA.MassKG))
	pdf.Ln(10)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
