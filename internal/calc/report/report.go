package report

import (
	"Steelcheck/internal/calc/analysis"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"-"`
}

// Write renders rep as a one-page A4 PDF. Values are rounded here only.
func Write(w io.Writer, meta Meta, rep analysis.Report) error {
	return render(meta, rep).Output(w)
}

func render(meta Meta, rep analysis.Report) *gofpdf.Fpdf {
	if meta.Title == "" {
		meta.Title = "Structural Check Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; formulas use the middle dot
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Factored load")
	row(pdf, "Combination", string(rep.FactoredLoad.Combination))
	row(pdf, "Formula", tr(rep.FactoredLoad.Formula))
	row(pdf, "Factored load", fmt.Sprintf("%.2f %s", rep.FactoredLoad.FactoredLoadKN, rep.FactoredLoad.Unit))

	section(pdf, "Section utilization")
	row(pdf, "Demand / capacity", fmt.Sprintf("%.2f / %.2f kN", rep.Utilization.Actual, rep.Utilization.Permissible))
	row(pdf, "Ratio", fmt.Sprintf("%.4f", rep.Utilization.Ratio))
	row(pdf, "Status", rep.Utilization.Status)

	if sf := rep.SafetyFactor; sf != nil {
		section(pdf, "Safety factor")
		row(pdf, "Applied / permissible", fmt.Sprintf("%.2f / %.2f MPa", sf.Actual, sf.Permissible))
		row(pdf, "Ratio", fmt.Sprintf("%.3f", sf.Ratio))
		row(pdf, "Status", sf.Status)
	}
	if m := rep.Material; m != nil {
		section(pdf, "Material")
		row(pdf, "Grade", fmt.Sprintf("%s (%s)", m.Grade, m.Description))
		row(pdf, "fy / fu", fmt.Sprintf("%.0f / %.0f MPa", m.YieldMPa, m.UltimateMPa))
	}
	if c := rep.MomentCapacity; c != nil {
		row(pdf, "Moment capacity", fmt.Sprintf("%.2f %s (gamma_m0 %.2f)", c.CapacityKN, c.Unit, c.GammaM0))
	}
	if c := rep.ShearCapacity; c != nil {
		row(pdf, "Shear capacity", fmt.Sprintf("%.2f %s (gamma_m0 %.2f)", c.CapacityKN, c.Unit, c.GammaM0))
	}
	if d := rep.Deflection; d != nil {
		section(pdf, "Deflection")
		row(pdf, "Actual / permissible", fmt.Sprintf("%.2f / %.2f %s (%s)", d.ActualMM, d.PermissibleMM, d.Unit, d.Limit))
		row(pdf, "Status", d.Status)
	}

	section(pdf, "Overall")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, rep.OverallStatus)
	pdf.Ln(10)

	if meta.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(meta.Notes), "", "L", false)
	}
	return pdf
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
