package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"opsboard/internal/models"
)

// Renderer turns a weekly report projection into PDF bytes. An interface so
// handlers can be tested with a stub.
type Renderer interface {
	Render(report *models.WeeklyReport) ([]byte, error)
}

// ReportRenderer is the gofpdf implementation: A4 portrait, core fonts.
type ReportRenderer struct {
	fontName string
}

func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{fontName: "Helvetica"}
}

func (g *ReportRenderer) Render(report *models.WeeklyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Weekly Report %s", report.StartDate), false)
	pdf.SetAuthor("opsboard", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Header
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s %d", report.MonthName, report.Year), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 12)
	pdf.CellFormat(0, 7, report.Range, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	if len(report.Groups) == 0 {
		pdf.SetFont(g.fontName, "I", 11)
		pdf.CellFormat(0, 7, "No tasks this week.", "", 1, "L", false, 0, "")
	}

	for _, group := range report.Groups {
		g.sectionTitle(pdf, group.Name)
		for _, task := range group.Tasks {
			g.taskLine(pdf, task)
			for _, note := range task.Notes {
				g.noteLine(pdf, note)
			}
		}
		pdf.Ln(2)
		g.hr(pdf)
	}

	// ===== Page numbers
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weekly report: %w", err)
	}
	return buf.Bytes(), nil
}

// ===== helpers =====

func (g *ReportRenderer) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportRenderer) taskLine(pdf *gofpdf.Fpdf, task models.ReportTask) {
	marker := "[ ]"
	style := ""
	if task.Done {
		marker = "[x]"
		style = "S" // strike-through for done tasks
	}
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(12, 6, marker, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, style, 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s  (%s)", task.Text, task.Person), "", "L", false)
}

func (g *ReportRenderer) noteLine(pdf *gofpdf.Fpdf, note models.ReportNote) {
	pdf.SetX(32)
	pdf.SetFont(g.fontName, "I", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("(%s) %s", note.Label, note.Content), "", "L", false)
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportRenderer) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
