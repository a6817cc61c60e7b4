package pdfsvc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

// metadata dates are pinned so the same transcript always serializes to the
// same bytes
var pinnedDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// TranscriptService renders transcripts as PDF documents.
type TranscriptService struct {
	appName string
}

var _ grade.TranscriptRenderer = (*TranscriptService)(nil) // interface compliance check

func NewTranscriptService(conf *core.Config) *TranscriptService {
	return &TranscriptService{appName: conf.AppName}
}

func (svc *TranscriptService) Render(t grade.Transcript) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(pinnedDate)
	pdf.SetModificationDate(pinnedDate)
	pdf.SetTitle(fmt.Sprintf("Transcript - Student %d - %s", t.StudentID, t.AcademicYear), false)
	pdf.SetAuthor(svc.appName, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, svc.appName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Academic transcript - Student %d - %s", t.StudentID, t.AcademicYear), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, section := range t.Sections {
		svc.renderSection(pdf, section)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Year summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	svc.renderSummary(pdf, t.Overall)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering transcript")
	}
	return buf.Bytes(), nil
}

func (svc *TranscriptService) renderSection(pdf *gofpdf.Fpdf, section grade.TranscriptSection) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Semester "+section.Summary.Semester, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 7, "Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(100, 7, "Course", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Credits", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Grade", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range section.Lines {
		pdf.CellFormat(30, 7, line.CourseCode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 7, line.CourseName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", line.Credits), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, formatGrade(line.Grade), "1", 1, "R", false, 0, "")
	}

	svc.renderSummary(pdf, section.Summary)
	pdf.Ln(4)
}

func (svc *TranscriptService) renderSummary(pdf *gofpdf.Fpdf, summary grade.SemesterSummary) {
	pdf.CellFormat(0, 6, fmt.Sprintf(
		"Average: %s/20 - Credits: %d/%d validated - Courses: %d",
		formatGrade(summary.AverageGrade), summary.ValidatedCredits, summary.TotalCredits, summary.CoursesCount,
	), "", 1, "L", false, 0, "")
}

func formatGrade(g float64) string {
	return fmt.Sprintf("%.2f", g)
}
