package pdfsvc

import (
	"bytes"
	"testing"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

func testTranscript() grade.Transcript {
	return grade.Transcript{
		StudentID:    1,
		AcademicYear: "2023-2024",
		Sections: []grade.TranscriptSection{
			{
				Summary: grade.SemesterSummary{Semester: "S1", AverageGrade: 14.1, TotalCredits: 10, ValidatedCredits: 10, CoursesCount: 2},
				Lines: []grade.TranscriptLine{
					{CourseCode: "CS101", CourseName: "Informatique", Credits: 6, Grade: 15.5},
					{CourseCode: "MATH101", CourseName: "Mathématiques", Credits: 4, Grade: 12},
				},
			},
		},
		Overall: grade.SemesterSummary{Semester: "2023-2024", AverageGrade: 14.1, TotalCredits: 10, ValidatedCredits: 10, CoursesCount: 2},
	}
}

func TestTranscriptService_Render(t *testing.T) {
	svc := NewTranscriptService(&core.Config{AppName: "Grades API"})

	doc, err := svc.Render(testTranscript())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Error("Render() did not produce a PDF document")
	}
}

func TestTranscriptService_Render_deterministic(t *testing.T) {
	svc := NewTranscriptService(&core.Config{AppName: "Grades API"})

	first, err := svc.Render(testTranscript())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		doc, err := svc.Render(testTranscript())
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !bytes.Equal(doc, first) {
			t.Fatal("Render() output differs between runs for the same transcript")
		}
	}
}
