// Package grade contains the academic performance engine: grade entries,
// their validation rules, the pure aggregation functions and the transcript
// composer.
package grade

import (
	"strings"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
)

// Semesters
const (
	SemesterS1 = "S1"
	SemesterS2 = "S2"
)

// Grade is one student/course/semester/academicYear grade record.
type Grade struct {
	ID           int     `json:"id" db:"id"`
	StudentID    int     `json:"studentId" db:"student_id"`
	CourseID     int     `json:"courseId" db:"course_id"`
	Grade        float64 `json:"grade" db:"grade"`
	Semester     string  `json:"semester" db:"semester"`
	AcademicYear string  `json:"academicYear" db:"academic_year"`
}

// NewGrade contains information needed to record a new Grade.
// Numeric fields are pointers so that a legitimate 0 passes the presence check.
type NewGrade struct {
	StudentID    *int     `json:"studentId" validate:"required"`
	CourseID     *int     `json:"courseId" validate:"required"`
	Grade        *float64 `json:"grade" validate:"required,gte=0,lte=20"`
	Semester     string   `json:"semester" validate:"required,oneof=S1 S2"`
	AcademicYear string   `json:"academicYear" validate:"required,academic_year"`
}

func (ng *NewGrade) Validate() error {
	ng.Semester = strings.ToUpper(core.CleanString(ng.Semester))
	ng.AcademicYear = core.CleanString(ng.AcademicYear)

	return core.WrapValidationError(core.Validate.Struct(ng))
}

// UpdateGrade defines what information may be provided to modify an existing
// Grade: the grade value only.
type UpdateGrade struct {
	Grade *float64 `json:"grade" validate:"required,gte=0,lte=20"`
}

func (ug *UpdateGrade) Validate() error {
	return core.WrapValidationError(core.Validate.Struct(ug))
}

// Derived values, computed fresh per request and never persisted.

type GlobalStats struct {
	GlobalAverage      float64 `json:"globalAverage"`
	TotalStudents      int     `json:"totalStudents"`
	TotalCourses       int     `json:"totalCourses"`
	AverageSuccessRate float64 `json:"averageSuccessRate"`
}

type CourseSummary struct {
	CourseCode    string  `json:"courseCode"`
	CourseName    string  `json:"courseName"`
	AverageGrade  float64 `json:"averageGrade"`
	MinGrade      float64 `json:"minGrade"`
	MaxGrade      float64 `json:"maxGrade"`
	TotalStudents int     `json:"totalStudents"`
	SuccessRate   float64 `json:"successRate"`
}

type SemesterSummary struct {
	Semester         string  `json:"semester"`
	AverageGrade     float64 `json:"averageGrade"`
	TotalCredits     int     `json:"totalCredits"`
	ValidatedCredits int     `json:"validatedCredits"`
	CoursesCount     int     `json:"coursesCount"`
}

// TranscriptLine is one graded course as it appears on a transcript.
type TranscriptLine struct {
	CourseCode string  `json:"courseCode"`
	CourseName string  `json:"courseName"`
	Credits    int     `json:"credits"`
	Grade      float64 `json:"grade"`
}

type TranscriptSection struct {
	Summary SemesterSummary  `json:"summary"`
	Lines   []TranscriptLine `json:"lines"`
}

// Transcript summarizes one student's semester and cumulative performance for
// one academic year. It is recomputed on every request.
type Transcript struct {
	StudentID    int                 `json:"studentId"`
	AcademicYear string              `json:"academicYear"`
	Sections     []TranscriptSection `json:"sections"`
	Overall      SemesterSummary     `json:"overall"`
}
