package grade

import (
	"reflect"
	"testing"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

var testCourses = map[int]course.Course{
	1: {ID: 1, Code: "CS101", Name: "Informatique", Credits: 6},
	2: {ID: 2, Code: "MATH101", Name: "Mathématiques", Credits: 4},
	3: {ID: 3, Code: "BIO101", Name: "Biologie", Credits: 4},
}

func testLookup(id int) (course.Course, bool) {
	c, ok := testCourses[id]
	return c, ok
}

func TestFilterByYear(t *testing.T) {
	entries := []Grade{
		{ID: 1, AcademicYear: "2023-2024"},
		{ID: 2, AcademicYear: "2022-2023"},
		{ID: 3, AcademicYear: "2023-2024"},
	}

	tests := []struct {
		name    string
		year    string
		wantIDs []int
	}{
		{name: "empty year keeps everything", year: "", wantIDs: []int{1, 2, 3}},
		{name: "scoped", year: "2023-2024", wantIDs: []int{1, 3}},
		{name: "no match", year: "2019-2020", wantIDs: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByYear(entries, tt.year)
			gotIDs := make([]int, 0, len(got))
			for _, e := range got {
				gotIDs = append(gotIDs, e.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("FilterByYear() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestGlobalStatsOf(t *testing.T) {
	tests := []struct {
		name    string
		entries []Grade
		want    GlobalStats
	}{
		{name: "empty corpus", entries: nil, want: GlobalStats{}},
		{
			name: "single entry",
			entries: []Grade{
				{StudentID: 1, CourseID: 1, Grade: 12},
			},
			want: GlobalStats{GlobalAverage: 12, TotalStudents: 1, TotalCourses: 1, AverageSuccessRate: 100},
		},
		{
			// average (15.5+8+12)/3 = 11.83; students and courses are distinct counts
			name: "distinct counts",
			entries: []Grade{
				{StudentID: 1, CourseID: 1, Grade: 15.5},
				{StudentID: 1, CourseID: 2, Grade: 8},
				{StudentID: 2, CourseID: 1, Grade: 12},
			},
			want: GlobalStats{GlobalAverage: 11.83, TotalStudents: 2, TotalCourses: 2, AverageSuccessRate: 66.67},
		},
		{
			// a grade exactly at the threshold passes
			name: "boundary grade passes",
			entries: []Grade{
				{StudentID: 1, CourseID: 1, Grade: 10},
				{StudentID: 2, CourseID: 1, Grade: 9.99},
			},
			want: GlobalStats{GlobalAverage: 10, TotalStudents: 2, TotalCourses: 1, AverageSuccessRate: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlobalStatsOf(tt.entries, 10); got != tt.want {
				t.Errorf("GlobalStatsOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCourseSummaryOf(t *testing.T) {
	cs := testCourses[1]

	tests := []struct {
		name    string
		entries []Grade
		want    CourseSummary
	}{
		{
			// existing course with no data: zeroed numbers, identity kept
			name:    "no entries",
			entries: nil,
			want:    CourseSummary{CourseCode: "CS101", CourseName: "Informatique"},
		},
		{
			name: "graded course",
			entries: []Grade{
				{StudentID: 1, Grade: 15.5},
				{StudentID: 2, Grade: 8},
				{StudentID: 3, Grade: 12},
			},
			want: CourseSummary{
				CourseCode: "CS101", CourseName: "Informatique",
				AverageGrade: 11.83, MinGrade: 8, MaxGrade: 15.5,
				TotalStudents: 3, SuccessRate: 66.67,
			},
		},
		{
			// same student graded twice still counts once
			name: "repeated student",
			entries: []Grade{
				{StudentID: 1, Grade: 10},
				{StudentID: 1, Grade: 14},
			},
			want: CourseSummary{
				CourseCode: "CS101", CourseName: "Informatique",
				AverageGrade: 12, MinGrade: 10, MaxGrade: 14,
				TotalStudents: 1, SuccessRate: 100,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseSummaryOf(tt.entries, cs, 10); got != tt.want {
				t.Errorf("CourseSummaryOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSemesterSummaries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Grade
		year    string
		want    []SemesterSummary
		wantErr bool
	}{
		{
			name:    "no entries",
			entries: nil,
			year:    "2023-2024",
			want:    []SemesterSummary{},
		},
		{
			// S2 appears first in the data, so it comes back first
			name: "first-seen group order",
			entries: []Grade{
				{ID: 1, CourseID: 1, Grade: 9, Semester: "S2", AcademicYear: "2023-2024"},
				{ID: 2, CourseID: 1, Grade: 15.5, Semester: "S1", AcademicYear: "2023-2024"},
				{ID: 3, CourseID: 2, Grade: 12, Semester: "S1", AcademicYear: "2023-2024"},
			},
			year: "2023-2024",
			want: []SemesterSummary{
				{Semester: "S2", AverageGrade: 9, TotalCredits: 6, ValidatedCredits: 0, CoursesCount: 1},
				{Semester: "S1", AverageGrade: 14.1, TotalCredits: 10, ValidatedCredits: 10, CoursesCount: 2},
			},
		},
		{
			// other years are dropped before grouping
			name: "scoped to year",
			entries: []Grade{
				{ID: 1, CourseID: 1, Grade: 18, Semester: "S1", AcademicYear: "2022-2023"},
				{ID: 2, CourseID: 1, Grade: 10, Semester: "S1", AcademicYear: "2023-2024"},
			},
			year: "2023-2024",
			want: []SemesterSummary{
				{Semester: "S1", AverageGrade: 10, TotalCredits: 6, ValidatedCredits: 6, CoursesCount: 1},
			},
		},
		{
			name: "dangling course reference",
			entries: []Grade{
				{ID: 1, CourseID: 999, Grade: 10, Semester: "S1", AcademicYear: "2023-2024"},
			},
			year:    "2023-2024",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SemesterSummaries(tt.entries, tt.year, testLookup, 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SemesterSummaries() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SemesterSummaries() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSemesterSummaries_deterministic(t *testing.T) {
	entries := []Grade{
		{ID: 1, CourseID: 1, Grade: 11, Semester: "S1", AcademicYear: "2023-2024"},
		{ID: 2, CourseID: 2, Grade: 13, Semester: "S2", AcademicYear: "2023-2024"},
		{ID: 3, CourseID: 3, Grade: 7, Semester: "S1", AcademicYear: "2023-2024"},
	}

	first, err := SemesterSummaries(entries, "2023-2024", testLookup, 10)
	if err != nil {
		t.Fatalf("SemesterSummaries() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := SemesterSummaries(entries, "2023-2024", testLookup, 10)
		if err != nil {
			t.Fatalf("SemesterSummaries() error = %v", err)
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("SemesterSummaries() not deterministic: %+v != %+v", got, first)
		}
	}
}
