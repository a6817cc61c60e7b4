package grade

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

// CourseLookup resolves course reference data for a course id. Aggregations
// receive it pre-loaded so they stay pure and deterministic.
type CourseLookup func(courseID int) (course.Course, bool)

// FilterByYear returns the entries recorded for the given academic year.
// An empty year keeps the whole slice (the corpus was already scoped upstream).
func FilterByYear(entries []Grade, academicYear string) []Grade {
	if academicYear == "" {
		return entries
	}
	filtered := make([]Grade, 0, len(entries))
	for _, e := range entries {
		if e.AcademicYear == academicYear {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// GlobalStatsOf reduces entries into corpus-wide statistics. An empty input
// yields a zero value: globalAverage is 0 by contract, not an error.
func GlobalStatsOf(entries []Grade, passingGrade float64) GlobalStats {
	if len(entries) == 0 {
		return GlobalStats{}
	}

	var sum float64
	var passed int
	students := make(map[int]struct{})
	courses := make(map[int]struct{})
	for _, e := range entries {
		sum += e.Grade
		if e.Grade >= passingGrade {
			passed++
		}
		students[e.StudentID] = struct{}{}
		courses[e.CourseID] = struct{}{}
	}

	n := float64(len(entries))
	return GlobalStats{
		GlobalAverage:      round2(sum / n),
		TotalStudents:      len(students),
		TotalCourses:       len(courses),
		AverageSuccessRate: round2(float64(passed) * 100 / n),
	}
}

// CourseSummaryOf reduces entries already scoped to course c. A course with
// zero entries yields a summary with zeroed numeric fields; deciding whether
// the course exists at all is the caller's job.
func CourseSummaryOf(entries []Grade, c course.Course, passingGrade float64) CourseSummary {
	summary := CourseSummary{
		CourseCode: c.Code,
		CourseName: c.Name,
	}
	if len(entries) == 0 {
		return summary
	}

	var sum float64
	var passed int
	min, max := entries[0].Grade, entries[0].Grade
	students := make(map[int]struct{})
	for _, e := range entries {
		sum += e.Grade
		if e.Grade >= passingGrade {
			passed++
		}
		if e.Grade < min {
			min = e.Grade
		}
		if e.Grade > max {
			max = e.Grade
		}
		students[e.StudentID] = struct{}{}
	}

	n := float64(len(entries))
	summary.AverageGrade = round2(sum / n)
	summary.MinGrade = min
	summary.MaxGrade = max
	summary.TotalStudents = len(students)
	summary.SuccessRate = round2(float64(passed) * 100 / n)
	return summary
}

// SemesterSummaries groups entries by semester label and reduces each group.
// academicYear is a mandatory scope: grouping by label alone would silently
// merge S1/S2 data across years. Pass "" only for a corpus already scoped
// upstream. Groups come back in first-seen order, which is stable for a given
// input ordering.
func SemesterSummaries(entries []Grade, academicYear string, lookup CourseLookup, passingGrade float64) ([]SemesterSummary, error) {
	order, groups := groupBySemester(FilterByYear(entries, academicYear))

	summaries := make([]SemesterSummary, 0, len(order))
	for _, semester := range order {
		summary, err := summarize(semester, groups[semester], lookup, passingGrade)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// groupBySemester partitions entries by semester label, preserving first-seen
// group order.
func groupBySemester(entries []Grade) ([]string, map[string][]Grade) {
	var order []string
	groups := make(map[string][]Grade)
	for _, e := range entries {
		if _, ok := groups[e.Semester]; !ok {
			order = append(order, e.Semester)
		}
		groups[e.Semester] = append(groups[e.Semester], e)
	}
	return order, groups
}

// summarize reduces one group of entries into a SemesterSummary. The average
// is credit-weighted; validatedCredits only counts entries at/above the
// passing grade. A grade referencing a course the lookup cannot resolve fails
// the whole computation rather than skewing the credit totals.
func summarize(label string, entries []Grade, lookup CourseLookup, passingGrade float64) (SemesterSummary, error) {
	var weightedSum float64
	var totalCredits, validatedCredits int
	courses := make(map[int]struct{})

	for _, e := range entries {
		c, ok := lookup(e.CourseID)
		if !ok {
			return SemesterSummary{}, errors.Errorf("grade %d references unknown course %d", e.ID, e.CourseID)
		}
		weightedSum += e.Grade * float64(c.Credits)
		totalCredits += c.Credits
		if e.Grade >= passingGrade {
			validatedCredits += c.Credits
		}
		courses[e.CourseID] = struct{}{}
	}

	var avg float64
	if totalCredits > 0 {
		avg = round2(weightedSum / float64(totalCredits))
	}
	return SemesterSummary{
		Semester:         label,
		AverageGrade:     avg,
		TotalCredits:     totalCredits,
		ValidatedCredits: validatedCredits,
		CoursesCount:     len(courses),
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
