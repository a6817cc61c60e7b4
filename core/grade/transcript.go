package grade

// TranscriptRenderer turns a composed Transcript into document bytes. The
// same transcript value must always render to the same bytes.
type TranscriptRenderer interface {
	Render(t Transcript) ([]byte, error)
}

// ComposeTranscript builds the transcript for one student and one academic
// year from entries already scoped to that student. Every entry of the scoped
// year appears on exactly one section line; the composition is deterministic
// for a given input ordering.
func ComposeTranscript(entries []Grade, studentID int, academicYear string, lookup CourseLookup, passingGrade float64) (Transcript, error) {
	entries = FilterByYear(entries, academicYear)
	order, groups := groupBySemester(entries)

	sections := make([]TranscriptSection, 0, len(order))
	for _, semester := range order {
		group := groups[semester]

		summary, err := summarize(semester, group, lookup, passingGrade)
		if err != nil {
			return Transcript{}, err
		}

		lines := make([]TranscriptLine, 0, len(group))
		for _, e := range group {
			c, _ := lookup(e.CourseID) // summarize already resolved every course
			lines = append(lines, TranscriptLine{
				CourseCode: c.Code,
				CourseName: c.Name,
				Credits:    c.Credits,
				Grade:      e.Grade,
			})
		}

		sections = append(sections, TranscriptSection{Summary: summary, Lines: lines})
	}

	overall, err := summarize(academicYear, entries, lookup, passingGrade)
	if err != nil {
		return Transcript{}, err
	}

	return Transcript{
		StudentID:    studentID,
		AcademicYear: academicYear,
		Sections:     sections,
		Overall:      overall,
	}, nil
}
