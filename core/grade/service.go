package grade

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

var (
	// errors
	ErrGradeNotFound   = errors.New("grade not found")
	ErrStudentNotFound = errors.New("student not found")
	// ErrTranscriptNotFound deliberately merges "unknown student" and
	// "no grades recorded for that year": existing consumers depend on the
	// single outcome.
	ErrTranscriptNotFound = errors.New("student not found or no grades")
)

type (
	// Repository is the grade record store consumed by the engine.
	// List results come back in insertion (id) order so that grouping is
	// deterministic.
	Repository interface {
		QueryAllGrades(ctx context.Context) ([]Grade, error)
		QueryGradesByStudent(ctx context.Context, studentID int) ([]Grade, error)
		QueryGradesByCourse(ctx context.Context, courseID int) ([]Grade, error)
		QueryGradesByStudentAndYear(ctx context.Context, studentID int, academicYear string) ([]Grade, error)
		CreateGrade(ctx context.Context, g Grade) (Grade, error)
		// UpdateGrade modifies the grade value only; ErrGradeNotFound when id is unknown.
		UpdateGrade(ctx context.Context, id int, value float64) (Grade, error)
		DeleteGradeByID(ctx context.Context, id int) error
	}

	ServiceInterface interface {
		QueryAll(ctx context.Context) ([]Grade, error)
		QueryByStudent(ctx context.Context, studentID int) ([]Grade, error)
		Create(ctx context.Context, ng NewGrade) (Grade, error)
		Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error)
		Delete(ctx context.Context, id int) error
		GlobalStats(ctx context.Context, academicYear string) (GlobalStats, error)
		CourseStats(ctx context.Context, courseID int, academicYear string) (CourseSummary, error)
		StudentSemesterStats(ctx context.Context, studentID int, academicYear string) ([]SemesterSummary, error)
		Transcript(ctx context.Context, studentID int, academicYear string) ([]byte, error)
	}

	// Service orchestrates the store, the course reference data and the
	// transcript renderer. It is stateless: all grade data is loaded fresh
	// per call.
	Service struct {
		repo         Repository
		courses      course.Repository
		renderer     TranscriptRenderer
		passingGrade float64
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository, courses course.Repository, renderer TranscriptRenderer, conf *core.Config) *Service {
	return &Service{
		repo:         repo,
		courses:      courses,
		renderer:     renderer,
		passingGrade: conf.PassingGrade,
	}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Grade, error) {
	grades, err := svc.repo.QueryAllGrades(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying grades")
	}
	if grades == nil {
		grades = []Grade{}
	}
	return grades, nil
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID int) ([]Grade, error) {
	grades, err := svc.repo.QueryGradesByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying student grades")
	}
	if len(grades) == 0 {
		return nil, ErrStudentNotFound
	}
	return grades, nil
}

func (svc *Service) Create(ctx context.Context, ng NewGrade) (Grade, error) {
	g := Grade{
		StudentID:    *ng.StudentID,
		CourseID:     *ng.CourseID,
		Grade:        *ng.Grade,
		Semester:     ng.Semester,
		AcademicYear: ng.AcademicYear,
	}
	g, err := svc.repo.CreateGrade(ctx, g)
	if err != nil {
		return Grade{}, errors.Wrap(err, "creating grade")
	}
	return g, nil
}

func (svc *Service) Update(ctx context.Context, id int, ug UpdateGrade) (Grade, error) {
	g, err := svc.repo.UpdateGrade(ctx, id, *ug.Grade)
	if err != nil {
		if errors.Cause(err) == ErrGradeNotFound {
			return Grade{}, err
		}
		return Grade{}, errors.Wrap(err, "updating grade")
	}
	return g, nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	if err := svc.repo.DeleteGradeByID(ctx, id); err != nil {
		if errors.Cause(err) == ErrGradeNotFound {
			return err
		}
		return errors.Wrap(err, "deleting grade")
	}
	return nil
}

func (svc *Service) GlobalStats(ctx context.Context, academicYear string) (GlobalStats, error) {
	entries, err := svc.repo.QueryAllGrades(ctx)
	if err != nil {
		return GlobalStats{}, errors.Wrap(err, "querying grades")
	}
	return GlobalStatsOf(FilterByYear(entries, academicYear), svc.passingGrade), nil
}

func (svc *Service) CourseStats(ctx context.Context, courseID int, academicYear string) (CourseSummary, error) {
	c, err := svc.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			// "course unknown" is not the same as "course exists, no data"
			return CourseSummary{}, err
		}
		return CourseSummary{}, errors.Wrap(err, "looking up course")
	}

	entries, err := svc.repo.QueryGradesByCourse(ctx, courseID)
	if err != nil {
		return CourseSummary{}, errors.Wrap(err, "querying course grades")
	}
	return CourseSummaryOf(FilterByYear(entries, academicYear), c, svc.passingGrade), nil
}

func (svc *Service) StudentSemesterStats(ctx context.Context, studentID int, academicYear string) ([]SemesterSummary, error) {
	entries, err := svc.repo.QueryGradesByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying student grades")
	}
	if len(entries) == 0 {
		return nil, ErrStudentNotFound
	}

	lookup, err := svc.courseLookup(ctx, entries)
	if err != nil {
		return nil, err
	}

	summaries, err := SemesterSummaries(entries, academicYear, lookup, svc.passingGrade)
	if err != nil {
		return nil, errors.Wrap(err, "aggregating semesters")
	}
	return summaries, nil
}

func (svc *Service) Transcript(ctx context.Context, studentID int, academicYear string) ([]byte, error) {
	entries, err := svc.repo.QueryGradesByStudentAndYear(ctx, studentID, academicYear)
	if err != nil {
		return nil, errors.Wrap(err, "querying student grades")
	}
	if len(entries) == 0 {
		return nil, ErrTranscriptNotFound
	}

	lookup, err := svc.courseLookup(ctx, entries)
	if err != nil {
		return nil, err
	}

	t, err := ComposeTranscript(entries, studentID, academicYear, lookup, svc.passingGrade)
	if err != nil {
		return nil, errors.Wrap(err, "composing transcript")
	}

	doc, err := svc.renderer.Render(t)
	if err != nil {
		return nil, errors.Wrap(err, "rendering transcript")
	}
	return doc, nil
}

// courseLookup pre-loads the reference data for every course referenced by
// entries, so aggregation stays pure. A dangling course reference is a data
// inconsistency, not a "course not found" outcome.
func (svc *Service) courseLookup(ctx context.Context, entries []Grade) (CourseLookup, error) {
	cache := make(map[int]course.Course)
	for _, e := range entries {
		if _, ok := cache[e.CourseID]; ok {
			continue
		}
		c, err := svc.courses.GetCourseByID(ctx, e.CourseID)
		if err != nil {
			if errors.Cause(err) == course.ErrNotFound {
				return nil, errors.Errorf("grade %d references unknown course %d", e.ID, e.CourseID)
			}
			return nil, errors.Wrapf(err, "looking up course %d", e.CourseID)
		}
		cache[e.CourseID] = c
	}
	return func(id int) (course.Course, bool) {
		c, ok := cache[id]
		return c, ok
	}, nil
}
