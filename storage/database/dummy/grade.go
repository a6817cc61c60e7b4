package dummydb

import (
	"context"
	"sort"

	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

// query returns a snapshot of the table ordered by ID.
func (repo *gradeRepository) query() []grade.Grade {
	grades := make([]grade.Grade, 0, len(repo.db.table))
	for _, g := range repo.db.table {
		grades = append(grades, *g)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades
}

func (repo *gradeRepository) QueryAllGrades(ctx context.Context) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *gradeRepository) QueryGradesByStudent(ctx context.Context, studentID int) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var grades []grade.Grade
	for _, g := range repo.query() {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) QueryGradesByCourse(ctx context.Context, courseID int) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var grades []grade.Grade
	for _, g := range repo.query() {
		if g.CourseID == courseID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) QueryGradesByStudentAndYear(ctx context.Context, studentID int, academicYear string) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var grades []grade.Grade
	for _, g := range repo.query() {
		if g.StudentID == studentID && g.AcademicYear == academicYear {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) CreateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.lastID++
	g.ID = repo.db.lastID
	repo.db.table[g.ID] = &g
	return g, nil
}

func (repo *gradeRepository) UpdateGrade(ctx context.Context, id int, value float64) (grade.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	g, ok := repo.db.table[id]
	if !ok {
		return grade.Grade{}, grade.ErrGradeNotFound
	}
	g.Grade = value
	return *g, nil
}

func (repo *gradeRepository) DeleteGradeByID(ctx context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return grade.ErrGradeNotFound
	}
	delete(repo.db.table, id)
	return nil
}
