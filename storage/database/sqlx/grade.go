package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

const gradeColumns = "id, student_id, course_id, grade, semester, academic_year"

type GradeRepository struct {
	db *sqlx.DB
}

var _ grade.Repository = (*GradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to grade.ErrGradeNotFound
func (repo *GradeRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return grade.ErrGradeNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo *GradeRepository) QueryAllGrades(ctx context.Context) ([]grade.Grade, error) {
	var grades []grade.Grade
	err := repo.db.SelectContext(ctx, &grades,
		"SELECT "+gradeColumns+" FROM grades ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "querying grades")
	}
	return grades, nil
}

func (repo *GradeRepository) QueryGradesByStudent(ctx context.Context, studentID int) ([]grade.Grade, error) {
	var grades []grade.Grade
	err := repo.db.SelectContext(ctx, &grades,
		"SELECT "+gradeColumns+" FROM grades WHERE student_id = $1 ORDER BY id", studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying grades by student")
	}
	return grades, nil
}

func (repo *GradeRepository) QueryGradesByCourse(ctx context.Context, courseID int) ([]grade.Grade, error) {
	var grades []grade.Grade
	err := repo.db.SelectContext(ctx, &grades,
		"SELECT "+gradeColumns+" FROM grades WHERE course_id = $1 ORDER BY id", courseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying grades by course")
	}
	return grades, nil
}

func (repo *GradeRepository) QueryGradesByStudentAndYear(ctx context.Context, studentID int, academicYear string) ([]grade.Grade, error) {
	var grades []grade.Grade
	err := repo.db.SelectContext(ctx, &grades,
		"SELECT "+gradeColumns+" FROM grades WHERE student_id = $1 AND academic_year = $2 ORDER BY id",
		studentID, academicYear)
	if err != nil {
		return nil, errors.Wrap(err, "querying grades by student and year")
	}
	return grades, nil
}

func (repo *GradeRepository) CreateGrade(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	var created grade.Grade
	err := repo.db.GetContext(ctx, &created,
		`INSERT INTO grades (student_id, course_id, grade, semester, academic_year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+gradeColumns,
		g.StudentID, g.CourseID, g.Grade, g.Semester, g.AcademicYear)
	if err != nil {
		return grade.Grade{}, errors.Wrap(err, "creating grade")
	}
	return created, nil
}

func (repo *GradeRepository) UpdateGrade(ctx context.Context, id int, value float64) (grade.Grade, error) {
	var updated grade.Grade
	err := repo.db.GetContext(ctx, &updated,
		"UPDATE grades SET grade = $2 WHERE id = $1 RETURNING "+gradeColumns, id, value)
	if err != nil {
		return grade.Grade{}, repo.trapNoRowsErr(err, "updating grade")
	}
	return updated, nil
}

func (repo *GradeRepository) DeleteGradeByID(ctx context.Context, id int) error {
	res, err := repo.db.ExecContext(ctx, "DELETE FROM grades WHERE id = $1", id)
	if err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	if n == 0 {
		return grade.ErrGradeNotFound
	}
	return nil
}
