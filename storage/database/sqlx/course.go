package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

const courseColumns = "id, code, name, credits"

type CourseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*CourseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (repo *CourseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	var crs course.Course
	err := repo.db.GetContext(ctx, &crs,
		"SELECT "+courseColumns+" FROM courses WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "getting course")
	}
	return crs, nil
}

func (repo *CourseRepository) GetAllCourses(ctx context.Context) ([]course.Course, error) {
	var courses []course.Course
	err := repo.db.SelectContext(ctx, &courses,
		"SELECT "+courseColumns+" FROM courses ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return courses, nil
}

func (repo *CourseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	var created course.Course
	err := repo.db.GetContext(ctx, &created,
		`INSERT INTO courses (code, name, credits)
		 VALUES ($1, $2, $3)
		 RETURNING `+courseColumns,
		crs.Code, crs.Name, crs.Credits)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "creating course")
	}
	return created, nil
}
