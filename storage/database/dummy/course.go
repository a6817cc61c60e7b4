package dummydb

import (
	"context"
	"sort"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

type CourseRepository struct {
	db *courseTable
}

var _ course.Repository = (*CourseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db.course}
}

func (repo *CourseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *CourseRepository) GetAllCourses(ctx context.Context) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.table))
	for _, crs := range repo.db.table {
		courses = append(courses, *crs)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (repo *CourseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.lastID++
	crs.ID = repo.db.lastID
	repo.db.table[crs.ID] = &crs
	return crs, nil
}
