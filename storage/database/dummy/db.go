package dummydb

import (
	"sync"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

type (
	DB struct {
		grade  *gradeTable
		course *courseTable
	}

	gradeTable struct {
		sync.RWMutex
		table  map[int]*grade.Grade
		lastID int
	}

	courseTable struct {
		sync.RWMutex
		table  map[int]*course.Course
		lastID int
	}
)

func Open() (*DB, error) {
	db := &DB{
		grade:  &gradeTable{table: make(map[int]*grade.Grade)},
		course: &courseTable{table: make(map[int]*course.Course)},
	}
	return db, nil
}
