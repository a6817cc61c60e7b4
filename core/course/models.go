// Package course exposes the course reference data (code, name, credit
// weight) the grade engine depends on. The data itself is owned by an
// external catalog; this engine only ever reads it.
package course

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("course not found")

// Course is read-only reference data; Credits weights grade aggregations.
type Course struct {
	ID      int    `json:"id" db:"id"`
	Code    string `json:"code" db:"code"`
	Name    string `json:"name" db:"name"`
	Credits int    `json:"credits" db:"credits"`
}

// Repository is deliberately read-only so aggregations can be faked
// deterministically in tests. Writes happen out of band (migrations, admin CLI).
type Repository interface {
	GetCourseByID(ctx context.Context, id int) (Course, error)
}
