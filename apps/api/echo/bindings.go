package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

// academicYearFilter binds the optional academicYear query param. An absent
// or empty value means "no filter" (full corpus); the format is checked only
// when a value was supplied.
type academicYearFilter struct {
	AcademicYear string `query:"academicYear"`
}

func (f *academicYearFilter) Bind(ctx echo.Context) error {
	if err := ctx.Bind(f); err != nil {
		return errors.Wrap(err, "binding to academicYearFilter")
	}
	f.AcademicYear = core.CleanString(f.AcademicYear)
	if f.AcademicYear == "" {
		return nil
	}
	if !grade.IsAcademicYear(f.AcademicYear) {
		return core.NewValidationError(nil, core.FieldError{Error: grade.AcademicYearText})
	}
	return nil
}

// BindRequired is Bind for routes where the year scope is not optional
// (transcripts are composed for exactly one academic year).
func (f *academicYearFilter) BindRequired(ctx echo.Context) error {
	if err := f.Bind(ctx); err != nil {
		return err
	}
	if f.AcademicYear == "" {
		return core.NewValidationError(nil, core.FieldError{Error: grade.AcademicYearText})
	}
	return nil
}
