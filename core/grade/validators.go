package grade

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
)

var (
	academicYearTag   = "academic_year"
	academicYearRegex = regexp.MustCompile(`^\d{4}-\d{4}$`)

	// AcademicYearText is the client-visible message for a malformed academic
	// year; boundary validation reuses it verbatim.
	AcademicYearText = "Academic year must be in the format YYYY-YYYY"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(academicYearTag, academicYearValidation)
	core.RegisterCustomTranslation(academicYearTag, AcademicYearText)
}

// IsAcademicYear reports whether s matches the YYYY-YYYY format.
func IsAcademicYear(s string) bool {
	return academicYearRegex.MatchString(s)
}

// Custom Validators

func academicYearValidation(fl validator.FieldLevel) bool {
	return IsAcademicYear(fl.Field().String())
}
