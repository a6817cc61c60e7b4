package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

const (
	errGradeNotFoundMsg      = "Grade not found"
	errStudentNotFoundMsg    = "Student not found"
	errTranscriptNotFoundMsg = "Student not found or no grades"
	errCourseNotFoundMsg     = "Course not found"
	errInvalidDataMsg        = "Invalid data"
	errValidationFailedMsg   = "Validation failed"
)

// validationFailure is the response body for request validation errors.
type validationFailure struct {
	Message string            `json:"message"`
	Errors  []core.FieldError `json:"errors"`
}

// invalidDataErr wraps a binding/validation error so the handler reports it
// as a plain "Invalid data" failure while keeping the cause for logs.
func invalidDataErr(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errInvalidDataMsg).SetInternal(err)
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make([]core.FieldError, 0, len(origErr))
			for _, vErr := range origErr {
				fldErrs = append(fldErrs, core.FieldError{Field: vErr.Field(), Error: vErr.Translate(core.Translator)})
			}
			code = http.StatusBadRequest
			message = validationFailure{Message: errValidationFailedMsg, Errors: fldErrs}
		case *core.ValidationError:
			if origErr.Fields != nil {
				message = validationFailure{Message: errValidationFailedMsg, Errors: origErr.Fields}
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			switch origErr {
			case grade.ErrGradeNotFound:
				code = http.StatusNotFound
				message = errGradeNotFoundMsg
			case grade.ErrStudentNotFound:
				code = http.StatusNotFound
				message = errStudentNotFoundMsg
			case grade.ErrTranscriptNotFound:
				code = http.StatusNotFound
				message = errTranscriptNotFoundMsg
			case course.ErrNotFound:
				code = http.StatusNotFound
				message = errCourseNotFoundMsg
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				logger.Error(msg, errors.Wrap(err, msg))

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"message": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
