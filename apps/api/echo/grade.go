package echoapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

type gradeApi struct {
	svc grade.ServiceInterface
}

func registerGradeAPI(g *echo.Group, svc grade.ServiceInterface) {
	api := gradeApi{svc: svc}

	g.GET("", api.query)
	g.POST("", api.create)
	g.GET("/student/:studentId", api.queryByStudent)
	g.GET("/student/:studentId/transcript", api.transcript)
	g.PUT("/:id", api.update)
	g.DELETE("/:id", api.destroy)
}

// Handlers

func (api *gradeApi) query(ctx echo.Context) error {
	grades, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) queryByStudent(ctx echo.Context) error {
	studentID, err := strconv.Atoi(ctx.Param("studentId"))
	if err != nil {
		return grade.ErrStudentNotFound
	}

	grades, err := api.svc.QueryByStudent(ctx.Request().Context(), studentID)
	if err != nil {
		if errors.Cause(err) == grade.ErrStudentNotFound {
			return err
		}
		return errors.Wrap(err, "querying student grades")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) transcript(ctx echo.Context) error {
	studentID, err := strconv.Atoi(ctx.Param("studentId"))
	if err != nil {
		return grade.ErrTranscriptNotFound
	}

	var filter academicYearFilter
	if err = filter.BindRequired(ctx); err != nil {
		return err
	}

	doc, err := api.svc.Transcript(ctx.Request().Context(), studentID, filter.AcademicYear)
	if err != nil {
		if errors.Cause(err) == grade.ErrTranscriptNotFound {
			return err
		}
		return errors.Wrap(err, "generating transcript")
	}

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=releve_%d_%s.pdf", studentID, filter.AcademicYear),
	)
	return ctx.Blob(http.StatusOK, "application/pdf", doc)
}

func (api *gradeApi) create(ctx echo.Context) error {
	var data grade.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return invalidDataErr(err)
	}
	if err := data.Validate(); err != nil {
		return invalidDataErr(err)
	}

	g, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, g)
}

func (api *gradeApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return grade.ErrGradeNotFound
	}

	var data grade.UpdateGrade
	if err = ctx.Bind(&data); err != nil {
		return invalidDataErr(err)
	}
	if err = data.Validate(); err != nil {
		return invalidDataErr(err)
	}

	g, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		if errors.Cause(err) == grade.ErrGradeNotFound {
			return err
		}
		return errors.Wrap(err, "updating grade")
	}
	return ctx.JSON(http.StatusOK, UpdateGradeResponse{ID: ctx.Param("id"), Grade: g.Grade})
}

func (api *gradeApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return grade.ErrGradeNotFound
	}

	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == grade.ErrGradeNotFound {
			return err
		}
		return errors.Wrap(err, "deleting grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Requests & Responses

type UpdateGradeResponse struct {
	ID    string  `json:"id"`
	Grade float64 `json:"grade"`
}
