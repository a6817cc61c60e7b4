package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
	"github.com/Pastalavisto/iut-laval-grades-api/core/grade"
)

type statsApi struct {
	svc grade.ServiceInterface
}

func registerStatsAPI(g *echo.Group, svc grade.ServiceInterface) {
	api := statsApi{svc: svc}

	g.GET("/global", api.global)
	g.GET("/course/:courseId", api.course)
	g.GET("/student/:studentId", api.student)
}

// Handlers

func (api *statsApi) global(ctx echo.Context) error {
	var filter academicYearFilter
	if err := filter.Bind(ctx); err != nil {
		return err
	}

	stats, err := api.svc.GlobalStats(ctx.Request().Context(), filter.AcademicYear)
	if err != nil {
		return errors.Wrap(err, "computing global stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *statsApi) course(ctx echo.Context) error {
	courseID, err := strconv.Atoi(ctx.Param("courseId"))
	if err != nil {
		return course.ErrNotFound
	}

	var filter academicYearFilter
	if err = filter.Bind(ctx); err != nil {
		return err
	}

	summary, err := api.svc.CourseStats(ctx.Request().Context(), courseID, filter.AcademicYear)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return err
		}
		return errors.Wrap(err, "computing course stats")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *statsApi) student(ctx echo.Context) error {
	studentID, err := strconv.Atoi(ctx.Param("studentId"))
	if err != nil {
		return grade.ErrStudentNotFound
	}

	var filter academicYearFilter
	if err = filter.Bind(ctx); err != nil {
		return err
	}

	summaries, err := api.svc.StudentSemesterStats(ctx.Request().Context(), studentID, filter.AcademicYear)
	if err != nil {
		if errors.Cause(err) == grade.ErrStudentNotFound {
			return err
		}
		return errors.Wrap(err, "computing student stats")
	}
	return ctx.JSON(http.StatusOK, summaries)
}
