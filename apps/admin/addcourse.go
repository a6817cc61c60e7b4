package main

import (
	"context"

	"github.com/Pastalavisto/iut-laval-grades-api/core"
	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

// addCourse registers a new course.Course in the reference data.
func (cli *commandLine) addCourse(code, name string, credits int) error {
	crs := course.Course{
		Code:    core.CleanString(code),
		Name:    core.CleanString(name),
		Credits: credits,
	}
	created, err := cli.crsRepo.CreateCourse(context.Background(), crs)
	if err != nil {
		return err
	}
	logger.Printf("course %q (%s) registered with id %d\n", created.Name, created.Code, created.ID)
	return nil
}
