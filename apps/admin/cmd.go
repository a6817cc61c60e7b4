package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/Pastalavisto/iut-laval-grades-api/core/course"
)

var errHelp = errors.New("help provided")

// courseStore is the slice of the course store the CLI needs.
type courseStore interface {
	GetAllCourses(ctx context.Context) ([]course.Course, error)
	CreateCourse(ctx context.Context, crs course.Course) (course.Course, error)
}

type commandLine struct {
	db      *sql.DB
	crsRepo courseStore
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [args] - run a database migration command (up, down, status, ...)")
	fmt.Println("  addcourse -code CODE -name NAME -credits CREDITS - register a course")
	fmt.Println("  listcourses - print the registered courses")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addCourseCmd := flag.NewFlagSet("addcourse", flag.ExitOnError)
	addCourseCode := addCourseCmd.String("code", "", "The course code. eg. CS101")
	addCourseName := addCourseCmd.String("name", "", "The course name.")
	addCourseCredits := addCourseCmd.Int("credits", 0, "The number of credits the course is worth.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "addcourse":
		if err := addCourseCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addCourseCode == "" || *addCourseName == "" || *addCourseCredits <= 0 {
			addCourseCmd.Usage()
			return errHelp
		}
		return cli.addCourse(*addCourseCode, *addCourseName, *addCourseCredits)
	case "listcourses":
		return cli.listCourses()
	default:
		cli.printUsage()
		return errHelp
	}
}
