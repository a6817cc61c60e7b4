package main

import (
	"context"
)

// listCourses prints the registered courses in id order.
func (cli *commandLine) listCourses() error {
	courses, err := cli.crsRepo.GetAllCourses(context.Background())
	if err != nil {
		return err
	}
	for _, crs := range courses {
		logger.Printf("%d\t%s\t%s\t%d credits\n", crs.ID, crs.Code, crs.Name, crs.Credits)
	}
	return nil
}
