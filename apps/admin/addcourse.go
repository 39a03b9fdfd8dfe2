package main

import (
	"context"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/course"
)

func (cli *commandLine) addCourse(name, faculty string) error {
	crs := course.Course{
		Name:        core.CleanString(name),
		FacultyName: core.CleanString(faculty),
	}
	crs, err := cli.crsRepo.CreateCourse(context.Background(), crs)
	if err != nil {
		return err
	}
	// audit is best-effort; course creation already succeeded
	if err := cli.audit.Record("course registered: " + crs.Name); err != nil {
		logger.Printf("recording audit entry: %v\n", err)
	}
	logger.Printf("course %q (%s) registered\n", crs.Name, crs.FacultyName)
	return nil
}
