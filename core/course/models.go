package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
)

var ErrNotFound = errors.New("course not found")

// Course is read-only reference data to the feedback subsystem; rows are
// seeded via the admin CLI.
type Course struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	FacultyName string `json:"faculty_name" db:"faculty_name"`
}

type Repository interface {
	CreateCourse(ctx context.Context, crs Course, exec ...core.DBExecutor) (Course, error)
	GetCourseByID(ctx context.Context, id string, exec ...core.DBExecutor) (Course, error)
	QueryAllCourses(ctx context.Context) ([]Course, error)
}
