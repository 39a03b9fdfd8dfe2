package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.db
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course, exec ...core.DBExecutor) (course.Course, error) {
	crs.ID = uuid.New().String()

	const q = `INSERT INTO course (id, name, faculty_name) VALUES ($1, $2, $3)`
	if _, err := repo.getExec(exec).ExecContext(ctx, q, crs.ID, crs.Name, crs.FacultyName); err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo courseRepository) GetCourseByID(ctx context.Context, id string, exec ...core.DBExecutor) (course.Course, error) {
	if _, err := uuid.Parse(id); err != nil {
		return course.Course{}, course.ErrNotFound
	}

	const q = `SELECT id, name, faculty_name FROM course WHERE id = $1`
	var crs course.Course
	row := repo.getExec(exec).QueryRowContext(ctx, q, id)
	if err := row.Scan(&crs.ID, &crs.Name, &crs.FacultyName); err != nil {
		return course.Course{}, trapNoRowsErr(err, course.ErrNotFound, "finding course")
	}
	return crs, nil
}

func (repo courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	const q = `SELECT id, name, faculty_name FROM course ORDER BY name`
	courses := make([]course.Course, 0)
	if err := repo.db.SelectContext(ctx, &courses, q); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return courses, nil
}
