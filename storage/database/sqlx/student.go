package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo studentRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.db
}

func (repo studentRepository) CreateStudent(ctx context.Context, std student.Student, exec ...core.DBExecutor) (student.Student, error) {
	std.ID = uuid.New().String()

	const q = `INSERT INTO student (id, name, email, password_hash, created_at)
	           VALUES ($1, $2, $3, $4, $5)`
	if _, err := repo.getExec(exec).ExecContext(ctx, q, std.ID, std.Name, std.Email, std.PasswordHash, std.CreatedAt); err != nil {
		return student.Student{}, trapDuplicateErr(err, student.ErrEmailTaken, "inserting student")
	}
	return std, nil
}

func (repo studentRepository) GetStudent(ctx context.Context, filter student.GetFilter, exec ...core.DBExecutor) (student.Student, error) {
	const cols = `SELECT id, name, email, password_hash, created_at FROM student`

	var q, arg string
	switch {
	case filter.ID != "":
		if _, err := uuid.Parse(filter.ID); err != nil {
			return student.Student{}, student.ErrNotFound
		}
		q, arg = cols+` WHERE id = $1`, filter.ID
	case filter.Email != "":
		q, arg = cols+` WHERE email = $1`, filter.Email
	default:
		return student.Student{}, student.ErrNotFound
	}

	var std student.Student
	row := repo.getExec(exec).QueryRowContext(ctx, q, arg)
	if err := row.Scan(&std.ID, &std.Name, &std.Email, &std.PasswordHash, &std.CreatedAt); err != nil {
		return student.Student{}, trapNoRowsErr(err, student.ErrNotFound, "finding student")
	}
	return std, nil
}
