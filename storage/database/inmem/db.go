// Package inmemdb provides in-memory repositories enforcing the same
// uniqueness rules as the postgres schema, atomically under one lock. It
// backs the test suites.
package inmemdb

import (
	"context"
	"database/sql"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
	"github.com/trezcool/maoni/core/course"
	"github.com/trezcool/maoni/core/feedback"
	"github.com/trezcool/maoni/core/student"
)

var errNotSupported = errors.New("inmemdb: raw queries not supported")

type DB struct {
	mu        sync.RWMutex
	students  map[string]*student.Student
	admins    map[string]*admin.Administrator
	courses   map[string]*course.Course
	feedbacks map[string]*feedback.Feedback
	fbPairs   map[string]struct{} // (studentID, courseID) uniqueness "constraint"
}

var _ core.DB = (*DB)(nil)

func NewDB() *DB {
	return &DB{
		students:  make(map[string]*student.Student),
		admins:    make(map[string]*admin.Administrator),
		courses:   make(map[string]*course.Course),
		feedbacks: make(map[string]*feedback.Feedback),
		fbPairs:   make(map[string]struct{}),
	}
}

// Reset drops all stored data. For tests.
func (db *DB) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.students = make(map[string]*student.Student)
	db.admins = make(map[string]*admin.Administrator)
	db.courses = make(map[string]*course.Course)
	db.feedbacks = make(map[string]*feedback.Feedback)
	db.fbPairs = make(map[string]struct{})
}

// BeginTx returns a no-op transactor: repository writes here are single,
// atomic map operations, so there is nothing to stage or roll back.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (core.DBTransactor, error) {
	return &tx{DB: db}, nil
}

func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return nil, errNotSupported
}
func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errNotSupported
}
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errNotSupported
}
func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errNotSupported
}
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row                              { return nil }
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row { return nil }

type tx struct {
	*DB
}

var _ core.DBTransactor = (*tx)(nil)

func (tx *tx) Commit() error   { return nil }
func (tx *tx) Rollback() error { return nil }

func fbPairKey(studentID, courseID string) string {
	return studentID + "\x00" + courseID
}
