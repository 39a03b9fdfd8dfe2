package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db}
}

// CreateStudent checks email uniqueness and inserts under one lock, emulating
// the storage constraint atomically.
func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student, exec ...core.DBExecutor) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for _, s := range repo.db.students {
		if s.Email == std.Email {
			return student.Student{}, student.ErrEmailTaken
		}
	}
	std.ID = uuid.New().String()
	repo.db.students[std.ID] = &std
	return std, nil
}

func (repo *studentRepository) GetStudent(ctx context.Context, filter student.GetFilter, exec ...core.DBExecutor) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if filter.ID != "" {
		if std, ok := repo.db.students[filter.ID]; ok {
			return *std, nil
		}
		return student.Student{}, student.ErrNotFound
	}
	if filter.Email != "" {
		for _, std := range repo.db.students {
			if std.Email == filter.Email {
				return *std, nil
			}
		}
	}
	return student.Student{}, student.ErrNotFound
}
