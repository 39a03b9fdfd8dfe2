package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/feedback"
)

type feedbackRepository struct {
	db *DB
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

// CreateFeedback checks and claims the (student, course) pair under one lock,
// so concurrent duplicates resolve to exactly one success.
func (repo *feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback, exec ...core.DBExecutor) (feedback.Feedback, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	key := fbPairKey(fb.StudentID, fb.CourseID)
	if _, ok := repo.db.fbPairs[key]; ok {
		return feedback.Feedback{}, feedback.ErrDuplicate
	}
	fb.ID = uuid.New().String()
	repo.db.feedbacks[fb.ID] = &fb
	repo.db.fbPairs[key] = struct{}{}
	return fb, nil
}

func (repo *feedbackRepository) QueryFeedbackReport(ctx context.Context) ([]feedback.ReportRow, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	rows := make([]feedback.ReportRow, 0, len(repo.db.feedbacks))
	for _, fb := range repo.db.feedbacks {
		row := feedback.ReportRow{
			ID:        fb.ID,
			StudentID: fb.StudentID,
			CourseID:  fb.CourseID,
			Rating:    fb.Rating,
			Comment:   fb.Comment,
			CreatedAt: fb.CreatedAt,
		}
		if std, ok := repo.db.students[fb.StudentID]; ok {
			row.StudentName = std.Name
		}
		if crs, ok := repo.db.courses[fb.CourseID]; ok {
			row.CourseName = crs.Name
			row.FacultyName = crs.FacultyName
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}
