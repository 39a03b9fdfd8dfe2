package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/feedback"
)

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *sqlx.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo feedbackRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.db
}

// CreateFeedback inserts optimistically; the feedback_student_course_key
// constraint raises 23505 on a duplicate (student_id, course_id) pair, which
// is the authoritative duplicate signal.
func (repo feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback, exec ...core.DBExecutor) (feedback.Feedback, error) {
	fb.ID = uuid.New().String()

	const q = `INSERT INTO feedback (id, student_id, course_id, rating, comment, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := repo.getExec(exec).ExecContext(ctx, q, fb.ID, fb.StudentID, fb.CourseID, fb.Rating, fb.Comment, fb.CreatedAt); err != nil {
		return feedback.Feedback{}, trapDuplicateErr(err, feedback.ErrDuplicate, "inserting feedback")
	}
	return fb, nil
}

const feedbackReportQuery = `
SELECT f.id, f.student_id, s.name AS student_name,
       f.course_id, c.name AS course_name, c.faculty_name,
       f.rating, f.comment, f.created_at
  FROM feedback f
  JOIN student s ON s.id = f.student_id
  JOIN course c ON c.id = f.course_id
 ORDER BY f.created_at DESC`

func (repo feedbackRepository) QueryFeedbackReport(ctx context.Context) ([]feedback.ReportRow, error) {
	rows := make([]feedback.ReportRow, 0)
	if err := repo.db.SelectContext(ctx, &rows, feedbackReportQuery); err != nil {
		return nil, errors.Wrap(err, "querying feedback report")
	}
	return rows, nil
}
