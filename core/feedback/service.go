package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
)

var ErrDuplicate = errors.New("feedback already submitted for this course by the student")

type (
	Repository interface {
		// CreateFeedback inserts fb optimistically. A unique violation on
		// (student_id, course_id) is reported as ErrDuplicate; the storage
		// constraint is the authoritative duplicate check.
		CreateFeedback(ctx context.Context, fb Feedback, exec ...core.DBExecutor) (Feedback, error)
		// QueryFeedbackReport joins feedback with student and course names,
		// ordered by creation timestamp descending.
		QueryFeedbackReport(ctx context.Context) ([]ReportRow, error)
	}

	Service struct {
		db    core.DB
		repo  Repository
		audit core.AuditLogger
		log   core.Logger
	}
)

func NewService(db core.DB, repo Repository, audit core.AuditLogger, log core.Logger) *Service {
	return &Service{db: db, repo: repo, audit: audit, log: log}
}

// Submit records feedback for a (student, course) pair inside one
// transaction. The insert is optimistic: no existence pre-check, since two
// concurrent submissions can both pass such a check before either inserts.
// The duplicate signal comes from the storage uniqueness constraint and
// rolls the transaction back, so no partial row is ever visible.
//
// Audit entries are written after the outcome is known and never affect it.
func (svc *Service) Submit(ctx context.Context, nf NewFeedback) (Feedback, error) {
	fb := Feedback{
		StudentID: nf.StudentID,
		CourseID:  nf.CourseID,
		Rating:    nf.Rating,
		Comment:   nf.Comment,
		CreatedAt: time.Now().UTC(),
	}

	err := core.Atomic(ctx, svc.db, svc.log, func(tx core.DBTransactor) error {
		var err error
		fb, err = svc.repo.CreateFeedback(ctx, fb, tx)
		return err
	})
	if err != nil {
		if err == ErrDuplicate {
			core.Audit(svc.log, svc.audit,
				fmt.Sprintf("duplicate feedback attempt by student %s for course %s", nf.StudentID, nf.CourseID))
		} else {
			core.Audit(svc.log, svc.audit,
				fmt.Sprintf("feedback submission by student %s for course %s failed: %v", nf.StudentID, nf.CourseID, err))
		}
		return Feedback{}, err
	}

	core.Audit(svc.log, svc.audit,
		fmt.Sprintf("feedback submitted by student %s for course %s", fb.StudentID, fb.CourseID))
	return fb, nil
}

// ListReport returns all feedback joined with student and course details,
// most recent first. Read-only; takes no transaction.
func (svc *Service) ListReport(ctx context.Context) ([]ReportRow, error) {
	rows, err := svc.repo.QueryFeedbackReport(ctx)
	if err != nil {
		core.Audit(svc.log, svc.audit, fmt.Sprintf("feedback report query failed: %v", err))
		return nil, err
	}
	core.Audit(svc.log, svc.audit, "administrator viewed feedback report")
	return rows, nil
}
