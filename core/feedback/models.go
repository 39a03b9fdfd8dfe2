package feedback

import (
	"time"

	"github.com/trezcool/maoni/core"
)

type Feedback struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	Rating    int       `json:"rating"` // 1-5, validated on input
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewFeedback contains information needed to submit feedback. The rating
// range is enforced here, before the record is constructed; the service does
// not re-validate it.
type NewFeedback struct {
	StudentID string `json:"-"`
	CourseID  string `json:"course_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (nf *NewFeedback) Validate() error {
	nf.Comment = core.CleanString(nf.Comment)
	return core.Validate.Struct(nf)
}

// ReportRow is one line of the administrator's feedback listing.
type ReportRow struct {
	ID          string    `json:"id" db:"id"`
	StudentID   string    `json:"student_id" db:"student_id"`
	StudentName string    `json:"student_name" db:"student_name"`
	CourseID    string    `json:"course_id" db:"course_id"`
	CourseName  string    `json:"course_name" db:"course_name"`
	FacultyName string    `json:"faculty_name" db:"faculty_name"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     string    `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
