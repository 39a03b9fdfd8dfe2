package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/maoni/core/admin"
	"github.com/trezcool/maoni/core/course"
	"github.com/trezcool/maoni/core/feedback"
	"github.com/trezcool/maoni/core/student"
)

func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name, email, pwd string,
	createdAt ...time.Time,
) student.Student {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	std := student.Student{
		Name:      name,
		Email:     email,
		CreatedAt: tstamp,
	}
	if pwd != "" {
		if err := std.SetPassword(pwd); err != nil {
			t.Fatalf("CreateStudent() failed: %v", err)
		}
	}
	std, err := repo.CreateStudent(context.Background(), std)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreateAdmin(
	t *testing.T,
	repo admin.Repository,
	username, pwd string,
) admin.Administrator {
	t.Helper()

	adm := admin.Administrator{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if pwd != "" {
		if err := adm.SetPassword(pwd); err != nil {
			t.Fatalf("CreateAdmin() failed: %v", err)
		}
	}
	adm, err := repo.CreateAdministrator(context.Background(), adm)
	if err != nil {
		t.Fatalf("CreateAdmin() failed: %v", err)
	}
	return adm
}

func CreateCourse(
	t *testing.T,
	repo course.Repository,
	name, facultyName string,
) course.Course {
	t.Helper()

	crs, err := repo.CreateCourse(context.Background(), course.Course{Name: name, FacultyName: facultyName})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateFeedback(
	t *testing.T,
	repo feedback.Repository,
	studentID, courseID string,
	rating int,
	comment string,
	createdAt ...time.Time,
) feedback.Feedback {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	fb, err := repo.CreateFeedback(context.Background(), feedback.Feedback{
		StudentID: studentID,
		CourseID:  courseID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateFeedback() failed: %v", err)
	}
	return fb
}
