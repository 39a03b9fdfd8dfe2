package student_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/maoni/core/student"
)

func TestNewStudent_Validate(t *testing.T) {
	newStd := func(pwd, confirm string) student.NewStudent {
		return student.NewStudent{
			Name:            "Jane Doe",
			Email:           "jane@test.cd",
			Password:        pwd,
			PasswordConfirm: confirm,
		}
	}

	tests := []struct {
		name    string
		ns      student.NewStudent
		wantTag string // empty means valid
	}{
		{name: "ok", ns: newStd("S3cret!pwd", "S3cret!pwd")},
		{name: "missing name", ns: student.NewStudent{Email: "jane@test.cd", Password: "S3cret!pwd", PasswordConfirm: "S3cret!pwd"}, wantTag: "required"},
		{name: "bad email", ns: student.NewStudent{Name: "Jane", Email: "lol", Password: "S3cret!pwd", PasswordConfirm: "S3cret!pwd"}, wantTag: "email"},
		{name: "confirm mismatch", ns: newStd("S3cret!pwd", "S3cret!pw"), wantTag: "eqfield"},
		{name: "too short", ns: newStd("S3c!pw", "S3c!pw"), wantTag: "pwdminlen"},
		{name: "whitespace", ns: newStd("S3cret! pwd", "S3cret! pwd"), wantTag: "pwdnospace"},
		{name: "all numeric", ns: newStd("12345678", "12345678"), wantTag: "pwdnotallnum"},
		{name: "no complexity", ns: newStd("secretpwd", "secretpwd"), wantTag: "pwdcplx"},
		{name: "similar to email", ns: newStd("Jane@Test.cd1", "Jane@Test.cd1"), wantTag: "pwdtoosim"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ns.Validate()
			if tt.wantTag == "" {
				if err != nil {
					t.Fatalf("Validate() failed: %v", err)
				}
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("Validate() error = %v, want validator.ValidationErrors", err)
			}
			for _, vErr := range vErrs {
				if vErr.Tag() == tt.wantTag {
					return
				}
			}
			t.Errorf("no error with tag %q in %v", tt.wantTag, vErrs)
		})
	}
}

func TestNewStudent_Validate_cleansInput(t *testing.T) {
	ns := student.NewStudent{
		Name:            "  Jane Doe ",
		Email:           " Jane@Test.CD ",
		Password:        "S3cret!pwd",
		PasswordConfirm: "S3cret!pwd",
	}
	if err := ns.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if ns.Name != "Jane Doe" {
		t.Errorf("Name = %q", ns.Name)
	}
	if ns.Email != strings.ToLower("jane@test.cd") {
		t.Errorf("Email = %q", ns.Email)
	}
}
