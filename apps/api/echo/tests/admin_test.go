package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/trezcool/maoni/core/feedback"
	testutil "github.com/trezcool/maoni/tests"
)

func Test_adminApi_login(t *testing.T) {
	db.Reset()

	testutil.CreateAdmin(t, admRepo, "root", "mdr")

	body := func(uname, pwd string) []byte {
		return marchallObj(t, map[string]string{"username": uname, "password": pwd})
	}

	tests := []httpTest{
		{name: "missing fields", body: []byte("{}"), wantCode: http.StatusBadRequest},
		{name: "unknown username", body: body("lol", "mdr"), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"})},
		{name: "wrong password", body: body("root", "nope"), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"})},
		{name: "ok", body: body("root", "mdr"), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/admin/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var resp struct {
					Token string `json:"token"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshalling response: %v", err)
				}
				if resp.Token == "" {
					t.Error("empty token")
				}
			}
		})
	}
}

func Test_adminApi_feedbackReport(t *testing.T) {
	db.Reset()

	std := testutil.CreateStudent(t, stdRepo, "Jane Doe", "jane@test.cd", "S3cret!pwd")
	adm := testutil.CreateAdmin(t, admRepo, "root", "mdr")
	algo := testutil.CreateCourse(t, crsRepo, "Algorithms", "Engineering")
	calc := testutil.CreateCourse(t, crsRepo, "Calculus", "Mathematics")

	now := time.Now().UTC()
	testutil.CreateFeedback(t, fbRepo, std.ID, algo.ID, 5, "great", now.Add(-time.Hour))
	testutil.CreateFeedback(t, fbRepo, std.ID, calc.ID, 2, "meh", now)

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Admin required", token: getStudentToken(t, std), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "ok", token: getAdminToken(t, adm), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/admin/feedback-report", tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var rows []feedback.ReportRow
				if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
					t.Fatalf("unmarshalling response: %v", err)
				}
				if len(rows) != 2 {
					t.Fatalf("got %d rows, want 2", len(rows))
				}
				// most recent first, joined with student and course details
				if rows[0].CourseName != "Calculus" || rows[1].CourseName != "Algorithms" {
					t.Errorf("rows out of order: %s, %s", rows[0].CourseName, rows[1].CourseName)
				}
				if rows[0].StudentName != "Jane Doe" || rows[1].FacultyName != "Engineering" {
					t.Errorf("incomplete join: %+v", rows)
				}
			}
		})
	}
}

func Test_adminApi_auditLog(t *testing.T) {
	db.Reset()

	std := testutil.CreateStudent(t, stdRepo, "Jane Doe", "jane@test.cd", "S3cret!pwd")
	adm := testutil.CreateAdmin(t, admRepo, "root", "mdr")

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Admin required", token: getStudentToken(t, std), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "ok", token: getAdminToken(t, adm), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/admin/audit-log", tt.token)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK {
				if cd := rec.Header().Get("Content-Disposition"); cd == "" {
					t.Error("missing Content-Disposition header")
				}
			}
		})
	}
}
