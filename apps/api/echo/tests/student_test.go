package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/trezcool/maoni/core/student"
	testutil "github.com/trezcool/maoni/tests"
)

func Test_studentApi_register(t *testing.T) {
	db.Reset()

	body := func(name, email, pwd, confirm string) []byte {
		return marchallObj(t, map[string]string{
			"name":             name,
			"email":            email,
			"password":         pwd,
			"password_confirm": confirm,
		})
	}

	tests := []httpTest{
		{name: "empty body", body: []byte("{}"), wantCode: http.StatusBadRequest},
		{name: "bad email", body: body("Jane Doe", "lol", "S3cret!pwd", "S3cret!pwd"), wantCode: http.StatusBadRequest},
		{name: "confirm mismatch", body: body("Jane Doe", "jane@test.cd", "S3cret!pwd", "S3cret!pw"), wantCode: http.StatusBadRequest},
		{name: "weak password", body: body("Jane Doe", "jane@test.cd", "password", "password"), wantCode: http.StatusBadRequest},
		{name: "ok", body: body("Jane Doe", "jane@test.cd", "S3cret!pwd", "S3cret!pwd"), wantCode: http.StatusCreated},
		{
			name: "duplicate email", body: body("Jane Impostor", "jane@test.cd", "S3cret!pwd", "S3cret!pwd"),
			wantCode: http.StatusConflict, wantData: marchallObj(t, httpErr{Error: student.ErrEmailTaken.Error()}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/students/register", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusCreated {
				var std student.Student
				if err := json.Unmarshal(rec.Body.Bytes(), &std); err != nil {
					t.Fatalf("unmarshalling response: %v", err)
				}
				if std.ID == "" || std.Email != "jane@test.cd" {
					t.Errorf("unexpected student: %+v", std)
				}
				if strings.Contains(rec.Body.String(), "password") {
					t.Error("response leaks password data")
				}
			}
		})
	}
}

func Test_studentApi_login(t *testing.T) {
	db.Reset()

	testutil.CreateStudent(t, stdRepo, "Jane Doe", "jane@test.cd", "S3cret!pwd")

	body := func(email, pwd string) []byte {
		return marchallObj(t, map[string]string{"email": email, "password": pwd})
	}

	tests := []httpTest{
		{name: "missing fields", body: []byte("{}"), wantCode: http.StatusBadRequest},
		{name: "unknown email", body: body("lol@test.cd", "S3cret!pwd"), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"})},
		{name: "wrong password", body: body("jane@test.cd", "nope"), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"})},
		{name: "ok", body: body("jane@test.cd", "S3cret!pwd"), wantCode: http.StatusOK},
		{name: "email is case-insensitive", body: body("Jane@Test.CD", "S3cret!pwd"), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/students/login", tt.body)
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

func Test_studentApi_me(t *testing.T) {
	db.Reset()

	std := testutil.CreateStudent(t, stdRepo, "Jane Doe", "jane@test.cd", "S3cret!pwd")
	adm := testutil.CreateAdmin(t, admRepo, "root", "mdr")

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Student required", token: getAdminToken(t, adm), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "ok", token: getStudentToken(t, std), wantCode: http.StatusOK, wantData: marchallObj(t, std)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/students/me", tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_refreshToken(t *testing.T) {
	db.Reset()

	std := testutil.CreateStudent(t, stdRepo, "Jane Doe", "jane@test.cd", "S3cret!pwd")

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "ok", token: getStudentToken(t, std), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/students/token-refresh", tt.token)
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
