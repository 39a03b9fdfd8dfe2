package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"testing"

	"github.com/trezcool/maoni/core/admin"
	"github.com/trezcool/maoni/core/course"
	auditsvc "github.com/trezcool/maoni/services/audit"
	logsvc "github.com/trezcool/maoni/services/logger"
	inmemdb "github.com/trezcool/maoni/storage/database/inmem"
	testutil "github.com/trezcool/maoni/tests"
)

var (
	admRepo admin.Repository
	crsRepo course.Repository
)

func setup(t *testing.T) *commandLine {
	logger = log.New(os.Stdout, "TEST : ", log.LstdFlags)

	// set up DB & repos
	db := inmemdb.NewDB()
	admRepo = inmemdb.NewAdminRepository(db)
	crsRepo = inmemdb.NewCourseRepository(db)

	audit := auditsvc.NewCaptureLogger()
	appLogger := logsvc.NewTestLogger(logger)

	// start CLI
	return &commandLine{
		admSvc:  admin.NewService(db, admRepo, audit, appLogger),
		crsRepo: crsRepo,
		audit:   audit,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	gooseRunFunc = func(command string, db *sql.DB, fsys fs.FS, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "feedback", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}

func Test_commandLine_addAdmin(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addadmin"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"addadmin", "-username", "root"}, wantErr: errHelp},
		{name: "create", args: []string{"addadmin", "-username", "root"}, extra: extra{pwd: "mdr"}},
		{name: "duplicate username", args: []string{"addadmin", "-username", "root"}, extra: extra{pwd: "mdr"}, wantErr: admin.ErrUsernameTaken},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				adm, err := admRepo.GetAdministrator(context.Background(), admin.GetFilter{Username: "root"})
				if err != nil {
					t.Fatalf("GetAdministrator() failed: %v", err)
				}
				if err = adm.CheckPassword("mdr"); err != nil {
					t.Error("stored hash does not match the password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	adm := testutil.CreateAdmin(t, admRepo, "root", "mdr")

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"resetpassword", "-username", "root"}, wantErr: errHelp},
		{name: "administrator not found", args: []string{"resetpassword", "-username", "lol"}, extra: extra{pwd: "lol"}, wantErr: admin.ErrNotFound},
		{name: "reset", args: []string{"resetpassword", "-username", adm.Username}, extra: extra{pwd: "lmao"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				refreshed, err := admRepo.GetAdministrator(context.Background(), admin.GetFilter{ID: adm.ID})
				if err != nil {
					t.Fatalf("GetAdministrator() failed: %v", err)
				}
				if bytes.Equal(refreshed.PasswordHash, adm.PasswordHash) {
					t.Error("failed to update new password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_addCourse(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no args", args: []string{"addcourse"}, wantErr: errHelp},
		{name: "name but no faculty", args: []string{"addcourse", "-name", "Algorithms"}, wantErr: errHelp},
		{name: "faculty but no name", args: []string{"addcourse", "-faculty", "Engineering"}, wantErr: errHelp},
		{name: "create", args: []string{"addcourse", "-name", "Algorithms", "-faculty", "Engineering"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				courses, err := crsRepo.QueryAllCourses(context.Background())
				if err != nil {
					t.Fatalf("QueryAllCourses() failed: %v", err)
				}
				if len(courses) != 1 || courses[0].Name != "Algorithms" {
					t.Errorf("courses = %v", courses)
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
