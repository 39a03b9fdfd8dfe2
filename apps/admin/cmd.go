package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
	"github.com/trezcool/maoni/core/course"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db      *sql.DB // for migrations only
	admSvc  *admin.Service
	crsRepo course.Repository
	audit   core.AuditLogger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addadmin -username USERNAME - create an administrator account (password prompted)")
	fmt.Println("  resetpassword -username USERNAME - reset an administrator's password (password prompted)")
	fmt.Println("  addcourse -name NAME -faculty FACULTY - register a course")
	fmt.Println("  migrate COMMAND [args] - run database migrations (up, down, status, ...)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addAdminCmd := flag.NewFlagSet("addadmin", flag.ExitOnError)
	addAdminUname := addAdminCmd.String("username", "", "The administrator's username. The password will be prompted next.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordUname := resetPasswordCmd.String("username", "", "The administrator's username. The password will be prompted next.")

	addCourseCmd := flag.NewFlagSet("addcourse", flag.ExitOnError)
	addCourseName := addCourseCmd.String("name", "", "The course name.")
	addCourseFaculty := addCourseCmd.String("faculty", "", "The name of the faculty offering the course.")

	switch args[1] {
	case "addadmin":
		if err := addAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addAdminUname == "" {
			addAdminCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			addAdminCmd.Usage()
			return errHelp
		}
		return cli.addAdmin(*addAdminUname, pwd)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordUname == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordUname, pwd)
	case "addcourse":
		if err := addCourseCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addCourseName == "" || *addCourseFaculty == "" {
			addCourseCmd.Usage()
			return errHelp
		}
		return cli.addCourse(*addCourseName, *addCourseFaculty)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
