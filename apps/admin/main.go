package main

import (
	"log"
	"os"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
	auditsvc "github.com/trezcool/maoni/services/audit"
	logsvc "github.com/trezcool/maoni/services/logger"
	"github.com/trezcool/maoni/storage/database"
	sqlxrepos "github.com/trezcool/maoni/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	appLogger := logsvc.NewRollbarLogger(logger, conf)
	appLogger.Enable(!conf.Debug)

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())
	appDB := database.NewDB(db)

	// set up audit trail
	audit, err := auditsvc.NewFileLogger(conf.Audit.LogFile)
	errAndDie(err)
	defer func() { _ = audit.Close() }()

	// start CLI
	cli := commandLine{
		db:      db.DB,
		admSvc:  admin.NewService(appDB, sqlxrepos.NewAdminRepository(db), audit, appLogger),
		crsRepo: sqlxrepos.NewCourseRepository(db),
		audit:   audit,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
