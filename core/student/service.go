package student

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
)

var (
	ErrNotFound   = errors.New("student not found")
	ErrEmailTaken = errors.New("a student with this email already exists")
)

type (
	Repository interface {
		// CreateStudent inserts std. A unique violation on the email identity
		// key is reported as ErrEmailTaken; the storage constraint is the
		// authoritative duplicate check.
		CreateStudent(ctx context.Context, std Student, exec ...core.DBExecutor) (Student, error)
		GetStudent(ctx context.Context, filter GetFilter, exec ...core.DBExecutor) (Student, error)
	}

	Service struct {
		db      core.DB
		repo    Repository
		audit   core.AuditLogger
		log     core.Logger
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(db core.DB, repo Repository, audit core.AuditLogger, log core.Logger, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		db:      db,
		repo:    repo,
		audit:   audit,
		log:     log,
		mailSvc: mailSvc,
		conf:    conf,
	}
}

// Register creates a new Student inside one transaction. Duplicate emails are
// detected via the storage uniqueness constraint, not a pre-check: a
// check-then-insert sequence has a race window under concurrent registrations.
func (svc *Service) Register(ctx context.Context, ns NewStudent) (Student, error) {
	std := Student{
		Name:      ns.Name,
		Email:     ns.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := std.SetPassword(ns.Password); err != nil {
		return Student{}, err
	}

	err := core.Atomic(ctx, svc.db, svc.log, func(tx core.DBTransactor) error {
		var err error
		std, err = svc.repo.CreateStudent(ctx, std, tx)
		return err
	})
	if err != nil {
		if err == ErrEmailTaken {
			core.Audit(svc.log, svc.audit, fmt.Sprintf("duplicate registration attempt for %s", ns.Email))
		} else {
			core.Audit(svc.log, svc.audit, fmt.Sprintf("student registration failed for %s: %v", ns.Email, err))
		}
		return Student{}, err
	}

	core.Audit(svc.log, svc.audit, "student registered: "+std.Email)
	svc.sendWelcomeEmail(std)
	return std, nil
}

// Authenticate verifies the submitted secret against the stored hash. Unknown
// email and hash mismatch are indistinguishable to the caller; storage
// failures propagate unchanged.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Student, error) {
	email = core.CleanString(email, true /* lower */)

	std, err := svc.repo.GetStudent(ctx, GetFilter{Email: email})
	if err != nil {
		if err != ErrNotFound {
			core.Audit(svc.log, svc.audit, fmt.Sprintf("student login error for %s: %v", email, err))
			return Student{}, err
		}
		core.Audit(svc.log, svc.audit, "student login failed: "+email)
		return Student{}, core.ErrAuthenticationFailed
	}
	if err = std.CheckPassword(pwd); err != nil {
		core.Audit(svc.log, svc.audit, "student login failed: "+email)
		return Student{}, core.ErrAuthenticationFailed
	}

	core.Audit(svc.log, svc.audit, "student login success: "+email)
	return std, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudent(ctx, GetFilter{ID: id})
}

func (svc *Service) sendWelcomeEmail(std Student) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: std.Name, Address: std.Email}},
		Subject: "Welcome to " + svc.conf.AppName,
		Body: fmt.Sprintf(
			"Hi %s,\r\n\r\nYour account has been created. "+
				"You can now log in and leave feedback for your courses.\r\n", std.Name),
	})
}
