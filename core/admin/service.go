package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
)

var (
	ErrNotFound      = errors.New("administrator not found")
	ErrUsernameTaken = errors.New("an administrator with this username already exists")
)

type (
	Repository interface {
		// CreateAdministrator inserts adm. A unique violation on the username
		// identity key is reported as ErrUsernameTaken.
		CreateAdministrator(ctx context.Context, adm Administrator, exec ...core.DBExecutor) (Administrator, error)
		GetAdministrator(ctx context.Context, filter GetFilter, exec ...core.DBExecutor) (Administrator, error)
		UpdatePassword(ctx context.Context, id string, hash []byte, exec ...core.DBExecutor) error
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

// Provision creates a new Administrator inside one transaction. Used by the
// admin CLI only.
func (svc *Service) Provision(ctx context.Context, username, pwd string) (Administrator, error) {
	adm := Administrator{
		Username:  core.CleanString(username, true /* lower */),
		CreatedAt: time.Now().UTC(),
	}
	if err := adm.SetPassword(pwd); err != nil {
		return Administrator{}, err
	}

	err := core.Atomic(ctx, svc.db, svc.log, func(tx core.DBTransactor) error {
		var err error
		adm, err = svc.repo.CreateAdministrator(ctx, adm, tx)
		return err
	})
	if err != nil {
		if err == ErrUsernameTaken {
			core.Audit(svc.log, svc.audit, fmt.Sprintf("duplicate provisioning attempt for administrator %s", adm.Username))
		} else {
			core.Audit(svc.log, svc.audit, fmt.Sprintf("administrator provisioning failed for %s: %v", adm.Username, err))
		}
		return Administrator{}, err
	}

	core.Audit(svc.log, svc.audit, "administrator provisioned: "+adm.Username)
	return adm, nil
}

// Authenticate verifies the submitted secret against the stored hash. Unknown
// username and hash mismatch are indistinguishable to the caller; storage
// failures propagate unchanged.
func (svc *Service) Authenticate(ctx context.Context, username, pwd string) (Administrator, error) {
	username = core.CleanString(username, true /* lower */)

	adm, err := svc.repo.GetAdministrator(ctx, GetFilter{Username: username})
	if err != nil {
		if err != ErrNotFound {
			core.Audit(svc.log, svc.audit, fmt.Sprintf("admin login error for %s: %v", username, err))
			return Administrator{}, err
		}
		core.Audit(svc.log, svc.audit, "admin login failed: "+username)
		return Administrator{}, core.ErrAuthenticationFailed
	}
	if err = adm.CheckPassword(pwd); err != nil {
		core.Audit(svc.log, svc.audit, "admin login failed: "+username)
		return Administrator{}, core.ErrAuthenticationFailed
	}

	core.Audit(svc.log, svc.audit, "admin login success: "+username)
	return adm, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Administrator, error) {
	return svc.repo.GetAdministrator(ctx, GetFilter{ID: id})
}

// ResetPassword replaces the administrator's secret. Used by the admin CLI only.
func (svc *Service) ResetPassword(ctx context.Context, username, pwd string) error {
	adm, err := svc.repo.GetAdministrator(ctx, GetFilter{Username: core.CleanString(username, true)})
	if err != nil {
		return err
	}
	if err = adm.SetPassword(pwd); err != nil {
		return err
	}
	if err = svc.repo.UpdatePassword(ctx, adm.ID, adm.PasswordHash); err != nil {
		return err
	}
	core.Audit(svc.log, svc.audit, "administrator password reset: "+adm.Username)
	return nil
}
