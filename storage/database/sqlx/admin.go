package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
)

type adminRepository struct {
	db *sqlx.DB
}

var _ admin.Repository = (*adminRepository)(nil) // interface compliance check

func NewAdminRepository(db *sqlx.DB) *adminRepository {
	return &adminRepository{db: db}
}

func (repo adminRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.db
}

func (repo adminRepository) CreateAdministrator(ctx context.Context, adm admin.Administrator, exec ...core.DBExecutor) (admin.Administrator, error) {
	adm.ID = uuid.New().String()

	const q = `INSERT INTO administrator (id, username, password_hash, created_at)
	           VALUES ($1, $2, $3, $4)`
	if _, err := repo.getExec(exec).ExecContext(ctx, q, adm.ID, adm.Username, adm.PasswordHash, adm.CreatedAt); err != nil {
		return admin.Administrator{}, trapDuplicateErr(err, admin.ErrUsernameTaken, "inserting administrator")
	}
	return adm, nil
}

func (repo adminRepository) GetAdministrator(ctx context.Context, filter admin.GetFilter, exec ...core.DBExecutor) (admin.Administrator, error) {
	const cols = `SELECT id, username, password_hash, created_at FROM administrator`

	var q, arg string
	switch {
	case filter.ID != "":
		if _, err := uuid.Parse(filter.ID); err != nil {
			return admin.Administrator{}, admin.ErrNotFound
		}
		q, arg = cols+` WHERE id = $1`, filter.ID
	case filter.Username != "":
		q, arg = cols+` WHERE username = $1`, filter.Username
	default:
		return admin.Administrator{}, admin.ErrNotFound
	}

	var adm admin.Administrator
	row := repo.getExec(exec).QueryRowContext(ctx, q, arg)
	if err := row.Scan(&adm.ID, &adm.Username, &adm.PasswordHash, &adm.CreatedAt); err != nil {
		return admin.Administrator{}, trapNoRowsErr(err, admin.ErrNotFound, "finding administrator")
	}
	return adm, nil
}

func (repo adminRepository) UpdatePassword(ctx context.Context, id string, hash []byte, exec ...core.DBExecutor) error {
	const q = `UPDATE administrator SET password_hash = $2 WHERE id = $1`
	res, err := repo.getExec(exec).ExecContext(ctx, q, id, hash)
	if err != nil {
		return errors.Wrap(err, "updating administrator password")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return admin.ErrNotFound
	}
	return nil
}
