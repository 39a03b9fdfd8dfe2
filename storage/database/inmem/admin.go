package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
)

type adminRepository struct {
	db *DB
}

var _ admin.Repository = (*adminRepository)(nil)

func NewAdminRepository(db *DB) *adminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) CreateAdministrator(ctx context.Context, adm admin.Administrator, exec ...core.DBExecutor) (admin.Administrator, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for _, a := range repo.db.admins {
		if a.Username == adm.Username {
			return admin.Administrator{}, admin.ErrUsernameTaken
		}
	}
	adm.ID = uuid.New().String()
	repo.db.admins[adm.ID] = &adm
	return adm, nil
}

func (repo *adminRepository) GetAdministrator(ctx context.Context, filter admin.GetFilter, exec ...core.DBExecutor) (admin.Administrator, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if filter.ID != "" {
		if adm, ok := repo.db.admins[filter.ID]; ok {
			return *adm, nil
		}
		return admin.Administrator{}, admin.ErrNotFound
	}
	if filter.Username != "" {
		for _, adm := range repo.db.admins {
			if adm.Username == filter.Username {
				return *adm, nil
			}
		}
	}
	return admin.Administrator{}, admin.ErrNotFound
}

func (repo *adminRepository) UpdatePassword(ctx context.Context, id string, hash []byte, exec ...core.DBExecutor) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	adm, ok := repo.db.admins[id]
	if !ok {
		return admin.ErrNotFound
	}
	adm.PasswordHash = hash
	return nil
}
