package repositories

import (
	"context"
	"errors"

	"campusvoice/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *db_models.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Insert(ctx context.Context, admin *db_models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &admin, nil
}
