package repositories

import (
	"context"

	"campusvoice/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepository interface {
	Insert(ctx context.Context, block *db_models.BlockedUser) error
	Delete(ctx context.Context, studentID, adminID uuid.UUID) (bool, error)
	Exists(ctx context.Context, studentID, adminID uuid.UUID) (bool, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

// Insert is idempotent: re-blocking an already blocked student is a no-op,
// the unique pair index plus DO NOTHING absorbs the conflict.
func (r *blockRepository) Insert(ctx context.Context, block *db_models.BlockedUser) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(block).Error
}

func (r *blockRepository) Delete(ctx context.Context, studentID, adminID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND admin_id = ?", studentID, adminID).
		Delete(&db_models.BlockedUser{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *blockRepository) Exists(ctx context.Context, studentID, adminID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.BlockedUser{}).
		Where("student_id = ? AND admin_id = ?", studentID, adminID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
