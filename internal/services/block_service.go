package services

import (
	"context"
	"log"

	"campusvoice/internal/models/db_models"
	"campusvoice/internal/repositories"
	"campusvoice/pkg/utils"

	"github.com/google/uuid"
)

type BlockServiceInterface interface {
	BlockStudent(ctx context.Context, adminID, studentID string) error
	UnblockStudent(ctx context.Context, adminID, studentID string) error
}

type BlockService struct {
	blockRepo repositories.BlockRepository
}

func NewBlockService(blockRepo repositories.BlockRepository) BlockServiceInterface {
	return &BlockService{blockRepo: blockRepo}
}

// BlockStudent is idempotent; blocking an already blocked student succeeds
// without adding a second pair row.
func (s *BlockService) BlockStudent(ctx context.Context, adminID, studentID string) error {
	aid, err := uuid.Parse(adminID)
	if err != nil {
		return utils.ErrInvalidID
	}
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return utils.ErrInvalidID
	}

	block := &db_models.BlockedUser{StudentID: sid, AdminID: aid}
	if err := s.blockRepo.Insert(ctx, block); err != nil {
		log.Printf("Error inserting block record: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// UnblockStudent errors when no block record matched; unblocking a student
// who was never blocked is a caller mistake, not a no-op.
func (s *BlockService) UnblockStudent(ctx context.Context, adminID, studentID string) error {
	aid, err := uuid.Parse(adminID)
	if err != nil {
		return utils.ErrInvalidID
	}
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return utils.ErrInvalidID
	}

	deleted, err := s.blockRepo.Delete(ctx, sid, aid)
	if err != nil {
		log.Printf("Error deleting block record: %v", err)
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrBlockNotFound
	}
	return nil
}
