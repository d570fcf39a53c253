package services

import (
	"context"
	"errors"
	"log"
	"time"

	"campusvoice/internal/models/db_models"
	"campusvoice/internal/models/request_models"
	"campusvoice/internal/repositories"
	mem "campusvoice/pkg/memcache"
	"campusvoice/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type IdentityServiceInterface interface {
	RegisterStudent(ctx context.Context, req request_models.SignUpRequest) (uuid.UUID, error)
	RegisterAdmin(ctx context.Context, req request_models.SignUpRequest) (uuid.UUID, error)
	Login(ctx context.Context, req request_models.LoginRequest, role string) (string, error)
	ChangePassword(ctx context.Context, studentID, oldPassword, newPassword string) error
	SetPhone(ctx context.Context, studentID, phone string) error
	SetDateOfBirth(ctx context.Context, studentID, dob string) error
	SetAddress(ctx context.Context, studentID, address string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type IdentityService struct {
	studentRepo repositories.StudentRepository
	adminRepo   repositories.AdminRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewIdentityService(
	studentRepo repositories.StudentRepository,
	adminRepo repositories.AdminRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) IdentityServiceInterface {
	return &IdentityService{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (s *IdentityService) RegisterStudent(ctx context.Context, req request_models.SignUpRequest) (uuid.UUID, error) {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return uuid.Nil, err
	}
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return uuid.Nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	student := &db_models.Student{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return uuid.Nil, translateInsertError(err)
	}

	return student.ID, nil
}

func (s *IdentityService) RegisterAdmin(ctx context.Context, req request_models.SignUpRequest) (uuid.UUID, error) {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return uuid.Nil, err
	}
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return uuid.Nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	admin := &db_models.Admin{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := s.adminRepo.Insert(ctx, admin); err != nil {
		return uuid.Nil, translateInsertError(err)
	}

	return admin.ID, nil
}

// Login authenticates against the collection the role selects. A missing
// account and a wrong password come back as the same error on purpose, so the
// response does not reveal which one it was.
func (s *IdentityService) Login(ctx context.Context, req request_models.LoginRequest, role string) (string, error) {
	var (
		id   uuid.UUID
		hash string
	)

	switch role {
	case utils.RoleStudent:
		student, err := s.studentRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			log.Printf("Error looking up student by email: %v", err)
			return "", utils.ErrDatabaseError
		}
		if student == nil {
			return "", utils.ErrInvalidCredentials
		}
		id, hash = student.ID, student.PasswordHash
	case utils.RoleAdmin:
		admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			log.Printf("Error looking up admin by email: %v", err)
			return "", utils.ErrDatabaseError
		}
		if admin == nil {
			return "", utils.ErrInvalidCredentials
		}
		id, hash = admin.ID, admin.PasswordHash
	default:
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(hash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(id, role)
	if err != nil {
		log.Printf("Error creating token: %v", err)
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (s *IdentityService) ChangePassword(ctx context.Context, studentID, oldPassword, newPassword string) error {
	id, err := uuid.Parse(studentID)
	if err != nil {
		return utils.ErrInvalidID
	}

	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error looking up student: %v", err)
		return utils.ErrDatabaseError
	}
	if student == nil {
		return utils.ErrStudentNotFound
	}

	if err := utils.ComparePasswords(student.PasswordHash, oldPassword); err != nil {
		return utils.ErrIncorrectPassword
	}
	if err := utils.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return utils.ErrDatabaseError
	}

	return s.updateStudent(ctx, id, map[string]interface{}{"password_hash": hashed})
}

func (s *IdentityService) SetPhone(ctx context.Context, studentID, phone string) error {
	id, err := uuid.Parse(studentID)
	if err != nil {
		return utils.ErrInvalidID
	}
	if err := utils.ValidatePhone(phone); err != nil {
		return err
	}
	return s.updateStudent(ctx, id, map[string]interface{}{"phone": phone})
}

func (s *IdentityService) SetDateOfBirth(ctx context.Context, studentID, dob string) error {
	id, err := uuid.Parse(studentID)
	if err != nil {
		return utils.ErrInvalidID
	}
	if err := utils.ValidateISODate(dob); err != nil {
		return err
	}
	return s.updateStudent(ctx, id, map[string]interface{}{"date_of_birth": dob})
}

func (s *IdentityService) SetAddress(ctx context.Context, studentID, address string) error {
	id, err := uuid.Parse(studentID)
	if err != nil {
		return utils.ErrInvalidID
	}
	return s.updateStudent(ctx, id, map[string]interface{}{"address": address})
}

// ForgotPassword always reports success to the caller; whether the email
// exists stays private. When it does exist, a single-use token goes out by
// mail and into the in-memory store.
func (s *IdentityService) ForgotPassword(ctx context.Context, email string) error {
	student, err := s.studentRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error looking up student by email: %v", err)
		return utils.ErrDatabaseError
	}
	if student == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		log.Printf("Error generating reset token: %v", err)
		return utils.ErrDatabaseError
	}
	s.resetTokens.Set(token, student.Email, resetTokenTTL)

	if err := s.mailService.SendPasswordResetEmail(student.Email, token); err != nil {
		log.Printf("Error sending reset email: %v", err)
	}
	return nil
}

func (s *IdentityService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := s.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidToken
	}
	if err := utils.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	student, err := s.studentRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error looking up student by email: %v", err)
		return utils.ErrDatabaseError
	}
	if student == nil {
		return utils.ErrStudentNotFound
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return utils.ErrDatabaseError
	}

	return s.updateStudent(ctx, student.ID, map[string]interface{}{"password_hash": hashed})
}

func (s *IdentityService) updateStudent(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	found, err := s.studentRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		log.Printf("Error updating student: %v", err)
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrStudentNotFound
	}
	return nil
}

// translateInsertError maps a unique-index violation to the duplicate-identity
// error; everything else is logged and surfaced as a database error.
func translateInsertError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrEmailTaken
	}
	log.Printf("Unexpected error during insertion: %v", err)
	return utils.ErrDatabaseError
}
