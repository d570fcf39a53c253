package identity_fx

import (
	"campusvoice/internal/repositories"
	"campusvoice/internal/services"
	mem "campusvoice/pkg/memcache"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideStudentRepo, provideAdminRepo, provideIdentityService)

func provideStudentRepo(db *gorm.DB) repositories.StudentRepository {
	return repositories.NewStudentRepository(db)
}

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideIdentityService(
	studentRepo repositories.StudentRepository,
	adminRepo repositories.AdminRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.IdentityServiceInterface {
	return services.NewIdentityService(studentRepo, adminRepo, mailService, resetTokens)
}
