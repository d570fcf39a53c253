package block_fx

import (
	"campusvoice/internal/repositories"
	"campusvoice/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideBlockRepo, provideBlockService)

func provideBlockRepo(db *gorm.DB) repositories.BlockRepository {
	return repositories.NewBlockRepository(db)
}

func provideBlockService(blockRepo repositories.BlockRepository) services.BlockServiceInterface {
	return services.NewBlockService(blockRepo)
}
