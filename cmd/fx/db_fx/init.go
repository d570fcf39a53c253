package db_fx

import (
	"context"

	"campusvoice/internal/infra"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	infra.NewDatabase, provideDB)

func provideDB(lc fx.Lifecycle, database *infra.Database) *gorm.DB {
	db := database.MustConnect()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return database.Close()
		},
	})

	return db
}
