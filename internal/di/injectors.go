//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"tripline/internal"
	"tripline/internal/cli"
	"tripline/internal/providers"
	"tripline/internal/services"
	"tripline/internal/storage"
	"tripline/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,

		storage.NewFileStore,
		services.NewTripService,
		services.NewActivityService,
		services.NewBudgetService,
		services.NewDestinationService,
		cli.NewShell,
		internal.NewApp,
	)

	return nil, nil
}
