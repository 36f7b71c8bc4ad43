package settings

import (
	"github.com/agencyhq/backoffice/internal/settings/repository"
	"github.com/agencyhq/backoffice/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings",
	fx.Provide(
		repository.New,
		service.NewService,
	),
)
