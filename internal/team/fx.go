package team

import (
	"github.com/agencyhq/backoffice/internal/team/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("team",
	fx.Provide(repository.New),
)
