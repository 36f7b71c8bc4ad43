package pnl

import (
	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
	"github.com/agencyhq/backoffice/internal/pnl/repository"
	"go.uber.org/fx"
)

func provideReadContract(r *repository.Repository) pnldomain.Repository { return r }

var Module = fx.Module("pnl",
	fx.Provide(
		repository.New,
		provideReadContract,
	),
)
