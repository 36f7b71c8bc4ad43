package payout

import (
	"github.com/agencyhq/backoffice/internal/payout/repository"
	"github.com/agencyhq/backoffice/internal/payout/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payout.service",
	fx.Provide(
		service.NewService,
		repository.NewUpserter,
	),
)
