package agency

import (
	"github.com/agencyhq/backoffice/internal/agency/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("agency",
	fx.Provide(repository.New),
)
