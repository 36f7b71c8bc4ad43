package talent

import (
	"github.com/agencyhq/backoffice/internal/talent/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("talent",
	fx.Provide(repository.New),
)
