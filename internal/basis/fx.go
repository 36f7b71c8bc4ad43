package basis

import (
	"github.com/agencyhq/backoffice/internal/basis/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("basis",
	fx.Provide(repository.New),
)
