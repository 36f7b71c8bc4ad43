package affiliate

import (
	"github.com/agencyhq/backoffice/internal/affiliate/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("affiliate",
	fx.Provide(repository.New),
)
