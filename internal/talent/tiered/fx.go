package tiered

import (
	"go.uber.org/fx"
)

var Module = fx.Module("talent.tiered",
	fx.Provide(NewEvaluator),
)
