// Package service serves global settings through a short-lived
// read-through cache so a month's computation does not hammer the store.
package service

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/agencyhq/backoffice/internal/cache"
	"github.com/agencyhq/backoffice/internal/clock"
	"github.com/agencyhq/backoffice/internal/config"
	settingsdomain "github.com/agencyhq/backoffice/internal/settings/domain"
)

const settingsTTL = 5 * time.Minute

const cacheKey = "global"

type Params struct {
	fx.In

	Log    *zap.Logger
	Clock  clock.Clock
	Repo   settingsdomain.Repository
	Engine *config.EngineConfigHolder
}

type Service struct {
	log    *zap.Logger
	repo   settingsdomain.Repository
	engine *config.EngineConfigHolder
	cached cache.Cache[string, settingsdomain.Settings]
}

func NewService(p Params) settingsdomain.Service {
	return &Service{
		log:    p.Log.Named("settings.service"),
		repo:   p.Repo,
		engine: p.Engine,
		cached: cache.NewTTLCache[string, settingsdomain.Settings](p.Clock),
	}
}

func (s *Service) Get(ctx context.Context) (settingsdomain.Settings, error) {
	if cached, ok := s.cached.Get(cacheKey); ok {
		return cached, nil
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return settingsdomain.Settings{}, err
	}

	settings := s.withDefaults(row)
	s.cached.Set(cacheKey, settings, settingsTTL)
	return settings, nil
}

// FxRate returns the stored USD -> EUR rate, or the configured default when
// the stored rate is missing or unusable. A bad stored rate is a data
// degradation, not a failure.
func (s *Service) FxRate(ctx context.Context) float64 {
	settings, err := s.Get(ctx)
	if err != nil || settings.UsdEurRate <= 0 {
		fallback := s.engine.Get().DefaultFxRate
		if err != nil {
			s.log.Warn("falling back to default fx rate", zap.Error(err), zap.Float64("rate", fallback))
		}
		return fallback
	}
	return settings.UsdEurRate
}

// withDefaults fills unset fields from the engine config so a missing or
// partial settings row still yields a usable computation.
func (s *Service) withDefaults(row *settingsdomain.Settings) settingsdomain.Settings {
	defaults := s.engine.Get()
	out := settingsdomain.Settings{
		OfFeePct:             defaults.OfFeePct,
		MarginGreenThreshold: defaults.MarginGreenThreshold,
		MarginYellowLow:      defaults.MarginYellowLow,
		UsdEurRate:           defaults.DefaultFxRate,
	}
	if row == nil {
		return out
	}
	if row.OfFeePct > 0 {
		out.OfFeePct = row.OfFeePct
	}
	if row.MarginGreenThreshold > 0 {
		out.MarginGreenThreshold = row.MarginGreenThreshold
	}
	if row.MarginYellowLow > 0 {
		out.MarginYellowLow = row.MarginYellowLow
	}
	if row.UsdEurRate > 0 {
		out.UsdEurRate = row.UsdEurRate
	}
	return out
}
