package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EngineConfig carries the computation defaults that operators tune without
// a redeploy: the OF fee, margin thresholds and the fallback FX rate used
// when no snapshot rate is available.
type EngineConfig struct {
	OfFeePct             float64 `mapstructure:"ofFeePct"`
	MarginGreenThreshold float64 `mapstructure:"marginGreenThreshold"`
	MarginYellowLow      float64 `mapstructure:"marginYellowLow"`
	DefaultFxRate        float64 `mapstructure:"defaultFxRate"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		OfFeePct:             0.20,
		MarginGreenThreshold: 0.50,
		MarginYellowLow:      0.30,
		DefaultFxRate:        0.92,
	}
}

type EngineConfigHolder struct {
	current atomic.Value // holds EngineConfig
}

func NewEngineConfigHolder() (*EngineConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("engine")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/backoffice/config")
	v.AddConfigPath("/etc/backoffice")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultEngineConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		v.SetDefault("engine.ofFeePct", defaults.OfFeePct)
		v.SetDefault("engine.marginGreenThreshold", defaults.MarginGreenThreshold)
		v.SetDefault("engine.marginYellowLow", defaults.MarginYellowLow)
		v.SetDefault("engine.defaultFxRate", defaults.DefaultFxRate)
	}

	var cfg EngineConfig
	if err := v.UnmarshalKey("engine", &cfg); err != nil {
		return nil, err
	}
	if err := validateEngineConfig(cfg); err != nil {
		return nil, err
	}

	holder := &EngineConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated EngineConfig
		if err := v.UnmarshalKey("engine", &updated); err != nil {
			log.Printf("[engine-config] reload failed: %v", err)
			return
		}
		if err := validateEngineConfig(updated); err != nil {
			log.Printf("[engine-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[engine-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticEngineConfigHolder returns a holder pinned to cfg, with no file
// watching. Callers that manage reloads themselves, and tests, use this.
func NewStaticEngineConfigHolder(cfg EngineConfig) *EngineConfigHolder {
	holder := &EngineConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *EngineConfigHolder) Get() EngineConfig {
	return h.current.Load().(EngineConfig)
}

func validateEngineConfig(cfg EngineConfig) error {
	if cfg.OfFeePct < 0 || cfg.OfFeePct >= 1 {
		return errors.New("engine.ofFeePct must be in [0, 1)")
	}
	if cfg.MarginYellowLow > cfg.MarginGreenThreshold {
		return errors.New("engine.marginYellowLow cannot exceed marginGreenThreshold")
	}
	if cfg.DefaultFxRate <= 0 {
		return errors.New("engine.defaultFxRate must be positive")
	}
	return nil
}
