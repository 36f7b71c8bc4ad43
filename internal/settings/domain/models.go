// Package domain contains the global engine settings record.
package domain

import (
	"context"
	"time"
)

// Settings is the single global settings row: computation percentages and
// the current USD -> EUR rate snapshot source.
type Settings struct {
	ID                   int64     `gorm:"primaryKey"`
	OfFeePct             float64   `gorm:"not null;default:0"`
	MarginGreenThreshold float64   `gorm:"not null;default:0"`
	MarginYellowLow      float64   `gorm:"not null;default:0"`
	UsdEurRate           float64   `gorm:"not null;default:0"`
	UpdatedAt            time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Settings) TableName() string { return "global_settings" }

// Repository is the read contract for settings.
type Repository interface {
	// Get returns nil when no settings row exists yet.
	Get(ctx context.Context) (*Settings, error)
}

// Service exposes cached settings reads. FxRate never fails: a missing or
// invalid stored rate falls back to the configured default.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	FxRate(ctx context.Context) float64
}
