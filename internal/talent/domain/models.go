// Package domain contains the talent (model) records and the pluggable
// deal evaluation contract the payout engine delegates to.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type CompensationType string

const (
	CompensationSalary     CompensationType = "Salary"
	CompensationPercentage CompensationType = "Percentage"
	CompensationHybrid     CompensationType = "Hybrid"
	CompensationTieredDeal CompensationType = "Tiered deal (threshold)"
)

// Model is one talent. Externally owned; only read by the engine.
type Model struct {
	ID               snowflake.ID     `gorm:"primaryKey"`
	Name             string           `gorm:"type:text;not null"`
	CompensationType CompensationType `gorm:"type:text;not null"`
	CreatorPayoutPct float64          `gorm:"not null;default:0"`
	SalaryUSD        float64          `gorm:"not null;default:0"`

	// Tiered deal: flat payout below the threshold, flat plus a share of
	// the excess above it.
	TierThresholdUSD float64 `gorm:"not null;default:0"`
	TierFlatUSD      float64 `gorm:"not null;default:0"`
	TierPctAbove     float64 `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Model) TableName() string { return "models" }

// DealEvaluator computes a talent's payout for a month from that month's
// net revenue and the talent's compensation configuration. Implementations
// are swapped via DI; the engine never inspects compensation fields itself.
type DealEvaluator interface {
	Evaluate(netRevenueUSD float64, model Model, fxRate float64) (float64, error)
}

// Repository is the read contract for talent records.
type Repository interface {
	List(ctx context.Context) ([]Model, error)
}

var ErrUnknownCompensationType = errors.New("unknown_compensation_type")
