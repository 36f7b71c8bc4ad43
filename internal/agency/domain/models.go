// Package domain contains the monthly agency revenue totals that back
// manager and VA percentage payouts. Read-only input to the engine.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Revenue is one record per month, EUR denominated.
type Revenue struct {
	ID                     snowflake.ID `gorm:"primaryKey"`
	MonthKey               string       `gorm:"type:text;not null;uniqueIndex"`
	ChattingAmountEUR      float64      `gorm:"not null;default:0"`
	GunzoAmountEUR         float64      `gorm:"not null;default:0"`
	ChattingMsgsTipsNetEUR float64      `gorm:"not null;default:0"`
	GunzoMsgsTipsNetEUR    float64      `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Revenue) TableName() string { return "agency_revenues" }

// Repository is the read contract for agency revenue.
type Repository interface {
	// GetByMonth returns nil when no record exists for the month.
	GetByMonth(ctx context.Context, monthKey string) (*Revenue, error)
}
