// Package domain contains revenue-share deals between affiliators and
// talent.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Basis string

const (
	BasisNet   Basis = "net"
	BasisGross Basis = "gross"
)

// ModelDeal grants an affiliator a percentage of one talent's revenue.
// StartMonth/EndMonth are inclusive YYYY-MM bounds; empty means open.
type ModelDeal struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	AffiliatorID snowflake.ID `gorm:"not null;index"`
	ModelID      snowflake.ID `gorm:"not null;index"`
	Percentage   float64      `gorm:"not null"`
	Basis        Basis        `gorm:"type:text;not null;default:'net'"`
	Active       bool         `gorm:"not null;default:true"`
	StartMonth   string       `gorm:"type:text"`
	EndMonth     string       `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ModelDeal) TableName() string { return "affiliate_model_deals" }

// Repository is the read contract for affiliate deals.
type Repository interface {
	ListActive(ctx context.Context) ([]ModelDeal, error)
}
