// Package domain contains the manually entered monthly basis records the
// aggregator consumes.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type BasisType string

const (
	BasisTypeChatterSales BasisType = "chatter_sales"
	BasisTypeBonus        BasisType = "bonus"
	BasisTypeAdjustment   BasisType = "adjustment"
	BasisTypeFine         BasisType = "fine"
	BasisTypeHourly       BasisType = "hourly"
)

// HourlyDetail is the structured payload an hourly entry carries. It used
// to live JSON-encoded inside the notes text; it is now a discriminated
// column so malformed notes can no longer silently demote an entry to a
// plain bonus.
type HourlyDetail struct {
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
	TotalUSD float64 `json:"total_usd"`
	FxRate   float64 `json:"fx_rate,omitempty"`
}

// BasisEntry is one manual monthly input for one team member. Multiple
// entries per (month, member, type) are allowed and additive.
type BasisEntry struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	MonthKey     string       `gorm:"type:text;not null;index"`
	TeamMemberID snowflake.ID `gorm:"not null;index"`
	BasisType    BasisType    `gorm:"type:text;not null"`
	AmountUSD    float64      `gorm:"not null;default:0"`
	AmountEUR    float64      `gorm:"not null;default:0"`
	// Amount is the legacy single-currency column kept for rows imported
	// before the USD/EUR split.
	Amount float64                           `gorm:"not null;default:0"`
	Hourly *datatypes.JSONType[HourlyDetail] `gorm:"type:jsonb"`
	Notes  string                            `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (BasisEntry) TableName() string { return "basis_entries" }

// HourlyDetail returns the structured hourly payload, if present and valid.
func (e BasisEntry) HourlyDetail() (HourlyDetail, bool) {
	if e.BasisType != BasisTypeHourly || e.Hourly == nil {
		return HourlyDetail{}, false
	}
	detail := e.Hourly.Data()
	if detail.TotalUSD == 0 && (detail.Hours == 0 || detail.Rate == 0) {
		return HourlyDetail{}, false
	}
	return detail, true
}

// Repository is the read contract the engine uses for basis entries.
type Repository interface {
	ListByMonth(ctx context.Context, monthKey string) ([]BasisEntry, error)
}
