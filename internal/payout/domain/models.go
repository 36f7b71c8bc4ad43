// Package domain contains computed payout lines, payout runs, and the
// engine's error taxonomy.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

type PaidStatus string

const (
	PaidStatusPending PaidStatus = "pending"
	PaidStatusPaid    PaidStatus = "paid"
)

// RunStatus is the coarse workflow state of a payout run. Transition
// enforcement belongs to the caller; ValidTransition only documents the
// allowed edges.
type RunStatus string

const (
	RunStatusDraft  RunStatus = "draft"
	RunStatusLocked RunStatus = "locked"
	RunStatusPaid   RunStatus = "paid"
)

// ValidTransition reports whether a run may move from one status to the
// next.
func ValidTransition(from, to RunStatus) bool {
	switch from {
	case RunStatusDraft:
		return to == RunStatusLocked
	case RunStatusLocked:
		return to == RunStatusPaid
	default:
		return false
	}
}

// Run is a month-scoped container for a batch of computed lines.
type Run struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	Reference string       `gorm:"type:text;not null;uniqueIndex"`
	MonthKey  string       `gorm:"type:text;not null;index"`
	Status    RunStatus    `gorm:"type:text;not null;default:'draft'"`
	FxRate    float64      `gorm:"not null;default:0"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Run) TableName() string { return "payout_runs" }

// Breakdown explains the formula behind a line's amount. It is persisted
// as the line's JSON payload for audit.
type Breakdown struct {
	Formula         string      `json:"formula"`
	ChatterSalesUSD float64     `json:"chatter_sales_usd,omitempty"`
	PercentageUsed  float64     `json:"percentage_used,omitempty"`
	FlatFee         float64     `json:"flat_fee,omitempty"`
	Bonus           float64     `json:"bonus,omitempty"`
	Adjustment      float64     `json:"adjustment,omitempty"`
	Hourly          float64     `json:"hourly,omitempty"`
	AgencyShareEUR  float64     `json:"agency_share_eur,omitempty"`
	NetRevenueUSD   float64     `json:"net_revenue_usd,omitempty"`
	Deals           []DealShare `json:"deals,omitempty"`
	Degraded        bool        `json:"degraded,omitempty"`
	DegradedReason  string      `json:"degraded_reason,omitempty"`
	FxRate          float64     `json:"fx_rate,omitempty"`
}

// DealShare is one contributing affiliate deal inside a breakdown.
type DealShare struct {
	DealID        snowflake.ID `json:"deal_id"`
	ModelID       snowflake.ID `json:"model_id"`
	Percentage    float64      `json:"percentage"`
	NetRevenueUSD float64      `json:"net_revenue_usd"`
	AmountUSD     float64      `json:"amount_usd"`
}

// Line is one computed payout for a team member, a talent, or an
// affiliator. Exactly one of TeamMemberID and ModelID is set. PaidStatus
// and PaidAt are externally owned once persisted: recomputation must never
// overwrite them.
type Line struct {
	ID           snowflake.ID                  `gorm:"primaryKey"`
	RunID        snowflake.ID                  `gorm:"not null;index;uniqueIndex:ux_payout_line_subject,priority:1"`
	TeamMemberID *snowflake.ID                 `gorm:"uniqueIndex:ux_payout_line_subject,priority:2"`
	ModelID      *snowflake.ID                 `gorm:"uniqueIndex:ux_payout_line_subject,priority:3"`
	MonthKey     string                        `gorm:"type:text;not null;index"`
	Category     teamdomain.PayoutCategory     `gorm:"type:text;not null"`
	PayoutType   teamdomain.PayoutType         `gorm:"type:text;not null"`
	PayoutAmount float64                       `gorm:"not null;default:0"`
	AmountUSD    float64                       `gorm:"not null;default:0"`
	AmountEUR    float64                       `gorm:"not null;default:0"`
	Breakdown    datatypes.JSONType[Breakdown] `gorm:"type:jsonb"`
	PaidStatus   PaidStatus                    `gorm:"type:text;not null;default:'pending'"`
	PaidAt       *time.Time                    `gorm:""`
	CreatedAt    time.Time                     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Line) TableName() string { return "payout_lines" }

// SubjectID returns the id the line is keyed by within a run.
func (l Line) SubjectID() snowflake.ID {
	if l.TeamMemberID != nil {
		return *l.TeamMemberID
	}
	if l.ModelID != nil {
		return *l.ModelID
	}
	return 0
}

// Preview is the result of one month's computation, before any persistence
// decision.
type Preview struct {
	MonthKey   string
	FxRate     float64
	Lines      []Line
	ByCategory map[teamdomain.PayoutCategory][]Line

	SkippedBasisEntries int
	DegradedLines       int
}
