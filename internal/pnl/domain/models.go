// Package domain contains P&L rows and their natural identity keys.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

type RowStatus string

const (
	RowStatusActual   RowStatus = "actual"
	RowStatusForecast RowStatus = "forecast"
)

// MarginBand classifies a profit margin against configured thresholds.
type MarginBand string

const (
	MarginBandGood MarginBand = "good"
	MarginBandOK   MarginBand = "ok"
	MarginBandLow  MarginBand = "low"
)

// Expenses holds the eleven expense categories of a P&L row. Missing
// values are zero.
type Expenses struct {
	AdsSpend            float64 `gorm:"not null;default:0" json:"ads_spend"`
	OtherMarketingCosts float64 `gorm:"not null;default:0" json:"other_marketing_costs"`
	ChatterCosts        float64 `gorm:"not null;default:0" json:"chatter_costs"`
	ManagementCosts     float64 `gorm:"not null;default:0" json:"management_costs"`
	ProductionCosts     float64 `gorm:"not null;default:0" json:"production_costs"`
	SoftwareCosts       float64 `gorm:"not null;default:0" json:"software_costs"`
	BankFees            float64 `gorm:"not null;default:0" json:"bank_fees"`
	Chargebacks         float64 `gorm:"not null;default:0" json:"chargebacks"`
	AffiliateCosts      float64 `gorm:"not null;default:0" json:"affiliate_costs"`
	ContentCosts        float64 `gorm:"not null;default:0" json:"content_costs"`
	OtherExpenses       float64 `gorm:"not null;default:0" json:"other_expenses"`
}

// Total sums all categories.
func (e Expenses) Total() float64 {
	return e.AdsSpend + e.OtherMarketingCosts + e.ChatterCosts + e.ManagementCosts +
		e.ProductionCosts + e.SoftwareCosts + e.BankFees + e.Chargebacks +
		e.AffiliateCosts + e.ContentCosts + e.OtherExpenses
}

// RawRecord is the revenue/expense input a row is derived from.
// StoredNetRevenue, when set, wins over the derived gross minus OF fee.
type RawRecord struct {
	ModelID          snowflake.ID
	MonthKey         string
	Status           RowStatus
	GrossRevenue     float64
	StoredNetRevenue *float64
	Expenses         Expenses
}

// Row is one derived P&L row. At most one row exists per
// (model, month, status).
type Row struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	Key      string       `gorm:"type:text;not null;uniqueIndex"`
	ModelID  snowflake.ID `gorm:"not null;index"`
	MonthKey string       `gorm:"type:text;not null;index"`
	Status   RowStatus    `gorm:"type:text;not null"`

	MonthLabel string `gorm:"type:text"`

	GrossRevenue        float64    `gorm:"not null;default:0"`
	OfFee               float64    `gorm:"not null;default:0"`
	NetRevenue          float64    `gorm:"not null;default:0"`
	Expenses            Expenses   `gorm:"embedded"`
	TotalMarketingCosts float64    `gorm:"not null;default:0"`
	TotalExpenses       float64    `gorm:"not null;default:0"`
	NetProfit           float64    `gorm:"not null;default:0"`
	ProfitMarginPct     float64    `gorm:"not null;default:0"`
	MarginBand          MarginBand `gorm:"type:text;not null;default:'low'"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Row) TableName() string { return "pnl_rows" }

// RowKey is the natural identity of a P&L row.
func RowKey(modelID snowflake.ID, monthKey string, status RowStatus) string {
	return fmt.Sprintf("%s-%s-%s", modelID.String(), monthKey, status)
}

// ForecastKey is the natural identity of a weekly forecast row.
func ForecastKey(modelID snowflake.ID, weekKey, scenario string) string {
	return fmt.Sprintf("%s-%s-%s", modelID.String(), weekKey, scenario)
}

// Repository is the read contract for P&L rows.
type Repository interface {
	// ListByRange returns rows whose month key lies in [fromKey, toKey].
	// status narrows the result when non-empty.
	ListByRange(ctx context.Context, fromKey, toKey string, status RowStatus) ([]Row, error)
}
