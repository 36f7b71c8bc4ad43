// Package service derives P&L rows from raw revenue/expense records.
package service

import (
	"math"

	"github.com/agencyhq/backoffice/internal/fxrate"
	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
)

// Settings are the configured inputs of the derivation.
type Settings struct {
	OfFeePct             float64
	MarginGreenThreshold float64
	MarginYellowLow      float64
}

// ComputeRow derives a full P&L row from one raw record. It is a total
// function: any input, including zero revenue, yields finite numbers.
func ComputeRow(raw pnldomain.RawRecord, settings Settings, monthLabel string) pnldomain.Row {
	ofFee := raw.GrossRevenue * settings.OfFeePct

	netRevenue := raw.GrossRevenue - ofFee
	if raw.StoredNetRevenue != nil && isFinite(*raw.StoredNetRevenue) {
		netRevenue = *raw.StoredNetRevenue
	}

	totalMarketing := raw.Expenses.AdsSpend + raw.Expenses.OtherMarketingCosts
	totalExpenses := raw.Expenses.Total()
	netProfit := netRevenue - totalExpenses

	var marginPct float64
	if netRevenue > 0 {
		marginPct = netProfit / netRevenue
	}

	return pnldomain.Row{
		Key:        pnldomain.RowKey(raw.ModelID, raw.MonthKey, raw.Status),
		ModelID:    raw.ModelID,
		MonthKey:   raw.MonthKey,
		Status:     raw.Status,
		MonthLabel: monthLabel,

		GrossRevenue:        fxrate.Round2(raw.GrossRevenue),
		OfFee:               fxrate.Round2(ofFee),
		NetRevenue:          fxrate.Round2(netRevenue),
		Expenses:            raw.Expenses,
		TotalMarketingCosts: fxrate.Round2(totalMarketing),
		TotalExpenses:       fxrate.Round2(totalExpenses),
		NetProfit:           fxrate.Round2(netProfit),
		ProfitMarginPct:     marginPct,
		MarginBand:          Band(marginPct, settings),
	}
}

// Band classifies a margin against the configured thresholds.
func Band(marginPct float64, settings Settings) pnldomain.MarginBand {
	switch {
	case marginPct > settings.MarginGreenThreshold:
		return pnldomain.MarginBandGood
	case marginPct >= settings.MarginYellowLow:
		return pnldomain.MarginBandOK
	default:
		return pnldomain.MarginBandLow
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
