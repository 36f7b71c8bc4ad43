package service

import (
	"math"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"

	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
)

func testSettings() Settings {
	return Settings{
		OfFeePct:             0.20,
		MarginGreenThreshold: 0.50,
		MarginYellowLow:      0.30,
	}
}

func TestComputeRowDerivation(t *testing.T) {
	raw := pnldomain.RawRecord{
		ModelID:      snowflake.ID(7),
		MonthKey:     "2025-03",
		Status:       pnldomain.RowStatusActual,
		GrossRevenue: 10000,
		Expenses: pnldomain.Expenses{
			AdsSpend:      1200,
			ChatterCosts:  1500,
			SoftwareCosts: 300,
		},
	}

	row := ComputeRow(raw, testSettings(), "March 2025")

	assert.Equal(t, "7-2025-03-actual", row.Key)
	assert.Equal(t, 10000.0, row.GrossRevenue)
	assert.Equal(t, 2000.0, row.OfFee)
	assert.Equal(t, 8000.0, row.NetRevenue)
	assert.Equal(t, 1200.0, row.TotalMarketingCosts)
	assert.Equal(t, 3000.0, row.TotalExpenses)
	assert.Equal(t, 5000.0, row.NetProfit)
	assert.Equal(t, 0.625, row.ProfitMarginPct)
	assert.Equal(t, pnldomain.MarginBandGood, row.MarginBand)
}

func TestComputeRowStoredNetWins(t *testing.T) {
	stored := 7500.0
	raw := pnldomain.RawRecord{
		ModelID:          snowflake.ID(7),
		MonthKey:         "2025-03",
		Status:           pnldomain.RowStatusActual,
		GrossRevenue:     10000,
		StoredNetRevenue: &stored,
	}

	row := ComputeRow(raw, testSettings(), "March 2025")

	assert.Equal(t, 7500.0, row.NetRevenue)
	assert.Equal(t, 2000.0, row.OfFee, "fee stays derived from gross")
	assert.Equal(t, 7500.0, row.NetProfit)
}

func TestComputeRowIgnoresNonFiniteStoredNet(t *testing.T) {
	stored := math.NaN()
	raw := pnldomain.RawRecord{
		GrossRevenue:     10000,
		StoredNetRevenue: &stored,
	}

	row := ComputeRow(raw, testSettings(), "")
	assert.Equal(t, 8000.0, row.NetRevenue)
}

func TestComputeRowZeroRevenue(t *testing.T) {
	raw := pnldomain.RawRecord{
		Expenses: pnldomain.Expenses{OtherExpenses: 500},
	}

	row := ComputeRow(raw, testSettings(), "")

	assert.Equal(t, 0.0, row.NetRevenue)
	assert.Equal(t, -500.0, row.NetProfit)
	assert.Equal(t, 0.0, row.ProfitMarginPct, "margin is zero when revenue is zero, never infinite")
	assert.Equal(t, pnldomain.MarginBandLow, row.MarginBand)
}

func TestBand(t *testing.T) {
	settings := testSettings()
	assert.Equal(t, pnldomain.MarginBandGood, Band(0.51, settings))
	assert.Equal(t, pnldomain.MarginBandOK, Band(0.50, settings))
	assert.Equal(t, pnldomain.MarginBandOK, Band(0.30, settings))
	assert.Equal(t, pnldomain.MarginBandLow, Band(0.29, settings))
	assert.Equal(t, pnldomain.MarginBandLow, Band(-0.10, settings))
}
