package domain

import (
	"context"
)

// RangeTotal is one subject's summed payout across a month range.
type RangeTotal struct {
	SubjectID     string
	Category      string
	AmountUSD     float64
	AmountEUR     float64
	MonthsCovered int
}

type Service interface {
	// ComputePreviewPayouts computes every payout line for one month.
	// fxRate <= 0 means "use the current settings rate".
	ComputePreviewPayouts(ctx context.Context, monthKey string, fxRate float64) (*Preview, error)

	// ComputeLivePayoutsInRange runs one full per-month computation per
	// month in [fromKey, toKey] and sums per-subject totals.
	ComputeLivePayoutsInRange(ctx context.Context, fromKey, toKey string) ([]RangeTotal, error)
}
