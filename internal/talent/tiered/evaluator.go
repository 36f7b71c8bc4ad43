// Package tiered is the default DealEvaluator implementation. It is wired
// through fx and can be replaced wholesale without touching the payout
// engine.
package tiered

import (
	talentdomain "github.com/agencyhq/backoffice/internal/talent/domain"
)

type Evaluator struct{}

func NewEvaluator() talentdomain.DealEvaluator {
	return Evaluator{}
}

// Evaluate branches on the talent's compensation type. All amounts are
// native USD; callers derive EUR from the snapshot rate.
func (Evaluator) Evaluate(netRevenueUSD float64, m talentdomain.Model, fxRate float64) (float64, error) {
	switch m.CompensationType {
	case talentdomain.CompensationSalary:
		return m.SalaryUSD, nil
	case talentdomain.CompensationPercentage:
		return netRevenueUSD * m.CreatorPayoutPct / 100, nil
	case talentdomain.CompensationHybrid:
		return m.SalaryUSD + netRevenueUSD*m.CreatorPayoutPct/100, nil
	case talentdomain.CompensationTieredDeal:
		if netRevenueUSD <= m.TierThresholdUSD {
			return m.TierFlatUSD, nil
		}
		return m.TierFlatUSD + (netRevenueUSD-m.TierThresholdUSD)*m.TierPctAbove/100, nil
	default:
		return 0, talentdomain.ErrUnknownCompensationType
	}
}
