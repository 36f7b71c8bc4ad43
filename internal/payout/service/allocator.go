package service

import (
	"sort"

	"github.com/bwmarrin/snowflake"

	affiliatedomain "github.com/agencyhq/backoffice/internal/affiliate/domain"
	basisservice "github.com/agencyhq/backoffice/internal/basis/service"
	"github.com/agencyhq/backoffice/internal/fxrate"
	"github.com/agencyhq/backoffice/internal/monthindex"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

// modelRevenue is the revenue snapshot one affiliate deal draws on.
type modelRevenue struct {
	NetUSD   float64
	GrossUSD float64
}

// computeAffiliateLine sums an affiliator's active deals for the month and
// adds their bonus/adjustment aggregate. One line per affiliator, never per
// deal; each contributing deal appears in the breakdown.
func computeAffiliateLine(
	member teamdomain.TeamMember,
	deals []affiliatedomain.ModelDeal,
	revenueByModel map[snowflake.ID]modelRevenue,
	totals basisservice.MemberTotals,
	monthKey string,
	fxRate float64,
) payoutdomain.Line {
	breakdown := payoutdomain.Breakdown{
		Formula:    "sum(deal_pct * model_revenue) + bonus + adjustment",
		Bonus:      totals.BonusUSD,
		Adjustment: totals.AdjustmentUSD,
		FxRate:     fxRate,
	}

	var dealTotal float64
	for _, deal := range deals {
		if deal.AffiliatorID != member.ID {
			continue
		}
		if !deal.Active || !monthindex.Contains(monthKey, deal.StartMonth, deal.EndMonth) {
			continue
		}
		revenue := revenueByModel[deal.ModelID]
		base := revenue.NetUSD
		if deal.Basis == affiliatedomain.BasisGross {
			base = revenue.GrossUSD
		}
		amount := base * deal.Percentage / 100
		dealTotal += amount
		breakdown.Deals = append(breakdown.Deals, payoutdomain.DealShare{
			DealID:        deal.ID,
			ModelID:       deal.ModelID,
			Percentage:    deal.Percentage,
			NetRevenueUSD: base,
			AmountUSD:     fxrate.Round2(amount),
		})
	}

	sort.Slice(breakdown.Deals, func(i, j int) bool {
		return breakdown.Deals[i].DealID < breakdown.Deals[j].DealID
	})

	usd := dealTotal + totals.BonusUSD + totals.AdjustmentUSD
	return finalizeUSDLine(member, teamdomain.CategoryAffiliate, usd, fxRate, breakdown)
}
