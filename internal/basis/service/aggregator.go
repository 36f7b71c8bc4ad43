// Package service aggregates raw basis entries into per-member totals the
// payout calculator consumes.
package service

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	basisdomain "github.com/agencyhq/backoffice/internal/basis/domain"
	"github.com/agencyhq/backoffice/internal/fxrate"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

// MemberTotals are one member's summed basis amounts for a month. Hourly
// pay is tracked apart from the ordinary sums so an hourly entry never
// doubles as a bonus.
type MemberTotals struct {
	ChatterSalesUSD float64
	BonusUSD        float64
	AdjustmentUSD   float64
	BonusEUR        float64
	AdjustmentEUR   float64
	HourlyUSD       float64
	HourlyEUR       float64
}

// Result is the aggregation output plus its diagnostics. Skipped entries
// referenced an unknown or inactive member; malformed hourly entries had
// an hourly type but no usable payload.
type Result struct {
	ByMember        map[snowflake.ID]MemberTotals
	SkippedEntries  int
	MalformedHourly int
}

// Aggregate folds entries into per-member totals. Addition is the only
// combining operation, so any processing order yields identical totals.
func Aggregate(entries []basisdomain.BasisEntry, members map[snowflake.ID]teamdomain.TeamMember, fxRate float64, log *zap.Logger) Result {
	result := Result{ByMember: make(map[snowflake.ID]MemberTotals)}

	for _, entry := range entries {
		member, ok := members[entry.TeamMemberID]
		if !ok || !member.IsActive() {
			result.SkippedEntries++
			if log != nil {
				log.Debug("skipping basis entry for unknown or inactive member",
					zap.String("entry_id", entry.ID.String()),
					zap.String("team_member_id", entry.TeamMemberID.String()),
				)
			}
			continue
		}

		totals := result.ByMember[entry.TeamMemberID]

		if entry.BasisType == basisdomain.BasisTypeHourly {
			detail, ok := entry.HourlyDetail()
			if !ok {
				result.MalformedHourly++
				result.ByMember[entry.TeamMemberID] = totals
				continue
			}
			usd := detail.TotalUSD
			if usd == 0 {
				usd = detail.Hours * detail.Rate
			}
			totals.HourlyUSD += usd
			rate := detail.FxRate
			if rate <= 0 {
				rate = fxRate
			}
			if rate > 0 {
				totals.HourlyEUR += fxrate.UsdToEur(usd, rate)
			}
			result.ByMember[entry.TeamMemberID] = totals
			continue
		}

		usd := authoritativeUSD(entry, fxRate)
		eur := entry.AmountEUR
		if eur == 0 && fxRate > 0 {
			eur = fxrate.UsdToEur(usd, fxRate)
		}

		switch entry.BasisType {
		case basisdomain.BasisTypeChatterSales:
			totals.ChatterSalesUSD += usd
		case basisdomain.BasisTypeBonus:
			totals.BonusUSD += usd
			totals.BonusEUR += eur
		case basisdomain.BasisTypeAdjustment, basisdomain.BasisTypeFine:
			totals.AdjustmentUSD += usd
			totals.AdjustmentEUR += eur
		default:
			result.SkippedEntries++
			continue
		}

		result.ByMember[entry.TeamMemberID] = totals
	}

	return result
}

// authoritativeUSD picks the USD value of a non-hourly entry: the explicit
// USD amount when set, a converted EUR amount when a rate exists, and the
// legacy single amount as a last resort.
func authoritativeUSD(entry basisdomain.BasisEntry, fxRate float64) float64 {
	if entry.AmountUSD != 0 {
		return entry.AmountUSD
	}
	if entry.AmountEUR != 0 && fxRate > 0 {
		return fxrate.EurToUsd(entry.AmountEUR, fxRate)
	}
	return entry.Amount
}
