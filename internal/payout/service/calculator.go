package service

import (
	"gorm.io/datatypes"

	agencydomain "github.com/agencyhq/backoffice/internal/agency/domain"
	basisservice "github.com/agencyhq/backoffice/internal/basis/service"
	"github.com/agencyhq/backoffice/internal/fxrate"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

func breakdownPayload(b payoutdomain.Breakdown) datatypes.JSONType[payoutdomain.Breakdown] {
	return datatypes.NewJSONType(b)
}

// ValidateMemberConfig rejects the one configuration the engine refuses to
// guess about: a manager/VA holding both the total-net and the
// messages/tips-net percentage for the same revenue bucket.
func ValidateMemberConfig(member teamdomain.TeamMember) error {
	category := teamdomain.Classify(member.Role, member.Department)
	if category != teamdomain.CategoryManager && category != teamdomain.CategoryVA {
		return nil
	}
	if member.ChattingPercentage > 0 && member.ChattingPercentageMsgsTips > 0 {
		return &payoutdomain.DualPercentageError{TeamMemberID: member.ID, Bucket: payoutdomain.BucketChatting}
	}
	if member.GunzoPercentage > 0 && member.GunzoPercentageMsgsTips > 0 {
		return &payoutdomain.DualPercentageError{TeamMemberID: member.ID, Bucket: payoutdomain.BucketGunzo}
	}
	return nil
}

// computeChatterLine works natively in USD and derives EUR at the end.
func computeChatterLine(member teamdomain.TeamMember, totals basisservice.MemberTotals, fxRate float64) payoutdomain.Line {
	breakdown := payoutdomain.Breakdown{
		ChatterSalesUSD: totals.ChatterSalesUSD,
		Bonus:           totals.BonusUSD,
		Adjustment:      totals.AdjustmentUSD,
		Hourly:          totals.HourlyUSD,
		FxRate:          fxRate,
	}

	var usd float64
	switch member.PayoutType {
	case teamdomain.PayoutTypePercentage:
		breakdown.Formula = "sales * pct + bonus + adjustment + hourly"
		breakdown.PercentageUsed = member.PayoutPercentage
		usd = totals.ChatterSalesUSD*member.PayoutPercentage/100 + totals.BonusUSD + totals.AdjustmentUSD + totals.HourlyUSD
	case teamdomain.PayoutTypeFlatFee:
		breakdown.Formula = "flat_fee + bonus + adjustment + hourly"
		breakdown.FlatFee = member.PayoutFlatFee
		usd = member.PayoutFlatFee + totals.BonusUSD + totals.AdjustmentUSD + totals.HourlyUSD
	case teamdomain.PayoutTypeHybrid:
		breakdown.Formula = "sales * pct + flat_fee + bonus + adjustment + hourly"
		breakdown.PercentageUsed = member.PayoutPercentage
		breakdown.FlatFee = member.PayoutFlatFee
		usd = totals.ChatterSalesUSD*member.PayoutPercentage/100 + member.PayoutFlatFee + totals.BonusUSD + totals.AdjustmentUSD + totals.HourlyUSD
	default:
		breakdown.Formula = "hourly only"
		usd = totals.HourlyUSD
	}

	return finalizeUSDLine(member, teamdomain.CategoryChatter, usd, fxRate, breakdown)
}

// computeManagerLine works natively in EUR against the month's agency
// revenue buckets. revenue may be nil when no agency record exists for the
// month; all shares are then zero and the line is flagged.
func computeManagerLine(member teamdomain.TeamMember, category teamdomain.PayoutCategory, totals basisservice.MemberTotals, revenue *agencydomain.Revenue, fxRate float64) payoutdomain.Line {
	var share float64
	if revenue != nil {
		share = revenue.ChattingAmountEUR*member.ChattingPercentage/100 +
			revenue.ChattingMsgsTipsNetEUR*member.ChattingPercentageMsgsTips/100 +
			revenue.GunzoAmountEUR*member.GunzoPercentage/100 +
			revenue.GunzoMsgsTipsNetEUR*member.GunzoPercentageMsgsTips/100
	}

	breakdown := payoutdomain.Breakdown{
		Formula:        "agency_share + flat_fee + bonus + adjustment + hourly (EUR)",
		AgencyShareEUR: share,
		FlatFee:        member.PayoutFlatFee,
		Bonus:          totals.BonusEUR,
		Adjustment:     totals.AdjustmentEUR,
		Hourly:         totals.HourlyEUR,
		FxRate:         fxRate,
	}
	if revenue == nil && memberHasRevenueShare(member) {
		breakdown.Degraded = true
		breakdown.DegradedReason = "missing_agency_revenue"
	}

	eur := share + member.PayoutFlatFee + totals.BonusEUR + totals.AdjustmentEUR + totals.HourlyEUR

	line := payoutdomain.Line{
		TeamMemberID: idPtr(member.ID),
		Category:     category,
		PayoutType:   member.PayoutType,
		PayoutAmount: fxrate.Round2(eur),
		AmountEUR:    fxrate.Round2(eur),
		AmountUSD:    fxrate.Round2(fxrate.EurToUsd(eur, fxRate)),
	}
	line.Breakdown = breakdownPayload(breakdown)
	return line
}

// computeNoneLine pays hourly work only, regardless of payout type.
func computeNoneLine(member teamdomain.TeamMember, totals basisservice.MemberTotals, fxRate float64) payoutdomain.Line {
	breakdown := payoutdomain.Breakdown{
		Formula: "hourly only",
		Hourly:  totals.HourlyUSD,
		FxRate:  fxRate,
	}
	return finalizeUSDLine(member, teamdomain.CategoryNone, totals.HourlyUSD, fxRate, breakdown)
}

func finalizeUSDLine(member teamdomain.TeamMember, category teamdomain.PayoutCategory, usd, fxRate float64, breakdown payoutdomain.Breakdown) payoutdomain.Line {
	line := payoutdomain.Line{
		TeamMemberID: idPtr(member.ID),
		Category:     category,
		PayoutType:   member.PayoutType,
		PayoutAmount: fxrate.Round2(usd),
		AmountUSD:    fxrate.Round2(usd),
		AmountEUR:    fxrate.Round2(fxrate.UsdToEur(usd, fxRate)),
	}
	line.Breakdown = breakdownPayload(breakdown)
	return line
}

func memberHasRevenueShare(member teamdomain.TeamMember) bool {
	return member.ChattingPercentage > 0 || member.ChattingPercentageMsgsTips > 0 ||
		member.GunzoPercentage > 0 || member.GunzoPercentageMsgsTips > 0
}
