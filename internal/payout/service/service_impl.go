// Package service is the payout computation engine. One invocation loads a
// month's inputs with a bounded number of bulk reads and derives every
// payout line deterministically from them.
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	agencydomain "github.com/agencyhq/backoffice/internal/agency/domain"
	affiliatedomain "github.com/agencyhq/backoffice/internal/affiliate/domain"
	basisdomain "github.com/agencyhq/backoffice/internal/basis/domain"
	basisservice "github.com/agencyhq/backoffice/internal/basis/service"
	"github.com/agencyhq/backoffice/internal/fxrate"
	"github.com/agencyhq/backoffice/internal/monthindex"
	obsmetrics "github.com/agencyhq/backoffice/internal/observability/metrics"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
	settingsdomain "github.com/agencyhq/backoffice/internal/settings/domain"
	talentdomain "github.com/agencyhq/backoffice/internal/talent/domain"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

type Params struct {
	fx.In

	Log           *zap.Logger
	TeamRepo      teamdomain.Repository
	BasisRepo     basisdomain.Repository
	AgencyRepo    agencydomain.Repository
	TalentRepo    talentdomain.Repository
	PnlRepo       pnldomain.Repository
	AffiliateRepo affiliatedomain.Repository
	SettingsSvc   settingsdomain.Service
	Evaluator     talentdomain.DealEvaluator
	Metrics       *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log           *zap.Logger
	teamRepo      teamdomain.Repository
	basisRepo     basisdomain.Repository
	agencyRepo    agencydomain.Repository
	talentRepo    talentdomain.Repository
	pnlRepo       pnldomain.Repository
	affiliateRepo affiliatedomain.Repository
	settingsSvc   settingsdomain.Service
	evaluator     talentdomain.DealEvaluator
	metrics       *obsmetrics.Metrics
}

func NewService(p Params) payoutdomain.Service {
	return &Service{
		log:           p.Log.Named("payout.service"),
		teamRepo:      p.TeamRepo,
		basisRepo:     p.BasisRepo,
		agencyRepo:    p.AgencyRepo,
		talentRepo:    p.TalentRepo,
		pnlRepo:       p.PnlRepo,
		affiliateRepo: p.AffiliateRepo,
		settingsSvc:   p.SettingsSvc,
		evaluator:     p.Evaluator,
		metrics:       p.Metrics,
	}
}

func (s *Service) ComputePreviewPayouts(ctx context.Context, monthKey string, fxRate float64) (*payoutdomain.Preview, error) {
	month, err := monthindex.Parse(monthKey)
	if err != nil {
		return nil, err
	}
	if fxRate <= 0 {
		fxRate = s.settingsSvc.FxRate(ctx)
	}
	if err := fxrate.Validate(fxRate); err != nil {
		return nil, payoutdomain.ErrMissingFxRate
	}

	members, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	// A dual-percentage configuration poisons the whole month; surface it
	// before any line is computed.
	for _, member := range members {
		if err := ValidateMemberConfig(member); err != nil {
			return nil, err
		}
	}

	entries, err := s.basisRepo.ListByMonth(ctx, month.Key)
	if err != nil {
		return nil, fmt.Errorf("list basis entries: %w", err)
	}
	revenue, err := s.agencyRepo.GetByMonth(ctx, month.Key)
	if err != nil {
		return nil, fmt.Errorf("get agency revenue: %w", err)
	}
	talents, err := s.talentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}
	pnlRows, err := s.pnlRepo.ListByRange(ctx, month.Key, month.Key, pnldomain.RowStatusActual)
	if err != nil {
		return nil, fmt.Errorf("list pnl rows: %w", err)
	}
	deals, err := s.affiliateRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list affiliate deals: %w", err)
	}

	memberIndex := make(map[snowflake.ID]teamdomain.TeamMember, len(members))
	for _, member := range members {
		memberIndex[member.ID] = member
	}

	aggregated := basisservice.Aggregate(entries, memberIndex, fxRate, s.log)

	revenueByModel := make(map[snowflake.ID]modelRevenue, len(pnlRows))
	for _, row := range pnlRows {
		revenueByModel[row.ModelID] = modelRevenue{NetUSD: row.NetRevenue, GrossUSD: row.GrossRevenue}
	}

	preview := &payoutdomain.Preview{
		MonthKey:            month.Key,
		FxRate:              fxRate,
		ByCategory:          make(map[teamdomain.PayoutCategory][]payoutdomain.Line),
		SkippedBasisEntries: aggregated.SkippedEntries,
	}

	for _, member := range members {
		if !member.IsActive() {
			continue
		}
		totals := aggregated.ByMember[member.ID]

		var line payoutdomain.Line
		category := teamdomain.Classify(member.Role, member.Department)
		switch category {
		case teamdomain.CategoryChatter:
			line = computeChatterLine(member, totals, fxRate)
		case teamdomain.CategoryManager, teamdomain.CategoryVA:
			line = computeManagerLine(member, category, totals, revenue, fxRate)
		case teamdomain.CategoryAffiliate:
			line = computeAffiliateLine(member, deals, revenueByModel, totals, month.Key, fxRate)
		default:
			line = computeNoneLine(member, totals, fxRate)
		}
		line.MonthKey = month.Key
		preview.Lines = append(preview.Lines, line)
	}

	for _, talent := range talents {
		line := s.computeTalentLine(talent, revenueByModel[talent.ID], fxRate)
		line.MonthKey = month.Key
		preview.Lines = append(preview.Lines, line)
	}

	sortLines(preview.Lines)
	for _, line := range preview.Lines {
		preview.ByCategory[line.Category] = append(preview.ByCategory[line.Category], line)
		if line.Breakdown.Data().Degraded {
			preview.DegradedLines++
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveComputation(month.Key, aggregated.SkippedEntries, preview.DegradedLines)
	}
	s.log.Info("computed payout preview",
		zap.String("month", month.Key),
		zap.Int("lines", len(preview.Lines)),
		zap.Int("skipped_basis_entries", aggregated.SkippedEntries),
		zap.Int("degraded_lines", preview.DegradedLines),
	)

	return preview, nil
}

// computeTalentLine delegates the amount to the pluggable deal evaluator.
// Missing net revenue while gross is positive forces the payout to zero:
// computing from a wrong basis would be worse than paying nothing and
// flagging it.
func (s *Service) computeTalentLine(talent talentdomain.Model, revenue modelRevenue, fxRate float64) payoutdomain.Line {
	breakdown := payoutdomain.Breakdown{
		Formula:       fmt.Sprintf("deal evaluator (%s)", talent.CompensationType),
		NetRevenueUSD: revenue.NetUSD,
		FxRate:        fxRate,
	}

	var usd float64
	if revenue.NetUSD <= 0 && revenue.GrossUSD > 0 {
		breakdown.Degraded = true
		breakdown.DegradedReason = "net_revenue_missing"
	} else {
		amount, err := s.evaluator.Evaluate(revenue.NetUSD, talent, fxRate)
		if err != nil {
			s.log.Warn("deal evaluation degraded to zero",
				zap.String("model_id", talent.ID.String()),
				zap.Error(err),
			)
			breakdown.Degraded = true
			breakdown.DegradedReason = err.Error()
		} else {
			usd = amount
		}
	}

	line := payoutdomain.Line{
		ModelID:      idPtr(talent.ID),
		Category:     teamdomain.CategoryModel,
		PayoutType:   teamdomain.PayoutTypeNone,
		PayoutAmount: fxrate.Round2(usd),
		AmountUSD:    fxrate.Round2(usd),
		AmountEUR:    fxrate.Round2(fxrate.UsdToEur(usd, fxRate)),
	}
	line.Breakdown = breakdownPayload(breakdown)
	return line
}

func (s *Service) ComputeLivePayoutsInRange(ctx context.Context, fromKey, toKey string) ([]payoutdomain.RangeTotal, error) {
	months, err := monthindex.Range(fromKey, toKey)
	if err != nil {
		return nil, err
	}

	// Sequential by design: each month must be computed against its own
	// revenue bucket and basis snapshot.
	totals := make(map[string]*payoutdomain.RangeTotal)
	for _, month := range months {
		preview, err := s.ComputePreviewPayouts(ctx, month.Key, 0)
		if err != nil {
			return nil, fmt.Errorf("compute month %s: %w", month.Key, err)
		}
		for _, line := range preview.Lines {
			key := line.SubjectID().String()
			total, ok := totals[key]
			if !ok {
				total = &payoutdomain.RangeTotal{
					SubjectID: key,
					Category:  string(line.Category),
				}
				totals[key] = total
			}
			total.AmountUSD = fxrate.Round2(total.AmountUSD + line.AmountUSD)
			total.AmountEUR = fxrate.Round2(total.AmountEUR + line.AmountEUR)
			total.MonthsCovered++
		}
	}

	out := make([]payoutdomain.RangeTotal, 0, len(totals))
	for _, total := range totals {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubjectID < out[j].SubjectID })
	return out, nil
}

// sortLines orders lines by subject id so repeated computation of the same
// inputs yields an identical slice.
func sortLines(lines []payoutdomain.Line) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Category != lines[j].Category {
			return lines[i].Category < lines[j].Category
		}
		return lines[i].SubjectID() < lines[j].SubjectID()
	})
}

func idPtr(id snowflake.ID) *snowflake.ID { return &id }
