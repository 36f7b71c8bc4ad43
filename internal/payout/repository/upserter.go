// Package repository persists computed payout lines. Both documented
// persistence strategies are exposed by name: a destructive replace-all and
// a merge-upsert that preserves externally owned paid state.
package repository

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agencyhq/backoffice/internal/clock"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Upserter struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func NewUpserter(p Params) *Upserter {
	return &Upserter{
		db:    p.DB,
		log:   p.Log.Named("payout.repository"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

// EnsureRun returns the run for a month, creating a draft run if none
// exists.
func (u *Upserter) EnsureRun(ctx context.Context, monthKey string, fxRate float64) (*payoutdomain.Run, error) {
	var run payoutdomain.Run
	err := u.db.WithContext(ctx).Where("month_key = ?", monthKey).First(&run).Error
	if err == nil {
		return &run, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	now := u.clock.Now()
	run = payoutdomain.Run{
		ID:        u.genID.Generate(),
		Reference: uuid.NewString(),
		MonthKey:  monthKey,
		Status:    payoutdomain.RunStatusDraft,
		FxRate:    fxRate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.db.WithContext(ctx).Create(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// UpdateRunStatus moves a run along draft -> locked -> paid.
func (u *Upserter) UpdateRunStatus(ctx context.Context, runID snowflake.ID, to payoutdomain.RunStatus) error {
	var run payoutdomain.Run
	if err := u.db.WithContext(ctx).Where("id = ?", runID).First(&run).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return payoutdomain.ErrRunNotFound
		}
		return err
	}
	if !payoutdomain.ValidTransition(run.Status, to) {
		return fmt.Errorf("%w: %s -> %s", payoutdomain.ErrInvalidTransition, run.Status, to)
	}
	return u.db.WithContext(ctx).Model(&payoutdomain.Run{}).
		Where("id = ?", runID).
		Updates(map[string]any{"status": to, "updated_at": u.clock.Now()}).Error
}

// ReplaceRunLines deletes every existing line for the run and inserts the
// computed lines fresh. Any externally set paid state on the old lines is
// lost; callers choose this mode deliberately.
func (u *Upserter) ReplaceRunLines(ctx context.Context, runID snowflake.ID, lines []payoutdomain.Line) error {
	now := u.clock.Now()
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", runID).Delete(&payoutdomain.Line{}).Error; err != nil {
			return err
		}
		for i := range lines {
			line := lines[i]
			line.ID = u.genID.Generate()
			line.RunID = runID
			line.PaidStatus = payoutdomain.PaidStatusPending
			line.PaidAt = nil
			line.CreatedAt = now
			line.UpdatedAt = now
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MergeUpsertRunLines matches computed lines onto existing records by their
// natural key (run + subject) and overwrites only the computed fields.
// paid_status and paid_at stay untouched on rows that already existed; new
// rows start pending.
func (u *Upserter) MergeUpsertRunLines(ctx context.Context, runID snowflake.ID, lines []payoutdomain.Line) error {
	now := u.clock.Now()
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			line := lines[i]

			existing, err := u.findExisting(tx, runID, line)
			if err != nil {
				return err
			}

			if existing == nil {
				line.ID = u.genID.Generate()
				line.RunID = runID
				line.PaidStatus = payoutdomain.PaidStatusPending
				line.PaidAt = nil
				line.CreatedAt = now
				line.UpdatedAt = now
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
				continue
			}

			err = tx.Model(&payoutdomain.Line{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{
					"category":      line.Category,
					"payout_type":   line.PayoutType,
					"payout_amount": line.PayoutAmount,
					"amount_usd":    line.AmountUSD,
					"amount_eur":    line.AmountEUR,
					"breakdown":     line.Breakdown,
					"updated_at":    now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *Upserter) findExisting(tx *gorm.DB, runID snowflake.ID, line payoutdomain.Line) (*payoutdomain.Line, error) {
	query := tx.Where("run_id = ?", runID)
	switch {
	case line.TeamMemberID != nil:
		query = query.Where("team_member_id = ?", *line.TeamMemberID)
	case line.ModelID != nil:
		query = query.Where("model_id = ?", *line.ModelID)
	default:
		return nil, fmt.Errorf("payout line without subject in run %s", runID)
	}

	var existing payoutdomain.Line
	if err := query.First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &existing, nil
}

// ListRunLines returns a run's persisted lines ordered by subject.
func (u *Upserter) ListRunLines(ctx context.Context, runID snowflake.ID) ([]payoutdomain.Line, error) {
	var lines []payoutdomain.Line
	err := u.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("team_member_id, model_id").
		Find(&lines).Error
	return lines, err
}
