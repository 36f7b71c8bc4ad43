package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agencyhq/backoffice/internal/clock"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

func setupUpserter(t *testing.T) (*Upserter, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&payoutdomain.Run{}, &payoutdomain.Line{})
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC))
	u := NewUpserter(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clk,
	})
	return u, db, clk
}

func memberLine(memberID int64, amountUSD float64) payoutdomain.Line {
	id := snowflake.ID(memberID)
	return payoutdomain.Line{
		TeamMemberID: &id,
		MonthKey:     "2025-03",
		Category:     teamdomain.CategoryChatter,
		PayoutType:   teamdomain.PayoutTypePercentage,
		PayoutAmount: amountUSD,
		AmountUSD:    amountUSD,
	}
}

func TestEnsureRunIdempotent(t *testing.T) {
	u, _, _ := setupUpserter(t)
	ctx := context.Background()

	first, err := u.EnsureRun(ctx, "2025-03", 0.9)
	require.NoError(t, err)
	assert.Equal(t, payoutdomain.RunStatusDraft, first.Status)
	assert.NotEmpty(t, first.Reference)

	second, err := u.EnsureRun(ctx, "2025-03", 0.95)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "a month has exactly one run")
	assert.Equal(t, first.FxRate, second.FxRate, "existing run keeps its snapshot rate")
}

func TestUpdateRunStatusTransitions(t *testing.T) {
	u, _, _ := setupUpserter(t)
	ctx := context.Background()

	run, err := u.EnsureRun(ctx, "2025-03", 0.9)
	require.NoError(t, err)

	err = u.UpdateRunStatus(ctx, run.ID, payoutdomain.RunStatusPaid)
	assert.ErrorIs(t, err, payoutdomain.ErrInvalidTransition, "draft cannot jump straight to paid")

	require.NoError(t, u.UpdateRunStatus(ctx, run.ID, payoutdomain.RunStatusLocked))
	require.NoError(t, u.UpdateRunStatus(ctx, run.ID, payoutdomain.RunStatusPaid))

	err = u.UpdateRunStatus(ctx, run.ID, payoutdomain.RunStatusLocked)
	assert.ErrorIs(t, err, payoutdomain.ErrInvalidTransition, "paid is terminal")

	err = u.UpdateRunStatus(ctx, snowflake.ID(999999), payoutdomain.RunStatusLocked)
	assert.ErrorIs(t, err, payoutdomain.ErrRunNotFound)
}

func TestMergeUpsertPreservesPaidState(t *testing.T) {
	u, db, clk := setupUpserter(t)
	ctx := context.Background()

	run, err := u.EnsureRun(ctx, "2025-03", 0.9)
	require.NoError(t, err)

	require.NoError(t, u.MergeUpsertRunLines(ctx, run.ID, []payoutdomain.Line{
		memberLine(1, 530),
		memberLine(2, 250),
	}))

	persisted, err := u.ListRunLines(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, persisted, 2)

	// Mark member 1 paid out of band, the way the dashboard does.
	paidAt := clk.Now()
	err = db.Model(&payoutdomain.Line{}).
		Where("id = ?", persisted[0].ID).
		Updates(map[string]any{"paid_status": payoutdomain.PaidStatusPaid, "paid_at": paidAt}).Error
	require.NoError(t, err)

	// Recompute with different amounts and merge again.
	clk.Advance(time.Hour)
	require.NoError(t, u.MergeUpsertRunLines(ctx, run.ID, []payoutdomain.Line{
		memberLine(1, 600),
		memberLine(2, 250),
		memberLine(3, 100),
	}))

	after, err := u.ListRunLines(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, after, 3)

	assert.Equal(t, persisted[0].ID, after[0].ID, "existing row keeps its identity")
	assert.Equal(t, 600.0, after[0].AmountUSD, "computed amount is refreshed")
	assert.Equal(t, payoutdomain.PaidStatusPaid, after[0].PaidStatus, "paid status survives recomputation")
	require.NotNil(t, after[0].PaidAt)
	assert.Equal(t, paidAt.Unix(), after[0].PaidAt.Unix())

	assert.Equal(t, payoutdomain.PaidStatusPending, after[2].PaidStatus, "new subject starts pending")
}

func TestReplaceRunLinesDropsPaidState(t *testing.T) {
	u, db, _ := setupUpserter(t)
	ctx := context.Background()

	run, err := u.EnsureRun(ctx, "2025-03", 0.9)
	require.NoError(t, err)

	require.NoError(t, u.ReplaceRunLines(ctx, run.ID, []payoutdomain.Line{memberLine(1, 530)}))

	persisted, err := u.ListRunLines(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, persisted, 1)

	err = db.Model(&payoutdomain.Line{}).
		Where("id = ?", persisted[0].ID).
		Update("paid_status", payoutdomain.PaidStatusPaid).Error
	require.NoError(t, err)

	require.NoError(t, u.ReplaceRunLines(ctx, run.ID, []payoutdomain.Line{memberLine(1, 530)}))

	after, err := u.ListRunLines(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.NotEqual(t, persisted[0].ID, after[0].ID, "replace inserts fresh rows")
	assert.Equal(t, payoutdomain.PaidStatusPending, after[0].PaidStatus, "replace resets paid state")
}

func TestMergeUpsertRejectsSubjectlessLine(t *testing.T) {
	u, _, _ := setupUpserter(t)
	ctx := context.Background()

	run, err := u.EnsureRun(ctx, "2025-03", 0.9)
	require.NoError(t, err)

	err = u.MergeUpsertRunLines(ctx, run.ID, []payoutdomain.Line{{MonthKey: "2025-03"}})
	assert.Error(t, err)
}
