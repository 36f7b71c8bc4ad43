// Package repository persists P&L rows idempotently by their natural
// identity key.
package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agencyhq/backoffice/internal/clock"
	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Repository struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) *Repository {
	return &Repository{
		db:    p.DB,
		log:   p.Log.Named("pnl.repository"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

// ListByRange implements the engine's read contract.
func (r *Repository) ListByRange(ctx context.Context, fromKey, toKey string, status pnldomain.RowStatus) ([]pnldomain.Row, error) {
	query := r.db.WithContext(ctx).
		Where("month_key >= ? AND month_key <= ?", fromKey, toKey)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var rows []pnldomain.Row
	err := query.Order("month_key, model_id").Find(&rows).Error
	return rows, err
}

// Upsert writes a row under its {model}-{month}-{status} identity: at most
// one row ever exists per key, however often the derivation runs.
func (r *Repository) Upsert(ctx context.Context, row pnldomain.Row) error {
	if row.Key == "" {
		row.Key = pnldomain.RowKey(row.ModelID, row.MonthKey, row.Status)
	}
	now := r.clock.Now()

	var existing pnldomain.Row
	err := r.db.WithContext(ctx).Where("key = ?", row.Key).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		row.ID = r.genID.Generate()
		row.CreatedAt = now
		row.UpdatedAt = now
		return r.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return err
	}

	row.ID = existing.ID
	row.CreatedAt = existing.CreatedAt
	row.UpdatedAt = now
	return r.db.WithContext(ctx).Save(&row).Error
}
