// Package repository reads basis entries from the record store.
package repository

import (
	"context"

	"gorm.io/gorm"

	basisdomain "github.com/agencyhq/backoffice/internal/basis/domain"
)

type basisRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) basisdomain.Repository {
	return &basisRepository{db: db}
}

func (r *basisRepository) ListByMonth(ctx context.Context, monthKey string) ([]basisdomain.BasisEntry, error) {
	var entries []basisdomain.BasisEntry
	err := r.db.WithContext(ctx).
		Where("month_key = ?", monthKey).
		Order("id").
		Find(&entries).Error
	return entries, err
}
