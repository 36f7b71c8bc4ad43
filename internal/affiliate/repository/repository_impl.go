// Package repository reads affiliate deals.
package repository

import (
	"context"

	"gorm.io/gorm"

	affiliatedomain "github.com/agencyhq/backoffice/internal/affiliate/domain"
)

type affiliateRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) affiliatedomain.Repository {
	return &affiliateRepository{db: db}
}

func (r *affiliateRepository) ListActive(ctx context.Context) ([]affiliatedomain.ModelDeal, error) {
	var deals []affiliatedomain.ModelDeal
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Find(&deals).Error
	return deals, err
}
