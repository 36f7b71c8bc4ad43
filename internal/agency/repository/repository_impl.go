// Package repository reads agency revenue records.
package repository

import (
	"context"

	"gorm.io/gorm"

	agencydomain "github.com/agencyhq/backoffice/internal/agency/domain"
	"github.com/agencyhq/backoffice/pkg/repository"
)

type agencyRepository struct {
	store repository.Repository[agencydomain.Revenue]
}

func New(db *gorm.DB) agencydomain.Repository {
	return &agencyRepository{store: repository.ProvideStore[agencydomain.Revenue](db)}
}

func (r *agencyRepository) GetByMonth(ctx context.Context, monthKey string) (*agencydomain.Revenue, error) {
	return r.store.FindOne(ctx, &agencydomain.Revenue{MonthKey: monthKey})
}
