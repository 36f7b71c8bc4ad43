// Package repository reads talent records.
package repository

import (
	"context"

	"gorm.io/gorm"

	talentdomain "github.com/agencyhq/backoffice/internal/talent/domain"
	"github.com/agencyhq/backoffice/pkg/repository"
)

type talentRepository struct {
	store repository.Repository[talentdomain.Model]
}

func New(db *gorm.DB) talentdomain.Repository {
	return &talentRepository{store: repository.ProvideStore[talentdomain.Model](db)}
}

func (r *talentRepository) List(ctx context.Context) ([]talentdomain.Model, error) {
	rows, err := r.store.Find(ctx, &talentdomain.Model{})
	if err != nil {
		return nil, err
	}
	out := make([]talentdomain.Model, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	return out, nil
}
