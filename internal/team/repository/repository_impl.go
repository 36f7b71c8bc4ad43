// Package repository reads team members from the record store.
package repository

import (
	"context"

	"gorm.io/gorm"

	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
	"github.com/agencyhq/backoffice/pkg/repository"
)

type teamRepository struct {
	store repository.Repository[teamdomain.TeamMember]
}

func New(db *gorm.DB) teamdomain.Repository {
	return &teamRepository{store: repository.ProvideStore[teamdomain.TeamMember](db)}
}

func (r *teamRepository) List(ctx context.Context) ([]teamdomain.TeamMember, error) {
	rows, err := r.store.Find(ctx, &teamdomain.TeamMember{})
	if err != nil {
		return nil, err
	}
	out := make([]teamdomain.TeamMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	return out, nil
}
