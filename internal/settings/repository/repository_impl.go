// Package repository reads the global settings row.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	settingsdomain "github.com/agencyhq/backoffice/internal/settings/domain"
)

type settingsRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) settingsdomain.Repository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*settingsdomain.Settings, error) {
	var row settingsdomain.Settings
	err := r.db.WithContext(ctx).Order("id").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
