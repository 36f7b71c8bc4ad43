// Package migration creates the engine-owned tables on startup so the
// service is usable out of the box for local and self-hosted environments.
// Externally owned tables are created too: in a single-store deployment
// the dashboard writes them through the same database.
package migration

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	affiliatedomain "github.com/agencyhq/backoffice/internal/affiliate/domain"
	agencydomain "github.com/agencyhq/backoffice/internal/agency/domain"
	basisdomain "github.com/agencyhq/backoffice/internal/basis/domain"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
	settingsdomain "github.com/agencyhq/backoffice/internal/settings/domain"
	talentdomain "github.com/agencyhq/backoffice/internal/talent/domain"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&teamdomain.TeamMember{},
		&basisdomain.BasisEntry{},
		&agencydomain.Revenue{},
		&talentdomain.Model{},
		&affiliatedomain.ModelDeal{},
		&pnldomain.Row{},
		&payoutdomain.Run{},
		&payoutdomain.Line{},
		&settingsdomain.Settings{},
	)
	if err != nil {
		return err
	}
	log.Info("database schema up to date")
	return nil
}

// Module applies migrations during startup.
var Module = fx.Module("migration",
	fx.Invoke(Run),
)
