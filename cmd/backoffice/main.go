package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/agencyhq/backoffice/internal/affiliate"
	"github.com/agencyhq/backoffice/internal/agency"
	"github.com/agencyhq/backoffice/internal/basis"
	"github.com/agencyhq/backoffice/internal/clock"
	"github.com/agencyhq/backoffice/internal/config"
	"github.com/agencyhq/backoffice/internal/logger"
	"github.com/agencyhq/backoffice/internal/migration"
	obsmetrics "github.com/agencyhq/backoffice/internal/observability/metrics"
	"github.com/agencyhq/backoffice/internal/payout"
	"github.com/agencyhq/backoffice/internal/pnl"
	"github.com/agencyhq/backoffice/internal/server"
	"github.com/agencyhq/backoffice/internal/settings"
	"github.com/agencyhq/backoffice/internal/talent"
	"github.com/agencyhq/backoffice/internal/talent/tiered"
	"github.com/agencyhq/backoffice/internal/team"
	"github.com/agencyhq/backoffice/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,
		obsmetrics.Module,
		db.Module,
		migration.Module,

		// Functional domains
		settings.Module,
		team.Module,
		basis.Module,
		agency.Module,
		talent.Module,
		tiered.Module,
		pnl.Module,
		affiliate.Module,
		payout.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
