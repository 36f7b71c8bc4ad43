// Package server is the thin HTTP surface over the computation engine.
// Authentication and authorization live in the calling layer, not here.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/agencyhq/backoffice/internal/config"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
	payoutrepository "github.com/agencyhq/backoffice/internal/payout/repository"
	pnlrepository "github.com/agencyhq/backoffice/internal/pnl/repository"
	settingsdomain "github.com/agencyhq/backoffice/internal/settings/domain"
)

type Params struct {
	fx.In

	Engine      *gin.Engine
	Log         *zap.Logger
	Config      config.Config
	EngineCfg   *config.EngineConfigHolder
	GenID       *snowflake.Node
	PayoutSvc   payoutdomain.Service
	Upserter    *payoutrepository.Upserter
	PnlRepo     *pnlrepository.Repository
	SettingsSvc settingsdomain.Service
}

type Server struct {
	engine      *gin.Engine
	log         *zap.Logger
	cfg         config.Config
	engineCfg   *config.EngineConfigHolder
	genID       *snowflake.Node
	payoutSvc   payoutdomain.Service
	upserter    *payoutrepository.Upserter
	pnlRepo     *pnlrepository.Repository
	settingsSvc settingsdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		engine:      p.Engine,
		log:         p.Log.Named("server"),
		cfg:         p.Config,
		engineCfg:   p.EngineCfg,
		genID:       p.GenID,
		payoutSvc:   p.PayoutSvc,
		upserter:    p.Upserter,
		pnlRepo:     p.PnlRepo,
		settingsSvc: p.SettingsSvc,
	}
}

func NewEngine(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(AccessLogMiddleware(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

// RegisterAPIRoutes mounts the engine endpoints.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/payouts/preview", s.previewPayouts)
	api.GET("/payouts/range", s.rangePayouts)
	api.POST("/payouts/runs/:month/persist", s.persistRun)
	api.POST("/payouts/runs/:id/status", s.updateRunStatus)

	api.GET("/pnl", s.listPnlRows)
	api.POST("/pnl/compute", s.computePnlRow)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// Module wires the HTTP server.
var Module = fx.Module("http.server",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(func(s *Server) { s.RegisterAPIRoutes() }),
	fx.Invoke(run),
)
