package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"github.com/agencyhq/backoffice/internal/monthindex"
	pnldomain "github.com/agencyhq/backoffice/internal/pnl/domain"
	pnlservice "github.com/agencyhq/backoffice/internal/pnl/service"
)

func (s *Server) listPnlRows(c *gin.Context) {
	monthKey := c.Query("month")
	if _, err := monthindex.Parse(monthKey); err != nil {
		respondError(c, err)
		return
	}

	rows, err := s.pnlRepo.ListByRange(c.Request.Context(), monthKey, monthKey, pnldomain.RowStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

type computePnlRequest struct {
	ModelID          string              `json:"model_id" binding:"required"`
	MonthKey         string              `json:"month" binding:"required"`
	Status           pnldomain.RowStatus `json:"status"`
	GrossRevenue     float64             `json:"gross_revenue"`
	StoredNetRevenue *float64            `json:"stored_net_revenue"`
	Expenses         pnldomain.Expenses  `json:"expenses"`
	Persist          bool                `json:"persist"`
}

func (s *Server) computePnlRow(c *gin.Context) {
	var req computePnlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modelID, err := snowflake.ParseString(req.ModelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}
	month, err := monthindex.Parse(req.MonthKey)
	if err != nil {
		respondError(c, err)
		return
	}
	status := req.Status
	if status == "" {
		status = pnldomain.RowStatusActual
	}

	ctx := c.Request.Context()
	settings, err := s.settingsSvc.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	row := pnlservice.ComputeRow(pnldomain.RawRecord{
		ModelID:          modelID,
		MonthKey:         month.Key,
		Status:           status,
		GrossRevenue:     req.GrossRevenue,
		StoredNetRevenue: req.StoredNetRevenue,
		Expenses:         req.Expenses,
	}, pnlservice.Settings{
		OfFeePct:             settings.OfFeePct,
		MarginGreenThreshold: settings.MarginGreenThreshold,
		MarginYellowLow:      settings.MarginYellowLow,
	}, month.Start.Format("January 2006"))

	if req.Persist {
		if err := s.pnlRepo.Upsert(ctx, row); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"row": row})
}
