package server

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
)

func (s *Server) previewPayouts(c *gin.Context) {
	monthKey := c.Query("month")
	fxRate, _ := strconv.ParseFloat(c.Query("fx_rate"), 64)

	preview, err := s.payoutSvc.ComputePreviewPayouts(c.Request.Context(), monthKey, fxRate)
	if err != nil {
		s.log.Warn("payout preview failed", zap.String("month", monthKey), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":                 preview.MonthKey,
		"fx_rate":               preview.FxRate,
		"lines":                 preview.Lines,
		"by_category":           preview.ByCategory,
		"skipped_basis_entries": preview.SkippedBasisEntries,
		"degraded_lines":        preview.DegradedLines,
	})
}

func (s *Server) rangePayouts(c *gin.Context) {
	totals, err := s.payoutSvc.ComputeLivePayoutsInRange(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

type persistRequest struct {
	Mode   string  `json:"mode" binding:"required,oneof=merge replace"`
	FxRate float64 `json:"fx_rate"`
}

// persistRun recomputes the month and writes the lines in the requested
// mode. merge preserves paid state; replace is the named destructive path.
func (s *Server) persistRun(c *gin.Context) {
	monthKey := c.Param("month")

	var req persistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be merge or replace"})
		return
	}

	ctx := c.Request.Context()
	preview, err := s.payoutSvc.ComputePreviewPayouts(ctx, monthKey, req.FxRate)
	if err != nil {
		respondError(c, err)
		return
	}

	run, err := s.upserter.EnsureRun(ctx, preview.MonthKey, preview.FxRate)
	if err != nil {
		respondError(c, err)
		return
	}

	switch req.Mode {
	case "replace":
		err = s.upserter.ReplaceRunLines(ctx, run.ID, preview.Lines)
	default:
		err = s.upserter.MergeUpsertRunLines(ctx, run.ID, preview.Lines)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":    run.ID.String(),
		"reference": run.Reference,
		"month":     run.MonthKey,
		"mode":      req.Mode,
		"lines":     len(preview.Lines),
	})
}

type statusRequest struct {
	Status payoutdomain.RunStatus `json:"status" binding:"required"`
}

func (s *Server) updateRunStatus(c *gin.Context) {
	runID, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := s.upserter.UpdateRunStatus(c.Request.Context(), runID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": runID.String(), "status": req.Status})
}
