package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agencyhq/backoffice/internal/monthindex"
	payoutdomain "github.com/agencyhq/backoffice/internal/payout/domain"
)

// respondError maps engine errors onto HTTP statuses. The configuration
// ambiguity is a 422: the request was fine, the stored configuration is
// not.
func respondError(c *gin.Context, err error) {
	switch {
	case payoutdomain.IsConfigurationError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, monthindex.ErrUnresolvableMonth):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unresolvable month key"})
	case errors.Is(err, payoutdomain.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "payout run not found"})
	case errors.Is(err, payoutdomain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, payoutdomain.ErrMissingFxRate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no usable fx rate"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
