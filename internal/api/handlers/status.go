package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StatusHandler handles HTTP requests for league status snapshots
type StatusHandler struct {
	service service.StatusServiceInterface
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service service.StatusServiceInterface) *StatusHandler {
	return &StatusHandler{service: service}
}

// GetStatus handles GET /api/v1/leagues/:id/status
// @Summary Get the league status snapshot
// @Description Get the full snapshot: sorted table, guaranteed top-4 and safety verdicts, and Monte Carlo probabilities. Identical league state and parameters always give an identical snapshot.
// @Tags status
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param sims query int false "Number of simulated season playouts" default(20000)
// @Param seed query int false "Random seed for reproducible sampling" default(12345)
// @Success 200 {object} snapshot.Snapshot "Successfully composed snapshot"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leagues/{id}/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	sims, err := strconv.Atoi(c.DefaultQuery("sims", "0"))
	if err != nil || sims < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sims parameter"})
		return
	}
	seed, err := strconv.ParseInt(c.DefaultQuery("seed", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seed parameter"})
		return
	}

	snap, err := h.service.GetStatus(c.Request.Context(), id, sims, seed)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsSamplingParameter(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose status snapshot", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snap)
}
