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

// SyncHandler handles HTTP requests for provider syncs
type SyncHandler struct {
	service service.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(service service.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{service: service}
}

// Sync handles POST /api/v1/leagues/:id/sync
// @Summary Sync results from an upstream provider
// @Description Fetch finished matches from football-data.org or API-FOOTBALL and append the ones the league is missing. Locally recorded results are never overwritten.
// @Tags sync
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param provider query string false "Provider name" Enums(football-data, api-football) default(football-data)
// @Param season query int false "Season starting year, e.g. 2025"
// @Success 200 {object} service.SyncResponse "Sync summary"
// @Failure 400 {object} map[string]interface{} "Unknown provider or bad parameters"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 502 {object} map[string]interface{} "Provider failure"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id}/sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	season, err := strconv.Atoi(c.DefaultQuery("season", "0"))
	if err != nil || season < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season parameter"})
		return
	}

	resp, err := h.service.Sync(c.Request.Context(), id, c.Query("provider"), season)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeagueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnknownProvider), errors.Is(err, apperrors.ErrSeasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsProvider(err):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync results", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
