package handlers

import (
	"errors"
	"net/http"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublishHandler handles HTTP requests for snapshot publishing
type PublishHandler struct {
	service service.PublishServiceInterface
}

// NewPublishHandler creates a new publish handler
func NewPublishHandler(service service.PublishServiceInterface) *PublishHandler {
	return &PublishHandler{service: service}
}

// Publish handles POST /api/v1/leagues/:id/publish
// @Summary Publish the league snapshot
// @Description Compose (or reuse) the snapshot and push it to a file, a GitHub gist or an S3 bucket
// @Tags publish
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param publish body service.PublishRequest true "Publish target"
// @Success 200 {object} service.PublishResponse "Publish location"
// @Failure 400 {object} map[string]interface{} "Unknown publish mode"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id}/publish [post]
func (h *PublishHandler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	var req service.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Publish(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeagueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnknownPublishMode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish snapshot", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
