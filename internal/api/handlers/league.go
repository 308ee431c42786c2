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

// LeagueHandler handles HTTP requests for leagues
type LeagueHandler struct {
	service service.LeagueServiceInterface
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(service service.LeagueServiceInterface) *LeagueHandler {
	return &LeagueHandler{service: service}
}

// CreateLeague handles POST /api/v1/leagues
// @Summary Create a new league
// @Description Register a tracked league with its twenty teams in declared order
// @Tags leagues
// @Accept json
// @Produce json
// @Param league body service.CreateLeagueRequest true "League data"
// @Success 201 {object} service.LeagueResponse "Successfully created league"
// @Failure 400 {object} map[string]interface{} "Invalid request body or team list"
// @Failure 409 {object} map[string]interface{} "League already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leagues [post]
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req service.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	league, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create league", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, league)
}

// GetLeague handles GET /api/v1/leagues/:id
// @Summary Get league by ID
// @Description Get a specific league by its UUID
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 200 {object} service.LeagueResponse "Successfully retrieved league"
// @Failure 400 {object} map[string]interface{} "Invalid league ID"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leagues/{id} [get]
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	league, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get league", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, league)
}

// GetLeagueByName handles GET /api/v1/leagues/by-name/:name
// @Summary Get league by name
// @Description Get a specific league by its name
// @Tags leagues
// @Accept json
// @Produce json
// @Param name path string true "League name"
// @Success 200 {object} service.LeagueResponse "Successfully retrieved league"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leagues/by-name/{name} [get]
func (h *LeagueHandler) GetLeagueByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "League name is required"})
		return
	}

	league, err := h.service.GetByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get league", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, league)
}

// ListLeagues handles GET /api/v1/leagues
// @Summary List leagues
// @Description List all tracked leagues with pagination
// @Tags leagues
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.LeagueListResponse "Successfully retrieved leagues"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leagues, err := h.service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leagues", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leagues)
}

// SubmitResult handles POST /api/v1/leagues/:id/results
// @Summary Submit a final score
// @Description Record a finished fixture for a league. Each ordered pairing accepts exactly one result.
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Param result body service.SubmitResultRequest true "Final score"
// @Success 201 {object} service.LeagueResponse "Result recorded"
// @Failure 400 {object} map[string]interface{} "Invalid result"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id}/results [post]
func (h *LeagueHandler) SubmitResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	var req service.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	league, err := h.service.SubmitResult(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit result", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, league)
}

// GetTable handles GET /api/v1/leagues/:id/table
// @Summary Get the league table
// @Description Get the standings sorted by points, goal difference, goals scored and name
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 200 {object} service.TableResponse "Successfully retrieved table"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leagues/{id}/table [get]
func (h *LeagueHandler) GetTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	table, err := h.service.Table(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get table", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, table)
}

// GetRemaining handles GET /api/v1/leagues/:id/remaining
// @Summary Get remaining fixtures
// @Description List the unplayed ordered pairings of a league
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 200 {object} service.RemainingResponse "Successfully retrieved fixtures"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leagues/{id}/remaining [get]
func (h *LeagueHandler) GetRemaining(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	remaining, err := h.service.Remaining(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get remaining fixtures", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, remaining)
}

// DeleteLeague handles DELETE /api/v1/leagues/:id
// @Summary Delete a league
// @Description Delete a league, its results and its cached snapshots
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID (UUID)"
// @Success 204 "League deleted"
// @Failure 404 {object} map[string]interface{} "League not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /leagues/{id} [delete]
func (h *LeagueHandler) DeleteLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid league ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrLeagueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete league", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
