// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/vaibhavgupta5/ipl-auction/internal/team/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a new team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Team data"
// @Success 201 {object} model.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeamName) {
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrInvalidBudget) {
			errorResponse(c, "INVALID_REQUEST", "amount must be a decimal Crore value", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrTeamExists) {
			errorResponse(c, "TEAM_EXISTS", "team already exists", http.StatusConflict)
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListTeams handles GET /teams request.
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {object} model.TeamsResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team by id
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} model.TeamResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRoster handles GET /teams/:id/players request.
// @Summary Get a team's roster in purchase order
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} model.RosterResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams/{id}/players [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetRoster(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetRoster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting roster", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTeam handles DELETE /teams/:id request.
// @Summary Delete a team
// @Tags Teams
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTeam(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteTeam(c.Request.Context(), id); err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error deleting team", "team_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
