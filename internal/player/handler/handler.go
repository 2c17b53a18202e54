// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreatePlayer handles POST /players request.
// @Summary Create a new player
// @Tags Players
// @Accept json
// @Produce json
// @Param request body model.CreatePlayerRequest true "Player data"
// @Success 201 {object} model.PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreatePlayer(c *gin.Context) {
	var req playerModel.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreatePlayer(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, playerModel.ErrInvalidPlayerName) {
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, playerModel.ErrPlayerExists) {
			errorResponse(c, "PLAYER_EXISTS", "player already exists", http.StatusConflict)
			return
		}
		h.logger.Errorw("error creating player", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListPlayers handles GET /players request with an optional status filter.
// @Summary List players
// @Tags Players
// @Produce json
// @Param status query string false "Filter by status (UNSOLD or SOLD)"
// @Success 200 {object} model.PlayersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListPlayers(c *gin.Context) {
	status := c.Query("status")

	resp, err := h.service.ListPlayers(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, playerModel.ErrInvalidStatus) {
			errorResponse(c, "INVALID_REQUEST", "status must be UNSOLD or SOLD", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error listing players", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPlayer handles GET /players/:id request.
// @Summary Get a player by id
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} model.PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetPlayer(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetPlayer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, playerModel.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error getting player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePlayer handles DELETE /players/:id request.
// @Summary Delete a player
// @Tags Players
// @Param id path string true "Player ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeletePlayer(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeletePlayer(c.Request.Context(), id); err != nil {
		if errors.Is(err, playerModel.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error deleting player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
