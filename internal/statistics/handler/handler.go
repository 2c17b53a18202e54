// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vaibhavgupta5/ipl-auction/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeamsStatistics handles GET /statistics/teams request.
// @Summary Get auction statistics for all teams
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.TeamsStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeamsStatistics(c *gin.Context) {
	resp, err := h.service.GetTeamsStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting teams statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAuctionStatistics handles GET /statistics/auction request.
// @Summary Get aggregate statistics for the auction pool
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.AuctionStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/auction [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetAuctionStatistics(c *gin.Context) {
	resp, err := h.service.GetAuctionStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting auction statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
