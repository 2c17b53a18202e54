// Package handler provides HTTP handlers for the auction room.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auctionModel "github.com/vaibhavgupta5/ipl-auction/internal/auction/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/auction/service"
	teamModel "github.com/vaibhavgupta5/ipl-auction/internal/team/model"
)

// Handler handles HTTP requests for auction endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auction handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Start handles POST /auction/start request.
// @Summary Start an auction session from the unsold player pool
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/start [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Start(c *gin.Context) {
	resp, err := h.service.Start(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error starting auction", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// State handles GET /auction/state request.
// @Summary Get the current auction room state
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/state [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) State(c *gin.Context) {
	h.stateOp(c, h.service.State, "error reading auction state")
}

// Next handles POST /auction/next request.
// @Summary Advance the queue to the next player
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/next [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Next(c *gin.Context) {
	h.stateOp(c, h.service.Next, "error advancing auction")
}

// Prev handles POST /auction/prev request.
// @Summary Rewind the queue to the previous player
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/prev [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Prev(c *gin.Context) {
	h.stateOp(c, h.service.Prev, "error rewinding auction")
}

// OpenBidding handles POST /auction/open request.
// @Summary Open bidding for the current player at their base price
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/open [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) OpenBidding(c *gin.Context) {
	h.stateOp(c, h.service.OpenBidding, "error opening bidding")
}

// IncrementBid handles POST /auction/bid request.
// @Summary Raise the current bid by the ladder increment
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/bid [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) IncrementBid(c *gin.Context) {
	h.stateOp(c, h.service.IncrementBid, "error incrementing bid")
}

// SelectTeam handles POST /auction/team request.
// @Summary Select the team the current bid is attributed to
// @Tags Auction
// @Accept json
// @Produce json
// @Param request body model.SelectTeamRequest true "Team selection"
// @Success 200 {object} model.StateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/team [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SelectTeam(c *gin.Context) {
	var req auctionModel.SelectTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SelectTeam(c.Request.Context(), req.TeamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		h.handleStateError(c, err, "error selecting team")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Sold handles POST /auction/sold request.
// @Summary Commit the sale of the current player to the selected team
// @Tags Auction
// @Produce json
// @Success 200 {object} model.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/sold [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Sold(c *gin.Context) {
	resp, err := h.service.Sold(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, auctionModel.ErrNoTeamSelected):
			errorResponse(c, "NO_TEAM_SELECTED", "no team selected", http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, "TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, auctionModel.ErrOverseasLimitExceeded):
			errorResponse(c, "OVERSEAS_LIMIT_EXCEEDED", "team overseas player limit reached", http.StatusConflict)
		case errors.Is(err, auctionModel.ErrInsufficientBudget):
			errorResponse(c, "INSUFFICIENT_BUDGET", "team budget cannot cover the bid", http.StatusConflict)
		default:
			h.handleStateError(c, err, "error committing sale")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Unsold handles POST /auction/unsold request.
// @Summary Mark the current player unsold and advance the queue
// @Tags Auction
// @Produce json
// @Success 200 {object} model.StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auction/unsold [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Unsold(c *gin.Context) {
	h.stateOp(c, h.service.Unsold, "error recording unsold")
}

func (h *Handler) stateOp(c *gin.Context, op func(context.Context) (*auctionModel.StateResponse, error), logMsg string) {
	resp, err := op(c.Request.Context())
	if err != nil {
		h.handleStateError(c, err, logMsg)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleStateError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, auctionModel.ErrNoActiveSession):
		errorResponse(c, "NO_ACTIVE_SESSION", "no auction session, start one first", http.StatusConflict)
	case errors.Is(err, auctionModel.ErrNoPlayersAvailable):
		errorResponse(c, "NO_PLAYERS_AVAILABLE", "no players in the auction queue", http.StatusConflict)
	case errors.Is(err, auctionModel.ErrBiddingNotOpen):
		errorResponse(c, "BIDDING_NOT_OPEN", "bidding is not open for the current player", http.StatusConflict)
	case errors.Is(err, auctionModel.ErrBiddingAlreadyOpen):
		errorResponse(c, "BIDDING_ALREADY_OPEN", "bidding is already open", http.StatusConflict)
	case errors.Is(err, auctionModel.ErrPlayerAlreadyResolved):
		errorResponse(c, "PLAYER_ALREADY_RESOLVED", "current player has already been resolved", http.StatusConflict)
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
