// Package router provides auction module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vaibhavgupta5/ipl-auction/internal/auction/handler"
	"github.com/vaibhavgupta5/ipl-auction/internal/auction/service"
	"github.com/vaibhavgupta5/ipl-auction/internal/config"
	playerRepository "github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
	teamRepository "github.com/vaibhavgupta5/ipl-auction/internal/team/repository"
)

// RegisterRoutes registers auction module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.AuctionConfig, logger *zap.SugaredLogger) {
	playerRepo := playerRepository.New(db)
	teamRepo := teamRepository.New(db)
	svc := service.New(db, playerRepo, teamRepo, cfg, clockwork.NewRealClock(), logger)
	h := handler.New(svc, logger)

	auction := r.Group("/auction")
	{
		auction.POST("/start", h.Start)
		auction.GET("/state", h.State)
		auction.POST("/next", h.Next)
		auction.POST("/prev", h.Prev)
		auction.POST("/open", h.OpenBidding)
		auction.POST("/bid", h.IncrementBid)
		auction.POST("/team", h.SelectTeam)
		auction.POST("/sold", h.Sold)
		auction.POST("/unsold", h.Unsold)
	}
}
