// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vaibhavgupta5/ipl-auction/internal/player/handler"
	"github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
	"github.com/vaibhavgupta5/ipl-auction/internal/player/service"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	players := r.Group("/players")
	{
		players.POST("", h.CreatePlayer)
		players.GET("", h.ListPlayers)
		players.GET("/:id", h.GetPlayer)
		players.DELETE("/:id", h.DeletePlayer)
	}
}
