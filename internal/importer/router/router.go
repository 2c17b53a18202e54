// Package router provides importer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vaibhavgupta5/ipl-auction/internal/importer/handler"
	"github.com/vaibhavgupta5/ipl-auction/internal/importer/service"
	playerRepository "github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
)

// RegisterRoutes registers importer module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	playerRepo := playerRepository.New(db)
	svc := service.New(playerRepo, logger)
	h := handler.New(svc, logger)

	imports := r.Group("/import")
	{
		imports.GET("/fields", h.ListFields)
		imports.POST("/players", h.ImportPlayers)
	}
}
