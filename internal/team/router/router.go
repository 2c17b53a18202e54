// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vaibhavgupta5/ipl-auction/internal/team/handler"
	"github.com/vaibhavgupta5/ipl-auction/internal/team/repository"
	"github.com/vaibhavgupta5/ipl-auction/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	{
		teams.POST("", h.CreateTeam)
		teams.GET("", h.ListTeams)
		teams.GET("/:id", h.GetTeam)
		teams.GET("/:id/players", h.GetRoster)
		teams.DELETE("/:id", h.DeleteTeam)
	}
}
