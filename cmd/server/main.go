// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	auctionRouter "github.com/vaibhavgupta5/ipl-auction/internal/auction/router"
	"github.com/vaibhavgupta5/ipl-auction/internal/config"
	"github.com/vaibhavgupta5/ipl-auction/internal/database/database"
	"github.com/vaibhavgupta5/ipl-auction/internal/database/migrate"
	"github.com/vaibhavgupta5/ipl-auction/internal/health"
	importerRouter "github.com/vaibhavgupta5/ipl-auction/internal/importer/router"
	"github.com/vaibhavgupta5/ipl-auction/internal/middleware"
	playerRouter "github.com/vaibhavgupta5/ipl-auction/internal/player/router"
	statisticsRouter "github.com/vaibhavgupta5/ipl-auction/internal/statistics/router"
	teamRouter "github.com/vaibhavgupta5/ipl-auction/internal/team/router"
	"github.com/vaibhavgupta5/ipl-auction/pkg/logger"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New()
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Migrate(db); err != nil {
		zl.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zl))
	r.Use(middleware.Recovery(zl))

	r.GET("/health", health.New(db, zl).Check)
	playerRouter.RegisterRoutes(r, db, zl)
	teamRouter.RegisterRoutes(r, db, zl)
	auctionRouter.RegisterRoutes(r, db, cfg.Auction, zl)
	importerRouter.RegisterRoutes(r, db, zl)
	statisticsRouter.RegisterRoutes(r, db, zl)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zl.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Infow("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Errorw("server shutdown failed", "error", err)
	}
}
