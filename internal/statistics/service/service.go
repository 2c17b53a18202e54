// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vaibhavgupta5/ipl-auction/internal/statistics/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/statistics/repository"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetTeamsStatistics returns auction statistics for all teams.
	GetTeamsStatistics(ctx context.Context) (*model.TeamsStatisticsResponse, error)

	// GetAuctionStatistics returns aggregate statistics for the player pool.
	GetAuctionStatistics(ctx context.Context) (*model.AuctionStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetTeamsStatistics returns auction statistics for all teams.
func (s *service) GetTeamsStatistics(ctx context.Context) (*model.TeamsStatisticsResponse, error) {
	s.logger.Debugw("GetTeamsStatistics called")

	teams, err := s.repo.GetTeamsStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetTeamsStatistics failed", "error", err)
		return nil, err
	}

	for i := range teams {
		teams[i].Budget = money.Format(teams[i].BudgetLakh)
		teams[i].Spent = money.Format(teams[i].SpentLakh)
	}

	s.logger.Infow("GetTeamsStatistics completed", "count", len(teams))
	return &model.TeamsStatisticsResponse{
		Teams: teams,
		Total: len(teams),
	}, nil
}

// GetAuctionStatistics returns aggregate statistics for the player pool.
func (s *service) GetAuctionStatistics(ctx context.Context) (*model.AuctionStatisticsResponse, error) {
	s.logger.Debugw("GetAuctionStatistics called")

	stats, err := s.repo.GetAuctionStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetAuctionStatistics failed", "error", err)
		return nil, err
	}

	stats.TotalSpent = money.Format(stats.TotalSpentLakh)
	if stats.SoldPlayers > 0 {
		stats.AveragePriceLakh = stats.TotalSpentLakh / int64(stats.SoldPlayers)
		stats.TopSale = money.Format(stats.TopSaleLakh)
	}
	stats.AveragePrice = money.Format(stats.AveragePriceLakh)

	s.logger.Infow("GetAuctionStatistics completed", "total_players", stats.TotalPlayers)
	return &model.AuctionStatisticsResponse{
		Statistics: *stats,
	}, nil
}
