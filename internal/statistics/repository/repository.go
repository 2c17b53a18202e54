// Package repository provides data access layer for statistics module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vaibhavgupta5/ipl-auction/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamsStatistics returns auction statistics for all teams.
	GetTeamsStatistics(ctx context.Context) ([]model.TeamStatistics, error)

	// GetAuctionStatistics returns aggregate statistics for the player pool.
	GetAuctionStatistics(ctx context.Context) (*model.AuctionStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTeamsStatistics returns auction statistics for all teams.
func (r *repository) GetTeamsStatistics(ctx context.Context) ([]model.TeamStatistics, error) {
	r.logger.Debugw("GetTeamsStatistics called")

	var stats []model.TeamStatistics

	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`
			teams.id as team_id,
			teams.name,
			teams.short_name,
			teams.number,
			teams.budget_lakh,
			teams.overseas,
			COALESCE(SUM(players.sold_price_lakh), 0) as spent_lakh,
			COUNT(players.id) as roster_size,
			SUM(CASE WHEN players.role = 'Batter' THEN 1 ELSE 0 END) as batters,
			SUM(CASE WHEN players.role = 'Bowler' THEN 1 ELSE 0 END) as bowlers,
			SUM(CASE WHEN players.role = 'All-Rounder' THEN 1 ELSE 0 END) as all_rounders,
			SUM(CASE WHEN players.role = 'Wicketkeeper' THEN 1 ELSE 0 END) as wicketkeepers,
			COALESCE(SUM(players.credits), 0) as total_credits
		`).
		Joins("LEFT JOIN players ON players.sold_to = teams.id AND players.status = 'SOLD'").
		Group("teams.id, teams.name, teams.short_name, teams.number, teams.budget_lakh, teams.overseas").
		Order("teams.number ASC, teams.name ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetTeamsStatistics database error", "error", err)
		return nil, err
	}

	if stats == nil {
		stats = []model.TeamStatistics{}
	}

	r.logger.Debugw("GetTeamsStatistics completed", "count", len(stats))
	return stats, nil
}

// GetAuctionStatistics returns aggregate statistics for the player pool.
func (r *repository) GetAuctionStatistics(ctx context.Context) (*model.AuctionStatistics, error) {
	r.logger.Debugw("GetAuctionStatistics called")

	var result struct {
		TotalPlayers   int64 `gorm:"column:total_players"`
		SoldPlayers    int64 `gorm:"column:sold_players"`
		UnsoldPlayers  int64 `gorm:"column:unsold_players"`
		OverseasSold   int64 `gorm:"column:overseas_sold"`
		TotalSpentLakh int64 `gorm:"column:total_spent_lakh"`
	}

	err := r.db.WithContext(ctx).
		Table("players").
		Select(`
			COUNT(*) as total_players,
			COALESCE(SUM(CASE WHEN status = 'SOLD' THEN 1 ELSE 0 END), 0) as sold_players,
			COALESCE(SUM(CASE WHEN status = 'UNSOLD' THEN 1 ELSE 0 END), 0) as unsold_players,
			COALESCE(SUM(CASE WHEN status = 'SOLD' AND is_overseas THEN 1 ELSE 0 END), 0) as overseas_sold,
			COALESCE(SUM(CASE WHEN status = 'SOLD' THEN sold_price_lakh ELSE 0 END), 0) as total_spent_lakh
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetAuctionStatistics database error", "error", err)
		return nil, err
	}

	stats := &model.AuctionStatistics{
		TotalPlayers:   int(result.TotalPlayers),
		SoldPlayers:    int(result.SoldPlayers),
		UnsoldPlayers:  int(result.UnsoldPlayers),
		OverseasSold:   int(result.OverseasSold),
		TotalSpentLakh: result.TotalSpentLakh,
	}

	var topSale struct {
		Name          string `gorm:"column:name"`
		SoldPriceLakh int64  `gorm:"column:sold_price_lakh"`
	}
	err = r.db.WithContext(ctx).
		Table("players").
		Select("name, sold_price_lakh").
		Where("status = 'SOLD'").
		Order("sold_price_lakh DESC, name ASC").
		Limit(1).
		Take(&topSale).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Errorw("GetAuctionStatistics top sale query error", "error", err)
		return nil, err
	}
	stats.TopSalePlayer = topSale.Name
	stats.TopSaleLakh = topSale.SoldPriceLakh

	r.logger.Debugw("GetAuctionStatistics completed", "total_players", stats.TotalPlayers)
	return stats, nil
}
