// Package service provides business logic layer for player module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// Service defines the interface for player business logic operations.
type Service interface {
	// CreatePlayer creates a new player from a manual entry.
	CreatePlayer(ctx context.Context, req *playerModel.CreatePlayerRequest) (*playerModel.PlayerResponse, error)

	// GetPlayer returns a player by id.
	GetPlayer(ctx context.Context, id string) (*playerModel.PlayerResponse, error)

	// ListPlayers returns all players, optionally filtered by auction status.
	ListPlayers(ctx context.Context, status string) (*playerModel.PlayersResponse, error)

	// DeletePlayer removes a player by id.
	DeletePlayer(ctx context.Context, id string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreatePlayer creates a new player from a manual entry.
func (s *service) CreatePlayer(ctx context.Context, req *playerModel.CreatePlayerRequest) (*playerModel.PlayerResponse, error) {
	if req.Name == "" {
		return nil, playerModel.ErrInvalidPlayerName
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	player := &playerModel.Player{
		ID:            playerModel.SlugID(req.Name, year),
		Name:          req.Name,
		Role:          req.Role,
		IsOverseas:    req.IsOverseas,
		ImageURL:      req.ImageURL,
		Status:        playerModel.StatusUnsold,
		BasePriceLakh: money.FromCrore(req.BasePrice),
		Credits:       req.Credits,
		Year:          year,

		BattingMatches:       req.BattingMatches,
		BattingNotOuts:       req.BattingNotOuts,
		BattingRuns:          req.BattingRuns,
		BattingHighScore:     req.BattingHighScore,
		BattingAverage:       req.BattingAverage,
		BallsFaced:           req.BallsFaced,
		BattingStrikeRate:    req.BattingStrikeRate,
		BattingCenturies:     req.BattingCenturies,
		BattingHalfCenturies: req.BattingHalfCenturies,
		Fours:                req.Fours,
		Sixes:                req.Sixes,
		Catches:              req.Catches,
		Stumpings:            req.Stumpings,

		BowlingMatches:    req.BowlingMatches,
		BallsBowled:       req.BallsBowled,
		RunsConceded:      req.RunsConceded,
		Wickets:           req.Wickets,
		BestBowling:       req.BestBowling,
		BowlingAverage:    req.BowlingAverage,
		Economy:           req.Economy,
		BowlingStrikeRate: req.BowlingStrikeRate,
		FourWicketHauls:   req.FourWicketHauls,
		FiveWicketHauls:   req.FiveWicketHauls,
	}
	if player.BestBowling == "" {
		player.BestBowling = "0/0"
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player created", "player_id", created.ID, "name", created.Name)
	return playerModel.NewPlayerResponse(created), nil
}

// GetPlayer returns a player by id.
func (s *service) GetPlayer(ctx context.Context, id string) (*playerModel.PlayerResponse, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return playerModel.NewPlayerResponse(player), nil
}

// ListPlayers returns all players, optionally filtered by auction status.
func (s *service) ListPlayers(ctx context.Context, status string) (*playerModel.PlayersResponse, error) {
	var (
		players []playerModel.Player
		err     error
	)

	switch status {
	case "":
		players, err = s.repo.List(ctx)
	case playerModel.StatusUnsold, playerModel.StatusSold:
		players, err = s.repo.ListByStatus(ctx, status)
	default:
		return nil, playerModel.ErrInvalidStatus
	}
	if err != nil {
		return nil, err
	}

	return &playerModel.PlayersResponse{
		Players: players,
		Total:   len(players),
	}, nil
}

// DeletePlayer removes a player by id.
func (s *service) DeletePlayer(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("player deleted", "player_id", id)
	return nil
}
