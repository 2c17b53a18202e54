// Package service provides business logic layer for team module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	teamModel "github.com/vaibhavgupta5/ipl-auction/internal/team/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/team/repository"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// DefaultBudgetCrore is the starting budget used when a team is
// created without an amount, matching the team setup default.
const DefaultBudgetCrore = "100"

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a new team with an empty roster.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team with its roster player ids.
	GetTeam(ctx context.Context, id string) (*teamModel.TeamResponse, error)

	// ListTeams returns all teams with their roster player ids.
	ListTeams(ctx context.Context) (*teamModel.TeamsResponse, error)

	// GetRoster returns a team's roster resolved to full player records.
	GetRoster(ctx context.Context, id string) (*teamModel.RosterResponse, error)

	// DeleteTeam removes a team by id.
	DeleteTeam(ctx context.Context, id string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTeam creates a new team with an empty roster.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	if req.Name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	amount := req.Amount
	if amount == "" {
		amount = DefaultBudgetCrore
	}
	budgetLakh, err := money.ParseCrore(amount)
	if err != nil {
		return nil, teamModel.ErrInvalidBudget
	}

	shortName := req.ShortName
	if shortName == "" {
		shortName = deriveShortName(req.Name)
	}

	team := &teamModel.Team{
		ID:         uuid.NewString(),
		Name:       req.Name,
		ShortName:  shortName,
		Number:     req.Number,
		BudgetLakh: budgetLakh,
		Overseas:   0,
	}

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", created.ID, "name", created.Name, "budget_lakh", created.BudgetLakh)
	return teamModel.NewTeamResponse(created, nil), nil
}

// GetTeam returns a team with its roster player ids.
func (s *service) GetTeam(ctx context.Context, id string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	playerIDs, err := s.repo.GetRosterIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return teamModel.NewTeamResponse(team, playerIDs), nil
}

// ListTeams returns all teams with their roster player ids.
func (s *service) ListTeams(ctx context.Context) (*teamModel.TeamsResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		playerIDs, idsErr := s.repo.GetRosterIDs(ctx, teams[i].ID)
		if idsErr != nil {
			return nil, idsErr
		}
		responses = append(responses, *teamModel.NewTeamResponse(&teams[i], playerIDs))
	}

	return &teamModel.TeamsResponse{
		Teams: responses,
		Total: len(responses),
	}, nil
}

// GetRoster returns a team's roster resolved to full player records.
func (s *service) GetRoster(ctx context.Context, id string) (*teamModel.RosterResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.GetRosterPlayers(ctx, id)
	if err != nil {
		return nil, err
	}

	return &teamModel.RosterResponse{
		Team:    *team,
		Players: players,
		Total:   len(players),
	}, nil
}

// DeleteTeam removes a team by id.
func (s *service) DeleteTeam(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("team deleted", "team_id", id)
	return nil
}

// deriveShortName falls back to the first three letters uppercased.
func deriveShortName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	return strings.ToUpper(trimmed)
}
