// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	teamModel "github.com/vaibhavgupta5/ipl-auction/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// List returns all teams ordered by jersey number.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetRosterIDs returns the team's owned player id list in
	// acquisition order.
	GetRosterIDs(ctx context.Context, teamID string) ([]string, error)

	// GetRosterPlayers returns the team's roster resolved to full
	// player records, in acquisition order. References are always
	// resolved here; callers never see a bare id / record union.
	GetRosterPlayers(ctx context.Context, teamID string) ([]playerModel.Player, error)

	// Delete removes a team and its roster rows by id.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, teamModel.ErrTeamExists
		}
		return nil, err
	}
	return team, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// List returns all teams ordered by jersey number.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("number ASC, name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// GetRosterIDs returns the team's owned player id list in acquisition order.
func (r *repository) GetRosterIDs(ctx context.Context, teamID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("team_players").
		Select("player_id").
		Where("team_id = ?", teamID).
		Order("position ASC").
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// GetRosterPlayers returns the team's roster resolved to full player records.
func (r *repository) GetRosterPlayers(ctx context.Context, teamID string) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Table("players").
		Select("players.*").
		Joins("JOIN team_players ON team_players.player_id = players.id").
		Where("team_players.team_id = ?", teamID).
		Order("team_players.position ASC").
		Scan(&players).Error
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []playerModel.Player{}
	}
	return players, nil
}

// Delete removes a team and its roster rows by id.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&teamModel.RosterEntry{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&teamModel.Team{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return teamModel.ErrTeamNotFound
		}
		return nil
	})
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
