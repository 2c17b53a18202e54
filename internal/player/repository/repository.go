// Package repository provides data access layer for player module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// Create creates a new player.
	Create(ctx context.Context, player *playerModel.Player) (*playerModel.Player, error)

	// Upsert creates a player or overwrites an existing one with the same id.
	Upsert(ctx context.Context, player *playerModel.Player) (*playerModel.Player, error)

	// GetByID finds a player by id.
	GetByID(ctx context.Context, id string) (*playerModel.Player, error)

	// List returns all players.
	List(ctx context.Context) ([]playerModel.Player, error)

	// ListByStatus returns players with the given auction status.
	ListByStatus(ctx context.Context, status string) ([]playerModel.Player, error)

	// Delete removes a player by id.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new player.
func (r *repository) Create(ctx context.Context, player *playerModel.Player) (*playerModel.Player, error) {
	err := r.db.WithContext(ctx).Create(player).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, playerModel.ErrPlayerExists
		}
		return nil, err
	}
	return player, nil
}

// Upsert creates a player or overwrites an existing one with the same id.
func (r *repository) Upsert(ctx context.Context, player *playerModel.Player) (*playerModel.Player, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(player).Error
	if err != nil {
		return nil, err
	}
	return player, nil
}

// GetByID finds a player by id.
func (r *repository) GetByID(ctx context.Context, id string) (*playerModel.Player, error) {
	var player playerModel.Player
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// List returns all players ordered by name.
func (r *repository) List(ctx context.Context) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []playerModel.Player{}
	}
	return players, nil
}

// ListByStatus returns players with the given auction status ordered by name.
func (r *repository) ListByStatus(ctx context.Context, status string) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("name ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []playerModel.Player{}
	}
	return players, nil
}

// Delete removes a player by id.
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&playerModel.Player{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
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
