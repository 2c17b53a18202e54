package model

import "errors"

var (
	// ErrPlayerExists indicates that a player with the given id already exists.
	ErrPlayerExists = errors.New("player already exists")
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPlayerName indicates that the provided player name is invalid (e.g., empty).
	ErrInvalidPlayerName = errors.New("invalid player name")
	// ErrInvalidStatus indicates an unrecognised auction status value.
	ErrInvalidStatus = errors.New("invalid player status")
)
