// Package model provides domain models and DTOs for the auction room.
package model

import "errors"

var (
	// ErrNoActiveSession indicates that no auction session has been started.
	ErrNoActiveSession = errors.New("no active auction session")
	// ErrNoPlayersAvailable indicates that the queue has no players eligible for auction.
	ErrNoPlayersAvailable = errors.New("no players available")
	// ErrBiddingNotOpen indicates an action that requires an opened bid.
	ErrBiddingNotOpen = errors.New("bidding is not open for this player")
	// ErrBiddingAlreadyOpen indicates that bidding was already opened for the active player.
	ErrBiddingAlreadyOpen = errors.New("bidding already open for this player")
	// ErrNoTeamSelected indicates a sale attempt without a selected team.
	ErrNoTeamSelected = errors.New("no team selected")
	// ErrPlayerAlreadyResolved indicates the active player was already sold or passed this session.
	ErrPlayerAlreadyResolved = errors.New("player already resolved")
	// ErrOverseasLimitExceeded indicates the team has reached its overseas player quota.
	ErrOverseasLimitExceeded = errors.New("overseas player limit exceeded")
	// ErrInsufficientBudget indicates the team cannot afford the sale price.
	ErrInsufficientBudget = errors.New("insufficient budget")
)
