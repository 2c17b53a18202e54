// Package service implements the auction room: the player queue, the
// bid ladder and the sale resolver. It is the only place that mutates
// team and player records during an auction.
package service

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auctionModel "github.com/vaibhavgupta5/ipl-auction/internal/auction/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/config"
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	playerRepository "github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
	teamRepository "github.com/vaibhavgupta5/ipl-auction/internal/team/repository"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// Service defines the auction room operations. A single operator
// drives the room; calls are serialized by an internal lock.
type Service interface {
	// Start loads a fresh queue of unsold players and opens a session.
	Start(ctx context.Context) (*auctionModel.StateResponse, error)

	// State returns the current room snapshot.
	State(ctx context.Context) (*auctionModel.StateResponse, error)

	// Next advances to the next player, wrapping past the end.
	Next(ctx context.Context) (*auctionModel.StateResponse, error)

	// Prev moves to the previous player, wrapping past the start.
	Prev(ctx context.Context) (*auctionModel.StateResponse, error)

	// OpenBidding opens the bid ladder at the player's base price.
	OpenBidding(ctx context.Context) (*auctionModel.StateResponse, error)

	// IncrementBid raises the current bid by the tier step.
	IncrementBid(ctx context.Context) (*auctionModel.StateResponse, error)

	// SelectTeam records the team a pending sale would go to.
	SelectTeam(ctx context.Context, teamID string) (*auctionModel.StateResponse, error)

	// Sold commits the sale of the active player to the selected team
	// at the current bid, then schedules the auto-advance.
	Sold(ctx context.Context) (*auctionModel.SaleResponse, error)

	// Unsold records the active player as unsold and advances.
	Unsold(ctx context.Context) (*auctionModel.StateResponse, error)
}

type service struct {
	db         *gorm.DB
	playerRepo playerRepository.Repository
	teamRepo   teamRepository.Repository
	cfg        config.AuctionConfig
	clock      clockwork.Clock
	logger     *zap.SugaredLogger

	mu      sync.Mutex
	session *Session
}

// New creates a new auction service instance.
func New(
	db *gorm.DB,
	playerRepo playerRepository.Repository,
	teamRepo teamRepository.Repository,
	cfg config.AuctionConfig,
	clock clockwork.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		db:         db,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		cfg:        cfg,
		clock:      clock,
		logger:     logger,
	}
}

// Start loads a fresh queue of unsold players and opens a session.
// Starting again reloads the queue, which is how resolved players
// leave the room.
func (s *service) Start(ctx context.Context) (*auctionModel.StateResponse, error) {
	players, err := s.playerRepo.ListByStatus(ctx, playerModel.StatusUnsold)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = NewSession(players)
	s.logger.Infow("auction session started", "queue_size", len(players))
	return s.stateLocked(), nil
}

// State returns the current room snapshot.
func (s *service) State(ctx context.Context) (*auctionModel.StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, auctionModel.ErrNoActiveSession
	}
	return s.stateLocked(), nil
}

// Next advances to the next player, wrapping past the end.
func (s *service) Next(ctx context.Context) (*auctionModel.StateResponse, error) {
	return s.advance(1)
}

// Prev moves to the previous player, wrapping past the start.
func (s *service) Prev(ctx context.Context) (*auctionModel.StateResponse, error) {
	return s.advance(-1)
}

func (s *service) advance(delta int) (*auctionModel.StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, auctionModel.ErrNoActiveSession
	}
	if s.session.Current() == nil {
		return nil, auctionModel.ErrNoPlayersAvailable
	}

	s.session.Advance(delta)
	return s.stateLocked(), nil
}

// OpenBidding opens the bid ladder at the player's base price, falling
// back to the configured default when the base price is absent.
func (s *service) OpenBidding(ctx context.Context) (*auctionModel.StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.activePlayerLocked()
	if err != nil {
		return nil, err
	}
	if s.session.ladder.IsOpen() {
		return nil, auctionModel.ErrBiddingAlreadyOpen
	}

	s.session.ladder.Open(player.BasePriceLakh, s.cfg.DefaultBasePriceLakh)
	s.logger.Infow("bidding opened",
		"player_id", player.ID,
		"opening_bid_lakh", s.session.ladder.Current(),
	)
	return s.stateLocked(), nil
}

// IncrementBid raises the current bid by the tier step.
func (s *service) IncrementBid(ctx context.Context) (*auctionModel.StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.activePlayerLocked()
	if err != nil {
		return nil, err
	}
	if !s.session.ladder.IsOpen() {
		return nil, auctionModel.ErrBiddingNotOpen
	}

	bid := s.session.ladder.Increment()
	s.logger.Debugw("bid incremented", "player_id", player.ID, "bid_lakh", bid)
	return s.stateLocked(), nil
}

// SelectTeam records the team a pending sale would go to. The team
// must exist at selection time; it is read again at commit time.
func (s *service) SelectTeam(ctx context.Context, teamID string) (*auctionModel.StateResponse, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.activePlayerLocked(); err != nil {
		return nil, err
	}

	s.session.selectedTeam = teamID
	return s.stateLocked(), nil
}

// Sold commits the sale of the active player to the selected team at
// the current bid, then schedules the auto-advance.
func (s *service) Sold(ctx context.Context) (*auctionModel.SaleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.activePlayerLocked()
	if err != nil {
		return nil, err
	}
	if !s.session.ladder.IsOpen() {
		return nil, auctionModel.ErrBiddingNotOpen
	}
	if s.session.selectedTeam == "" {
		return nil, auctionModel.ErrNoTeamSelected
	}

	priceLakh := s.session.ladder.Current()
	team, err := s.resolveSale(ctx, player, s.session.selectedTeam, priceLakh)
	if err != nil {
		return nil, err
	}

	s.session.MarkResolved()
	sale := auctionModel.NewSaleResult(player.ID, player.Name, team.ID, team.Name, priceLakh)
	s.logger.Infow("player sold",
		"player_id", player.ID,
		"team_id", team.ID,
		"price", money.Format(priceLakh),
	)

	// The SOLD announcement stays up for the configured delay, then
	// the queue advances on its own unless the operator navigated
	// first.
	gen := s.session.timerGen
	s.clock.AfterFunc(s.cfg.AdvanceDelay, func() {
		s.autoAdvance(gen)
	})

	return &auctionModel.SaleResponse{
		Sale:  sale,
		State: *s.stateLocked(),
	}, nil
}

// Unsold records the active player as unsold and advances immediately.
func (s *service) Unsold(ctx context.Context) (*auctionModel.StateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.activePlayerLocked()
	if err != nil {
		return nil, err
	}
	if !s.session.ladder.IsOpen() {
		return nil, auctionModel.ErrBiddingNotOpen
	}

	if err := s.resolveUnsold(ctx, player); err != nil {
		return nil, err
	}

	s.session.MarkResolved()
	s.logger.Infow("player unsold", "player_id", player.ID)
	s.session.Advance(1)
	return s.stateLocked(), nil
}

// autoAdvance fires after a sale; a stale generation means the
// operator already navigated and the advance is dropped.
func (s *service) autoAdvance(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.timerGen != gen {
		return
	}
	s.session.Advance(1)
}

// activePlayerLocked validates the session and returns the active,
// still-unresolved player. Callers must hold the lock.
func (s *service) activePlayerLocked() (*playerModel.Player, error) {
	if s.session == nil {
		return nil, auctionModel.ErrNoActiveSession
	}
	player := s.session.Current()
	if player == nil {
		return nil, auctionModel.ErrNoPlayersAvailable
	}
	if s.session.CurrentResolved() {
		return nil, auctionModel.ErrPlayerAlreadyResolved
	}
	return player, nil
}

// stateLocked builds the room snapshot. Callers must hold the lock.
func (s *service) stateLocked() *auctionModel.StateResponse {
	player := s.session.Current()
	if player == nil {
		return &auctionModel.StateResponse{NoPlayers: true}
	}

	state := &auctionModel.StateResponse{
		Index:        s.session.queue.Index(),
		Total:        s.session.queue.Len(),
		Player:       player,
		SelectedTeam: s.session.selectedTeam,
		Resolved:     s.session.CurrentResolved(),
	}
	if s.session.ladder.IsOpen() {
		bid := s.session.ladder.Current()
		state.BiddingOpen = true
		state.CurrentBidLakh = bid
		state.CurrentBid = money.Format(bid)
		state.NextIncrementLakh = NextIncrement(bid)
	}
	return state
}
