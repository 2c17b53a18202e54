package service

import (
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
)

// Session is the transient, in-memory state of one auction room: the
// queue position, the bid ladder, the selected team and which players
// were resolved this session. It is not persisted; a restart loses
// only in-progress bidding for the active player. All access goes
// through the service, which holds the lock.
type Session struct {
	queue        *Queue
	ladder       Ladder
	selectedTeam string
	resolved     map[string]bool

	// timerGen invalidates a scheduled auto-advance when navigation
	// happens before it fires.
	timerGen uint64
}

// NewSession builds a session over an ordered queue snapshot.
func NewSession(players []playerModel.Player) *Session {
	return &Session{
		queue:    NewQueue(players),
		resolved: make(map[string]bool),
	}
}

// Current returns the active player, or nil for an empty queue.
func (s *Session) Current() *playerModel.Player {
	return s.queue.Current()
}

// CurrentResolved reports whether the active player was already sold
// or passed during this session.
func (s *Session) CurrentResolved() bool {
	p := s.queue.Current()
	return p != nil && s.resolved[p.ID]
}

// MarkResolved records the active player as resolved for this session.
func (s *Session) MarkResolved() {
	if p := s.queue.Current(); p != nil {
		s.resolved[p.ID] = true
	}
}

// Advance moves to the next or previous player and resets all
// per-player auction state, invalidating any pending auto-advance.
func (s *Session) Advance(delta int) {
	s.queue.Advance(delta)
	s.ResetState()
}

// ResetState is the explicit reset of the operator's in-progress
// state: the ladder closes, the team selection clears, and any pending
// auto-advance becomes stale.
func (s *Session) ResetState() {
	s.ladder.Reset()
	s.selectedTeam = ""
	s.timerGen++
}
