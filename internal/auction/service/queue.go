package service

import (
	"sort"
	"strings"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
)

// Queue is the ordered, cyclic sequence of candidate players for one
// auction session. The order is fixed when the queue is built; players
// resolved during the session keep their slot until a reload.
type Queue struct {
	players []playerModel.Player
	index   int
}

// NewQueue builds a queue from the given players, ordered by role rank
// (Batter, Bowler, All-Rounder, Wicketkeeper, then everything else)
// and by name within a rank.
func NewQueue(players []playerModel.Player) *Queue {
	sorted := make([]playerModel.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := playerModel.RoleRank(sorted[i].Role), playerModel.RoleRank(sorted[j].Role)
		if ri != rj {
			return ri < rj
		}
		return strings.Compare(sorted[i].Name, sorted[j].Name) < 0
	})
	return &Queue{players: sorted}
}

// Len returns the number of players in the queue.
func (q *Queue) Len() int {
	return len(q.players)
}

// Index returns the position of the active player.
func (q *Queue) Index() int {
	return q.index
}

// Current returns the active player, or nil for an empty queue.
func (q *Queue) Current() *playerModel.Player {
	if len(q.players) == 0 {
		return nil
	}
	return &q.players[q.index]
}

// Advance moves the active index by delta, wrapping past either end.
func (q *Queue) Advance(delta int) {
	n := len(q.players)
	if n == 0 {
		return
	}
	q.index = ((q.index+delta)%n + n) % n
}
