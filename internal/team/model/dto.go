package model

import (
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// CreateTeamRequest represents the request to create a team.
// The budget arrives as a decimal Crore string (e.g. "100"), matching
// the team setup form, and is converted to Lakh at this boundary.
type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required"`
	Number    int    `json:"number"`
	Amount    string `json:"amount"`
	ShortName string `json:"short_name"`
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	Team    Team     `json:"team"`
	Budget  string   `json:"budget"`
	Players []string `json:"players"`
}

// NewTeamResponse builds a TeamResponse from a team record and its
// roster player ids.
func NewTeamResponse(t *Team, playerIDs []string) *TeamResponse {
	if playerIDs == nil {
		playerIDs = []string{}
	}
	return &TeamResponse{
		Team:    *t,
		Budget:  money.Format(t.BudgetLakh),
		Players: playerIDs,
	}
}

// TeamsResponse represents the response for a team list.
type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
}

// RosterResponse represents a team's roster with every player
// reference resolved to a full record.
type RosterResponse struct {
	Team    Team                 `json:"team"`
	Players []playerModel.Player `json:"players"`
	Total   int                  `json:"total"`
}
