package model

import (
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// SelectTeamRequest represents the request to select the team a sale
// will go to.
type SelectTeamRequest struct {
	TeamID string `json:"team_id" binding:"required"`
}

// StateResponse is a snapshot of the auction room for presentation
// layers: queue position, active player, bid ladder state and the
// current team selection.
type StateResponse struct {
	NoPlayers         bool                `json:"no_players"`
	Index             int                 `json:"index"`
	Total             int                 `json:"total"`
	Player            *playerModel.Player `json:"player,omitempty"`
	BiddingOpen       bool                `json:"bidding_open"`
	CurrentBidLakh    int64               `json:"current_bid_lakh"`
	CurrentBid        string              `json:"current_bid,omitempty"`
	NextIncrementLakh int64               `json:"next_increment_lakh,omitempty"`
	SelectedTeam      string              `json:"selected_team,omitempty"`
	Resolved          bool                `json:"resolved"`
}

// SaleResult describes a committed sale for the SOLD announcement.
type SaleResult struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	PriceLakh  int64  `json:"price_lakh"`
	Price      string `json:"price"`
}

// SaleResponse wraps a sale result with the post-sale room state.
type SaleResponse struct {
	Sale  SaleResult    `json:"sale"`
	State StateResponse `json:"state"`
}

// NewSaleResult builds a SaleResult with the price formatted for display.
func NewSaleResult(playerID, playerName, teamID, teamName string, priceLakh int64) SaleResult {
	return SaleResult{
		PlayerID:   playerID,
		PlayerName: playerName,
		TeamID:     teamID,
		TeamName:   teamName,
		PriceLakh:  priceLakh,
		Price:      money.Format(priceLakh),
	}
}
