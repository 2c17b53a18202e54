package model

import (
	"fmt"
	"strings"

	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// CreatePlayerRequest represents the request to create a player.
// Prices arrive in Crore and are converted to Lakh at this boundary.
type CreatePlayerRequest struct {
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role"`
	IsOverseas bool    `json:"is_overseas"`
	ImageURL   string  `json:"image_url"`
	BasePrice  float64 `json:"base_price"`
	Credits    int     `json:"credits"`
	Year       int     `json:"year"`

	BattingMatches       int     `json:"batting_matches"`
	BattingNotOuts       int     `json:"batting_not_outs"`
	BattingRuns          int     `json:"batting_runs"`
	BattingHighScore     int     `json:"batting_high_score"`
	BattingAverage       float64 `json:"batting_average"`
	BallsFaced           int     `json:"balls_faced"`
	BattingStrikeRate    float64 `json:"batting_strike_rate"`
	BattingCenturies     int     `json:"batting_centuries"`
	BattingHalfCenturies int     `json:"batting_half_centuries"`
	Fours                int     `json:"fours"`
	Sixes                int     `json:"sixes"`
	Catches              int     `json:"catches"`
	Stumpings            int     `json:"stumpings"`

	BowlingMatches    int     `json:"bowling_matches"`
	BallsBowled       int     `json:"balls_bowled"`
	RunsConceded      int     `json:"runs_conceded"`
	Wickets           int     `json:"wickets"`
	BestBowling       string  `json:"best_bowling"`
	BowlingAverage    float64 `json:"bowling_average"`
	Economy           float64 `json:"economy"`
	BowlingStrikeRate float64 `json:"bowling_strike_rate"`
	FourWicketHauls   int     `json:"four_wicket_hauls"`
	FiveWicketHauls   int     `json:"five_wicket_hauls"`
}

// PlayerResponse represents a player in API responses with formatted
// price fields alongside the raw record.
type PlayerResponse struct {
	Player    Player `json:"player"`
	BasePrice string `json:"base_price"`
	SoldPrice string `json:"sold_price,omitempty"`
}

// NewPlayerResponse builds a PlayerResponse from a player record.
func NewPlayerResponse(p *Player) *PlayerResponse {
	resp := &PlayerResponse{
		Player:    *p,
		BasePrice: money.Format(p.BasePriceLakh),
	}
	if p.Status == StatusSold {
		resp.SoldPrice = money.Format(p.SoldPriceLakh)
	}
	return resp
}

// PlayersResponse represents the response for a player list.
type PlayersResponse struct {
	Players []Player `json:"players"`
	Total   int      `json:"total"`
}

// SlugID derives the document id for a player: lowercased name with
// whitespace runs collapsed to hyphens, suffixed with the year.
func SlugID(name string, year int) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return fmt.Sprintf("%s-%d", slug, year)
}
