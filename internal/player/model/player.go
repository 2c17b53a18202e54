// Package model provides domain models and DTOs for player module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Auction status values for a player.
const (
	StatusUnsold = "UNSOLD"
	StatusSold   = "SOLD"
)

// Player roles recognised by the auction ordering rule.
const (
	RoleBatter       = "Batter"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All-Rounder"
	RoleWicketkeeper = "Wicketkeeper"
)

// Player represents a player entity in the system.
// Matches the players table schema. Money columns are stored in Lakh.
// The career stat block is display-only and never mutated by the
// auction flow.
type Player struct {
	ID            string `gorm:"primaryKey;column:id;type:varchar(255)" json:"id"`
	Name          string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Role          string `gorm:"column:role;type:varchar(64)" json:"role"`
	IsOverseas    bool   `gorm:"column:is_overseas;not null;default:false" json:"is_overseas"`
	ImageURL      string `gorm:"column:image_url" json:"image_url"`
	Status        string `gorm:"column:status;type:varchar(16);not null;default:UNSOLD" json:"status"`
	SoldTo        string `gorm:"column:sold_to;type:varchar(255);default:''" json:"sold_to"`
	BasePriceLakh int64  `gorm:"column:base_price_lakh;not null;default:0" json:"base_price_lakh"`
	SoldPriceLakh int64  `gorm:"column:sold_price_lakh;not null;default:0" json:"sold_price_lakh"`
	Credits       int    `gorm:"column:credits;not null;default:0" json:"credits"`
	Year          int    `gorm:"column:year;not null;default:0" json:"year"`

	// Batting stats
	BattingMatches       int     `gorm:"column:batting_matches;not null;default:0" json:"batting_matches"`
	BattingNotOuts       int     `gorm:"column:batting_not_outs;not null;default:0" json:"batting_not_outs"`
	BattingRuns          int     `gorm:"column:batting_runs;not null;default:0" json:"batting_runs"`
	BattingHighScore     int     `gorm:"column:batting_high_score;not null;default:0" json:"batting_high_score"`
	BattingAverage       float64 `gorm:"column:batting_average;not null;default:0" json:"batting_average"`
	BallsFaced           int     `gorm:"column:balls_faced;not null;default:0" json:"balls_faced"`
	BattingStrikeRate    float64 `gorm:"column:batting_strike_rate;not null;default:0" json:"batting_strike_rate"`
	BattingCenturies     int     `gorm:"column:batting_centuries;not null;default:0" json:"batting_centuries"`
	BattingHalfCenturies int     `gorm:"column:batting_half_centuries;not null;default:0" json:"batting_half_centuries"`
	Fours                int     `gorm:"column:fours;not null;default:0" json:"fours"`
	Sixes                int     `gorm:"column:sixes;not null;default:0" json:"sixes"`
	Catches              int     `gorm:"column:catches;not null;default:0" json:"catches"`
	Stumpings            int     `gorm:"column:stumpings;not null;default:0" json:"stumpings"`

	// Bowling stats
	BowlingMatches    int     `gorm:"column:bowling_matches;not null;default:0" json:"bowling_matches"`
	BallsBowled       int     `gorm:"column:balls_bowled;not null;default:0" json:"balls_bowled"`
	RunsConceded      int     `gorm:"column:runs_conceded;not null;default:0" json:"runs_conceded"`
	Wickets           int     `gorm:"column:wickets;not null;default:0" json:"wickets"`
	BestBowling       string  `gorm:"column:best_bowling;type:varchar(16);default:'0/0'" json:"best_bowling"`
	BowlingAverage    float64 `gorm:"column:bowling_average;not null;default:0" json:"bowling_average"`
	Economy           float64 `gorm:"column:economy;not null;default:0" json:"economy"`
	BowlingStrikeRate float64 `gorm:"column:bowling_strike_rate;not null;default:0" json:"bowling_strike_rate"`
	FourWicketHauls   int     `gorm:"column:four_wicket_hauls;not null;default:0" json:"four_wicket_hauls"`
	FiveWicketHauls   int     `gorm:"column:five_wicket_hauls;not null;default:0" json:"five_wicket_hauls"`

	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Player) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// RoleRank returns the auction ordering rank for a role: Batter before
// Bowler before All-Rounder before Wicketkeeper, unknown roles last.
func RoleRank(role string) int {
	switch role {
	case RoleBatter:
		return 1
	case RoleBowler:
		return 2
	case RoleAllRounder:
		return 3
	case RoleWicketkeeper:
		return 4
	default:
		return 99
	}
}
