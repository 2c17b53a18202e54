// Package model provides domain models and DTOs for team module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a franchise entity in the system.
// Matches the teams table schema. The remaining budget is stored in
// Lakh; Crore values appear only at the API boundary.
type Team struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(255)" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ShortName  string    `gorm:"column:short_name;type:varchar(8);not null" json:"short_name"`
	Number     int       `gorm:"column:number;not null;default:0" json:"number"`
	BudgetLakh int64     `gorm:"column:budget_lakh;not null;default:10000" json:"budget_lakh"`
	Overseas   int       `gorm:"column:overseas;not null;default:0" json:"overseas"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// RosterEntry is one row of a team's owned, ordered player list.
// players.sold_to is the back-reference; the Sale Resolver writes both
// sides in one transaction.
type RosterEntry struct {
	TeamID    string    `gorm:"primaryKey;column:team_id;type:varchar(255)" json:"team_id"`
	PlayerID  string    `gorm:"primaryKey;column:player_id;type:varchar(255)" json:"player_id"`
	Position  int       `gorm:"column:position;not null" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (RosterEntry) TableName() string {
	return "team_players"
}
