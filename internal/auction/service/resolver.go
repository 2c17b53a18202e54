package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	auctionModel "github.com/vaibhavgupta5/ipl-auction/internal/auction/model"
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	teamModel "github.com/vaibhavgupta5/ipl-auction/internal/team/model"
)

// resolveSale commits a sale in a single transaction: it debits the
// team budget, bumps the overseas count, appends the roster entry and
// marks the player sold. The budget and overseas checks are enforced
// by the UPDATE's WHERE clause, so two concurrent sales cannot both
// spend the same budget.
func (s *service) resolveSale(ctx context.Context, player *playerModel.Player, teamID string, priceLakh int64) (*teamModel.Team, error) {
	overseasInc := 0
	if player.IsOverseas {
		overseasInc = 1
	}

	var team teamModel.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&team, "id = ?", teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return teamModel.ErrTeamNotFound
			}
			return err
		}

		if team.Overseas+overseasInc > s.cfg.OverseasLimit {
			return auctionModel.ErrOverseasLimitExceeded
		}
		if team.BudgetLakh < priceLakh {
			return auctionModel.ErrInsufficientBudget
		}

		res := tx.Model(&teamModel.Team{}).
			Where("id = ? AND budget_lakh >= ? AND overseas + ? <= ?",
				teamID, priceLakh, overseasInc, s.cfg.OverseasLimit).
			Updates(map[string]interface{}{
				"budget_lakh": gorm.Expr("budget_lakh - ?", priceLakh),
				"overseas":    gorm.Expr("overseas + ?", overseasInc),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// The guarded update lost a race; re-read to report the
			// check that failed.
			if err := tx.First(&team, "id = ?", teamID).Error; err != nil {
				return err
			}
			if team.Overseas+overseasInc > s.cfg.OverseasLimit {
				return auctionModel.ErrOverseasLimitExceeded
			}
			return auctionModel.ErrInsufficientBudget
		}

		var position int64
		if err := tx.Model(&teamModel.RosterEntry{}).
			Where("team_id = ?", teamID).
			Count(&position).Error; err != nil {
			return err
		}
		entry := teamModel.RosterEntry{
			TeamID:   teamID,
			PlayerID: player.ID,
			Position: int(position) + 1,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		res = tx.Model(&playerModel.Player{}).
			Where("id = ?", player.ID).
			Updates(map[string]interface{}{
				"status":          playerModel.StatusSold,
				"sold_price_lakh": priceLakh,
				"sold_to":         teamID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return playerModel.ErrPlayerNotFound
		}

		return tx.First(&team, "id = ?", teamID).Error
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// resolveUnsold clears any prior sale fields and marks the player
// unsold. No team record is touched.
func (s *service) resolveUnsold(ctx context.Context, player *playerModel.Player) error {
	res := s.db.WithContext(ctx).
		Model(&playerModel.Player{}).
		Where("id = ?", player.ID).
		Updates(map[string]interface{}{
			"status":          playerModel.StatusUnsold,
			"sold_price_lakh": 0,
			"sold_to":         "",
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}
