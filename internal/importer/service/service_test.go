package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	importerModel "github.com/vaibhavgupta5/ipl-auction/internal/importer/model"
	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	playerRepository "github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&playerModel.Player{})
	require.NoError(t, err)

	return db
}

func newTestService(db *gorm.DB) Service {
	return New(playerRepository.New(db), zap.NewNop().Sugar())
}

// sheet builds an in-memory XLSX with the given rows on the first sheet.
func sheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestService_ListFields(t *testing.T) {
	svc := newTestService(setupTestDB(t))

	resp := svc.ListFields(context.Background())

	assert.Equal(t, len(importerModel.Fields()), resp.Total)
	assert.Equal(t, "name", resp.Fields[0].Name)
	assert.True(t, resp.Fields[0].Required)
}

func TestService_ImportPlayers(t *testing.T) {
	ctx := context.Background()

	t.Run("imports rows with direct headers", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		buf := sheet(t, [][]interface{}{
			{"name", "role", "isOverseas", "basePrice", "year", "wickets"},
			{"Virat Kohli", "Batter", "false", "2", 2025, 4},
			{"Trent Boult", "Bowler", "true", "1.5", 2025, 121},
		})

		resp, err := svc.ImportPlayers(ctx, buf, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Imported)
		assert.Zero(t, resp.Failed)

		var player playerModel.Player
		require.NoError(t, db.First(&player, "id = ?", "virat-kohli-2025").Error)
		assert.Equal(t, "Batter", player.Role)
		assert.False(t, player.IsOverseas)
		assert.Equal(t, int64(200), player.BasePriceLakh)
		assert.Equal(t, playerModel.StatusUnsold, player.Status)
		assert.Equal(t, "0/0", player.BestBowling)

		player = playerModel.Player{}
		require.NoError(t, db.First(&player, "id = ?", "trent-boult-2025").Error)
		assert.True(t, player.IsOverseas)
		assert.Equal(t, int64(150), player.BasePriceLakh)
		assert.Equal(t, 121, player.Wickets)
	})

	t.Run("explicit mapping renames columns", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		buf := sheet(t, [][]interface{}{
			{"Player Name", "Price (Cr)"},
			{"MS Dhoni", "4"},
		})

		resp, err := svc.ImportPlayers(ctx, buf, map[string]string{
			"name":      "Player Name",
			"basePrice": "Price (Cr)",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Imported)

		var player playerModel.Player
		require.NoError(t, db.First(&player, "name = ?", "MS Dhoni").Error)
		assert.Equal(t, int64(400), player.BasePriceLakh)
	})

	t.Run("re-import overwrites by slug id", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		first := sheet(t, [][]interface{}{
			{"name", "year", "basePrice"},
			{"Virat Kohli", 2025, "2"},
		})
		_, err := svc.ImportPlayers(ctx, first, nil)
		require.NoError(t, err)

		second := sheet(t, [][]interface{}{
			{"name", "year", "basePrice"},
			{"Virat Kohli", 2025, "2.5"},
		})
		resp, err := svc.ImportPlayers(ctx, second, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Imported)

		var count int64
		db.Model(&playerModel.Player{}).Count(&count)
		assert.Equal(t, int64(1), count)

		var player playerModel.Player
		require.NoError(t, db.First(&player, "id = ?", "virat-kohli-2025").Error)
		assert.Equal(t, int64(250), player.BasePriceLakh)
	})

	t.Run("bad rows are reported, good rows still land", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		buf := sheet(t, [][]interface{}{
			{"name", "basePrice", "year"},
			{"Virat Kohli", "2", 2025},
			{"", "2", 2025},
			{"Trent Boult", "cheap", 2025},
		})

		resp, err := svc.ImportPlayers(ctx, buf, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Imported)
		assert.Equal(t, 2, resp.Failed)
		require.Len(t, resp.Errors, 2)
		assert.Equal(t, 3, resp.Errors[0].Row)
		assert.Equal(t, 4, resp.Errors[1].Row)
	})

	t.Run("blank rows are skipped", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		buf := sheet(t, [][]interface{}{
			{"name", "year"},
			{"Virat Kohli", 2025},
			{"", ""},
			{"MS Dhoni", 2025},
		})

		resp, err := svc.ImportPlayers(ctx, buf, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Imported)
		assert.Zero(t, resp.Failed)
	})

	t.Run("unknown field in mapping", func(t *testing.T) {
		svc := newTestService(setupTestDB(t))
		buf := sheet(t, [][]interface{}{
			{"name"},
			{"Virat Kohli"},
		})

		_, err := svc.ImportPlayers(context.Background(), buf, map[string]string{
			"name":   "name",
			"salary": "name",
		})

		assert.ErrorIs(t, err, importerModel.ErrUnknownField)
	})

	t.Run("mapping must bind the name field", func(t *testing.T) {
		svc := newTestService(setupTestDB(t))
		buf := sheet(t, [][]interface{}{
			{"role"},
			{"Batter"},
		})

		_, err := svc.ImportPlayers(context.Background(), buf, map[string]string{
			"role": "role",
		})

		assert.ErrorIs(t, err, importerModel.ErrNameNotMapped)
	})

	t.Run("missing header in mapping", func(t *testing.T) {
		svc := newTestService(setupTestDB(t))
		buf := sheet(t, [][]interface{}{
			{"name"},
			{"Virat Kohli"},
		})

		_, err := svc.ImportPlayers(context.Background(), buf, map[string]string{
			"name": "Full Name",
		})

		assert.ErrorIs(t, err, importerModel.ErrInvalidMapping)
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		svc := newTestService(setupTestDB(t))

		_, err := svc.ImportPlayers(context.Background(), bytes.NewBufferString("not an xlsx"), nil)

		assert.ErrorIs(t, err, importerModel.ErrInvalidFile)
	})

	t.Run("header only", func(t *testing.T) {
		svc := newTestService(setupTestDB(t))
		buf := sheet(t, [][]interface{}{
			{"name", "year"},
		})

		_, err := svc.ImportPlayers(context.Background(), buf, nil)

		assert.ErrorIs(t, err, importerModel.ErrNoRows)
	})
}
