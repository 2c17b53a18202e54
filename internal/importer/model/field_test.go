package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
)

func applyField(t *testing.T, name, raw string) (*playerModel.Player, error) {
	field, ok := FieldByName(name)
	require.True(t, ok, "unknown field %q", name)

	p := &playerModel.Player{}
	return p, field.Apply(p, raw)
}

func TestField_Apply(t *testing.T) {
	t.Run("required field rejects empty cell", func(t *testing.T) {
		_, err := applyField(t, "name", "  ")
		assert.Error(t, err)
	})

	t.Run("optional field keeps default on empty cell", func(t *testing.T) {
		p, err := applyField(t, "wickets", "")
		require.NoError(t, err)
		assert.Zero(t, p.Wickets)
	})

	t.Run("int accepts spreadsheet float rendering", func(t *testing.T) {
		p, err := applyField(t, "wickets", "12.0")
		require.NoError(t, err)
		assert.Equal(t, 12, p.Wickets)
	})

	t.Run("int rejects fractional values", func(t *testing.T) {
		_, err := applyField(t, "wickets", "12.5")
		assert.Error(t, err)
	})

	t.Run("bool accepts common spellings", func(t *testing.T) {
		for raw, want := range map[string]bool{
			"true": true, "TRUE": true, "Yes": true, "1": true,
			"false": false, "No": false, "0": false,
		} {
			p, err := applyField(t, "isOverseas", raw)
			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, want, p.IsOverseas, "raw %q", raw)
		}
	})

	t.Run("bool rejects garbage", func(t *testing.T) {
		_, err := applyField(t, "isOverseas", "maybe")
		assert.Error(t, err)
	})

	t.Run("crore converts to lakh", func(t *testing.T) {
		p, err := applyField(t, "basePrice", "1.5")
		require.NoError(t, err)
		assert.Equal(t, int64(150), p.BasePriceLakh)
	})

	t.Run("float parses", func(t *testing.T) {
		p, err := applyField(t, "economy", "7.89")
		require.NoError(t, err)
		assert.Equal(t, 7.89, p.Economy)
	})
}

func TestFieldByName(t *testing.T) {
	_, ok := FieldByName("name")
	assert.True(t, ok)

	_, ok = FieldByName("salary")
	assert.False(t, ok)
}
