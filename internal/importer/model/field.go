package model

import (
	"fmt"
	"strconv"
	"strings"

	playerModel "github.com/vaibhavgupta5/ipl-auction/internal/player/model"
	"github.com/vaibhavgupta5/ipl-auction/pkg/money"
)

// Field value kinds. Crore cells hold rupee amounts in Crore and are
// converted to Lakh on import.
const (
	KindString = "string"
	KindInt    = "int"
	KindFloat  = "float"
	KindBool   = "bool"
	KindCrore  = "crore"
)

// Field describes one importable player attribute: its wire name, the
// value kind a cell must coerce to, and whether a row may omit it.
type Field struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`

	apply func(p *playerModel.Player, raw string) error
}

// Apply coerces a raw cell value and writes it into the player. An
// empty cell on an optional field leaves the column default in place.
func (f Field) Apply(p *playerModel.Player, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if f.Required {
			return fmt.Errorf("field %q is required", f.Name)
		}
		return nil
	}
	if err := f.apply(p, raw); err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}
	return nil
}

func stringField(name string, required bool, set func(p *playerModel.Player, v string)) Field {
	return Field{Name: name, Kind: KindString, Required: required, apply: func(p *playerModel.Player, raw string) error {
		set(p, raw)
		return nil
	}}
}

func intField(name string, set func(p *playerModel.Player, v int)) Field {
	return Field{Name: name, Kind: KindInt, apply: func(p *playerModel.Player, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			// Spreadsheets often render integer cells as "12.0".
			f, ferr := strconv.ParseFloat(raw, 64)
			if ferr != nil || f != float64(int(f)) {
				return fmt.Errorf("not an integer: %q", raw)
			}
			v = int(f)
		}
		set(p, v)
		return nil
	}}
}

func floatField(name string, set func(p *playerModel.Player, v float64)) Field {
	return Field{Name: name, Kind: KindFloat, apply: func(p *playerModel.Player, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", raw)
		}
		set(p, v)
		return nil
	}}
}

func boolField(name string, set func(p *playerModel.Player, v bool)) Field {
	return Field{Name: name, Kind: KindBool, apply: func(p *playerModel.Player, raw string) error {
		switch strings.ToLower(raw) {
		case "true", "yes", "y", "1":
			set(p, true)
		case "false", "no", "n", "0":
			set(p, false)
		default:
			return fmt.Errorf("not a boolean: %q", raw)
		}
		return nil
	}}
}

func croreField(name string, set func(p *playerModel.Player, v money.Lakh)) Field {
	return Field{Name: name, Kind: KindCrore, apply: func(p *playerModel.Player, raw string) error {
		v, err := money.ParseCrore(raw)
		if err != nil {
			return fmt.Errorf("not a crore amount: %q", raw)
		}
		set(p, v)
		return nil
	}}
}

// Fields returns the complete importable field schema in display
// order. Mapping UIs enumerate this list instead of guessing columns.
func Fields() []Field {
	return []Field{
		stringField("name", true, func(p *playerModel.Player, v string) { p.Name = v }),
		stringField("role", false, func(p *playerModel.Player, v string) { p.Role = v }),
		boolField("isOverseas", func(p *playerModel.Player, v bool) { p.IsOverseas = v }),
		stringField("imageUrl", false, func(p *playerModel.Player, v string) { p.ImageURL = v }),
		croreField("basePrice", func(p *playerModel.Player, v money.Lakh) { p.BasePriceLakh = int64(v) }),
		intField("credits", func(p *playerModel.Player, v int) { p.Credits = v }),
		intField("year", func(p *playerModel.Player, v int) { p.Year = v }),

		intField("battingMatches", func(p *playerModel.Player, v int) { p.BattingMatches = v }),
		intField("battingNotOuts", func(p *playerModel.Player, v int) { p.BattingNotOuts = v }),
		intField("battingRuns", func(p *playerModel.Player, v int) { p.BattingRuns = v }),
		intField("battingHighScore", func(p *playerModel.Player, v int) { p.BattingHighScore = v }),
		floatField("battingAverage", func(p *playerModel.Player, v float64) { p.BattingAverage = v }),
		intField("ballsFaced", func(p *playerModel.Player, v int) { p.BallsFaced = v }),
		floatField("battingStrikeRate", func(p *playerModel.Player, v float64) { p.BattingStrikeRate = v }),
		intField("battingCenturies", func(p *playerModel.Player, v int) { p.BattingCenturies = v }),
		intField("battingHalfCenturies", func(p *playerModel.Player, v int) { p.BattingHalfCenturies = v }),
		intField("fours", func(p *playerModel.Player, v int) { p.Fours = v }),
		intField("sixes", func(p *playerModel.Player, v int) { p.Sixes = v }),
		intField("catches", func(p *playerModel.Player, v int) { p.Catches = v }),
		intField("stumpings", func(p *playerModel.Player, v int) { p.Stumpings = v }),

		intField("bowlingMatches", func(p *playerModel.Player, v int) { p.BowlingMatches = v }),
		intField("ballsBowled", func(p *playerModel.Player, v int) { p.BallsBowled = v }),
		intField("runsConceded", func(p *playerModel.Player, v int) { p.RunsConceded = v }),
		intField("wickets", func(p *playerModel.Player, v int) { p.Wickets = v }),
		stringField("bestBowling", false, func(p *playerModel.Player, v string) { p.BestBowling = v }),
		floatField("bowlingAverage", func(p *playerModel.Player, v float64) { p.BowlingAverage = v }),
		floatField("economy", func(p *playerModel.Player, v float64) { p.Economy = v }),
		floatField("bowlingStrikeRate", func(p *playerModel.Player, v float64) { p.BowlingStrikeRate = v }),
		intField("fourWicketHauls", func(p *playerModel.Player, v int) { p.FourWicketHauls = v }),
		intField("fiveWicketHauls", func(p *playerModel.Player, v int) { p.FiveWicketHauls = v }),
	}
}

// FieldByName looks up a schema field by its wire name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
