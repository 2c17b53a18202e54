// Package money provides conversion and formatting for auction money
// values. The canonical internal unit is the Lakh, stored as int64;
// Crore values appear only at API boundaries (1 Crore = 100 Lakh).
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LakhPerCrore is the scaling factor between the two units.
const LakhPerCrore = 100

// Lakh is a money amount in Lakh.
type Lakh = int64

// FromCrore converts a Crore value to Lakh, rounding to the nearest
// whole Lakh.
func FromCrore(crore float64) Lakh {
	return Lakh(math.Round(crore * LakhPerCrore))
}

// ToCrore converts a Lakh amount to Crore.
func ToCrore(lakh Lakh) float64 {
	return float64(lakh) / LakhPerCrore
}

// ParseCrore parses a decimal Crore string (e.g. "100", "1.5") into
// Lakh. Team budgets arrive in this form.
func ParseCrore(s string) (Lakh, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount")
	}
	crore, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if crore < 0 {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	return FromCrore(crore), nil
}

// Format renders an amount for display: values of one Crore or more
// render as "X.XX Cr", smaller values as "Y.00 Lakh".
func Format(lakh Lakh) string {
	if lakh >= LakhPerCrore {
		return fmt.Sprintf("%.2f Cr", ToCrore(lakh))
	}
	return fmt.Sprintf("%.2f Lakh", float64(lakh))
}
