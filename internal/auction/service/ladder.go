package service

// Bid ladder tier boundaries and steps, in Lakh.
const (
	tierOneLimit  = 100 // below 1 Cr
	tierTwoLimit  = 200 // below 2 Cr
	stepTierOne   = 10  // +10 Lakh
	stepTierTwo   = 25  // +25 Lakh
	stepTierThree = 50  // +50 Lakh
)

// NextIncrement returns the step applied to a bid at the given value:
// +10 Lakh below 1 Cr, +25 Lakh from 1 Cr up to 2 Cr, +50 Lakh from
// 2 Cr. The step is recomputed from the bid before every increment.
func NextIncrement(bidLakh int64) int64 {
	switch {
	case bidLakh < tierOneLimit:
		return stepTierOne
	case bidLakh < tierTwoLimit:
		return stepTierTwo
	default:
		return stepTierThree
	}
}

// Ladder holds the current bid for the active player. Zero is the
// closed sentinel: bidding has not started.
type Ladder struct {
	bidLakh int64
}

// IsOpen reports whether bidding has started.
func (l *Ladder) IsOpen() bool {
	return l.bidLakh > 0
}

// Current returns the current bid in Lakh, zero when closed.
func (l *Ladder) Current() int64 {
	return l.bidLakh
}

// Open starts bidding at the player's base price, falling back to the
// given default when the base price is absent.
func (l *Ladder) Open(basePriceLakh, defaultLakh int64) {
	if basePriceLakh <= 0 {
		basePriceLakh = defaultLakh
	}
	l.bidLakh = basePriceLakh
}

// Increment raises the bid by the tier step for its current value and
// returns the new bid. There is no upper bound.
func (l *Ladder) Increment() int64 {
	l.bidLakh += NextIncrement(l.bidLakh)
	return l.bidLakh
}

// Reset closes the ladder, returning the bid to zero.
func (l *Ladder) Reset() {
	l.bidLakh = 0
}
