package config

import (
	"fmt"
	"time"
)

// AuctionConfig holds auction room configuration.
type AuctionConfig struct {
	// DefaultBasePriceLakh is the opening bid used when a player has no
	// base price, in Lakh.
	DefaultBasePriceLakh int64
	// OverseasLimit is the maximum number of overseas players a team
	// may roster.
	OverseasLimit int
	// AdvanceDelay is how long the SOLD announcement stays up before
	// the queue advances to the next player.
	AdvanceDelay time.Duration
}

// LoadAuctionConfigFromEnv loads auction configuration from environment variables.
func LoadAuctionConfigFromEnv() AuctionConfig {
	return AuctionConfig{
		DefaultBasePriceLakh: GetEnvInt64("AUCTION_DEFAULT_BASE_PRICE_LAKH", 20),
		OverseasLimit:        GetEnvInt("AUCTION_OVERSEAS_LIMIT", 4),
		AdvanceDelay:         GetEnvDuration("AUCTION_ADVANCE_DELAY", 3*time.Second),
	}
}

// Validate validates auction configuration.
func (c AuctionConfig) Validate() error {
	if c.DefaultBasePriceLakh <= 0 {
		return fmt.Errorf("DefaultBasePriceLakh must be greater than 0")
	}
	if c.OverseasLimit <= 0 {
		return fmt.Errorf("OverseasLimit must be greater than 0")
	}
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("AdvanceDelay must be non-negative")
	}
	return nil
}
