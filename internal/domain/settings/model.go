package settings

import (
	"fmt"
	"time"
)

const DefaultLeagueName = "Lega Stork"

// Settings is the single league-wide configuration row.
type Settings struct {
	LeagueName      string
	IsMarketOpen    bool
	IsLineupLocked  bool
	CurrentMatchday int
	LiveStreamURL   string
	TickerText      string
	MarketDeadline  *time.Time
	UpdatedAt       time.Time
}

// Default is what the league runs with before an admin saves anything.
func Default() Settings {
	return Settings{
		LeagueName:      DefaultLeagueName,
		IsMarketOpen:    true,
		IsLineupLocked:  false,
		CurrentMatchday: 1,
	}
}

func (s Settings) Validate() error {
	if s.LeagueName == "" {
		return fmt.Errorf("league name is required")
	}
	if s.CurrentMatchday < 1 {
		return fmt.Errorf("current matchday must be at least 1")
	}

	return nil
}
