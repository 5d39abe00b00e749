package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the lineup a team fielded for one matchday and the points it earned.
// SettledAt stays nil until the points have been posted to the team total.
type Entry struct {
	TeamID         string
	MatchdayNumber int
	PlayerIDs      []string
	PointsEarned   decimal.Decimal
	SettledAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Entry) IsSettled() bool {
	return e.SettledAt != nil
}

func (e Entry) Validate() error {
	if e.TeamID == "" {
		return fmt.Errorf("ledger team id is required")
	}
	if e.MatchdayNumber <= 0 {
		return fmt.Errorf("ledger matchday number must be greater than zero")
	}
	seen := make(map[string]struct{}, len(e.PlayerIDs))
	for _, playerID := range e.PlayerIDs {
		if playerID == "" {
			return fmt.Errorf("ledger player id cannot be empty")
		}
		if _, ok := seen[playerID]; ok {
			return fmt.Errorf("duplicate player %s in ledger lineup", playerID)
		}
		seen[playerID] = struct{}{}
	}

	return nil
}

func Clone(e Entry) Entry {
	out := e
	out.PlayerIDs = append([]string(nil), e.PlayerIDs...)
	if e.SettledAt != nil {
		settledAt := *e.SettledAt
		out.SettledAt = &settledAt
	}
	return out
}
