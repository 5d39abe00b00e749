package fantasy

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Roster is the manager-editable part of a team. Settlement never writes it.
type Roster struct {
	PlayerIDs         []string
	LineupIDs         []string
	CreditsLeft       int64
	IsLineupConfirmed bool
}

func (r Roster) Owns(playerID string) bool {
	return slices.Contains(r.PlayerIDs, playerID)
}

func (r Roster) IsStarter(playerID string) bool {
	return slices.Contains(r.LineupIDs, playerID)
}

func (r Roster) Clone() Roster {
	out := r
	out.PlayerIDs = append([]string(nil), r.PlayerIDs...)
	out.LineupIDs = append([]string(nil), r.LineupIDs...)
	return out
}

// Team is one manager's fantasy side. ID matches the manager's identity user id.
type Team struct {
	ID            string
	TeamName      string
	ManagerName   string
	LogoURL       string
	Roster        Roster
	TotalPoints   decimal.Decimal
	RosterVersion int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t Team) ValidateBasic() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TeamName == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ManagerName == "" {
		return fmt.Errorf("manager name is required")
	}
	if t.Roster.CreditsLeft < 0 {
		return fmt.Errorf("credits left cannot be negative")
	}

	return nil
}

func CloneTeam(t Team) Team {
	out := t
	out.Roster = t.Roster.Clone()
	return out
}
