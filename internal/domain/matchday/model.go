package matchday

import (
	"errors"
	"fmt"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
)

var ErrInvalidTransition = errors.New("invalid matchday status transition")

// Status is the lifecycle state of a matchday.
type Status string

const (
	StatusOpen       Status = "open"
	StatusCalculated Status = "calculated"
)

var transitions = map[Status]map[Status]struct{}{
	StatusOpen:       {StatusCalculated: {}},
	StatusCalculated: {StatusOpen: {}},
}

// CanTransition reports whether a matchday may move from one status to another.
func CanTransition(from, to Status) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Matchday is one scoring round. Votes are keyed by player id.
type Matchday struct {
	ID        string
	Number    int
	Status    Status
	Votes     map[string]scoring.PlayerMatchStats
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Matchday) IsOpen() bool {
	return m.Status == StatusOpen
}

func (m Matchday) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("matchday id is required")
	}
	if m.Number <= 0 {
		return fmt.Errorf("matchday number must be greater than zero")
	}
	if m.Status != StatusOpen && m.Status != StatusCalculated {
		return fmt.Errorf("invalid matchday status: %s", m.Status)
	}
	for playerID, stats := range m.Votes {
		if playerID == "" {
			return fmt.Errorf("vote player id is required")
		}
		if err := stats.Validate(); err != nil {
			return fmt.Errorf("player %s: %w", playerID, err)
		}
	}

	return nil
}

// MergeVotes overlays incoming stats on the existing ones, player by player.
func MergeVotes(existing, incoming map[string]scoring.PlayerMatchStats) map[string]scoring.PlayerMatchStats {
	out := make(map[string]scoring.PlayerMatchStats, len(existing)+len(incoming))
	for playerID, stats := range existing {
		out[playerID] = stats
	}
	for playerID, stats := range incoming {
		out[playerID] = stats
	}
	return out
}

func CloneVotes(votes map[string]scoring.PlayerMatchStats) map[string]scoring.PlayerMatchStats {
	out := make(map[string]scoring.PlayerMatchStats, len(votes))
	for playerID, stats := range votes {
		out[playerID] = stats
	}
	return out
}
