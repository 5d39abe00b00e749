package scoring

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidStats = errors.New("invalid player match stats")

var (
	MinVote = decimal.Zero
	MaxVote = decimal.NewFromInt(10)
)

// PlayerMatchStats is the raw performance line recorded for one player in one matchday.
// A zero Vote means no stats were submitted and the player scores nothing.
type PlayerMatchStats struct {
	Vote        decimal.Decimal
	Goals       int
	Assists     int
	OwnGoals    int
	YellowCard  bool
	RedCard     bool
	ExtraPoints decimal.Decimal
}

func (s PlayerMatchStats) Validate() error {
	if s.Vote.LessThan(MinVote) || s.Vote.GreaterThan(MaxVote) {
		return fmt.Errorf("%w: vote must be between %s and %s, got %s", ErrInvalidStats, MinVote, MaxVote, s.Vote)
	}
	if s.Goals < 0 {
		return fmt.Errorf("%w: goals cannot be negative", ErrInvalidStats)
	}
	if s.Assists < 0 {
		return fmt.Errorf("%w: assists cannot be negative", ErrInvalidStats)
	}
	if s.OwnGoals < 0 {
		return fmt.Errorf("%w: own goals cannot be negative", ErrInvalidStats)
	}

	return nil
}

// Played reports whether the stats line counts toward a lineup.
func (s PlayerMatchStats) Played() bool {
	return s.Vote.IsPositive()
}
