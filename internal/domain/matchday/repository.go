package matchday

import (
	"context"
	"errors"

	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
)

var ErrDuplicateNumber = errors.New("matchday number already exists")

// Repository describes matchday persistence needs from use cases.
// Vote writes and status transitions are conditional: they report false
// when the matchday is missing or not in the expected status.
type Repository interface {
	List(ctx context.Context) ([]Matchday, error)
	GetByID(ctx context.Context, matchdayID string) (Matchday, bool, error)
	GetByNumber(ctx context.Context, number int) (Matchday, bool, error)
	Create(ctx context.Context, item Matchday) error
	MergeVotes(ctx context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats) (bool, error)
	ReplaceVotes(ctx context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats) (bool, error)
	TransitionStatus(ctx context.Context, matchdayID string, from, to Status) (bool, error)
	Delete(ctx context.Context, matchdayID string) error
	ReopenAll(ctx context.Context) error
}
