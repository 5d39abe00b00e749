package fantasy

import (
	"context"
	"errors"
)

var ErrTeamExists = errors.New("team already registered")

// Repository describes fantasy team persistence needs from use cases.
//
// UpdateRoster is a compare-and-set on RosterVersion: it writes only the roster
// fields, bumps the version and reports false when the stored version moved on.
// Point totals are owned by the ledger repository.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, team Team) error
	UpdateProfile(ctx context.Context, teamID, teamName, managerName, logoURL string) (bool, error)
	UpdateRoster(ctx context.Context, teamID string, expectedVersion int64, roster Roster) (bool, error)
	ResetAll(ctx context.Context, initialBudget int64) error
}
