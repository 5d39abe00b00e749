package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository describes lineup history persistence needs from use cases.
//
// ApplySettlement and RevertSettlement move points between the ledger row and
// the owning team's total in one atomic step, guarded by the row's settled state.
// They report false when the row is missing or already in the target state.
type Repository interface {
	Get(ctx context.Context, teamID string, matchdayNumber int) (Entry, bool, error)
	ListByMatchday(ctx context.Context, matchdayNumber int) ([]Entry, error)
	ListByTeam(ctx context.Context, teamID string) ([]Entry, error)
	UpsertSnapshot(ctx context.Context, entry Entry) (bool, error)
	ApplySettlement(ctx context.Context, teamID string, matchdayNumber int, points decimal.Decimal, settledAt time.Time) (bool, error)
	RevertSettlement(ctx context.Context, teamID string, matchdayNumber int) (decimal.Decimal, bool, error)
	// DeleteSnapshot drops an unsettled row; settled rows are kept and false is returned.
	DeleteSnapshot(ctx context.Context, teamID string, matchdayNumber int) (bool, error)
	DeleteByMatchday(ctx context.Context, matchdayNumber int) error
	DeleteAll(ctx context.Context) error
}
