package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

type ledgerKey struct {
	teamID string
	number int
}

// LedgerRepository keeps lineup history rows and posts settlement points to
// the bound team repository under its own lock.
type LedgerRepository struct {
	mu    sync.Mutex
	items map[ledgerKey]ledger.Entry
	teams *TeamRepository
	now   func() time.Time
}

func NewLedgerRepository(teams *TeamRepository) *LedgerRepository {
	return &LedgerRepository{
		items: make(map[ledgerKey]ledger.Entry),
		teams: teams,
		now:   time.Now,
	}
}

func (r *LedgerRepository) Get(_ context.Context, teamID string, matchdayNumber int) (ledger.Entry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[ledgerKey{teamID: teamID, number: matchdayNumber}]
	if !ok {
		return ledger.Entry{}, false, nil
	}
	return ledger.Clone(entry), true, nil
}

func (r *LedgerRepository) ListByMatchday(_ context.Context, matchdayNumber int) ([]ledger.Entry, error) {
	return r.filter(func(e ledger.Entry) bool { return e.MatchdayNumber == matchdayNumber }), nil
}

func (r *LedgerRepository) ListByTeam(_ context.Context, teamID string) ([]ledger.Entry, error) {
	return r.filter(func(e ledger.Entry) bool { return e.TeamID == teamID }), nil
}

func (r *LedgerRepository) UpsertSnapshot(_ context.Context, entry ledger.Entry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ledgerKey{teamID: entry.TeamID, number: entry.MatchdayNumber}
	current, ok := r.items[key]
	if ok && current.IsSettled() {
		return false, nil
	}

	next := ledger.Clone(entry)
	next.SettledAt = nil
	next.PointsEarned = decimal.Zero
	if ok {
		next.CreatedAt = current.CreatedAt
	}
	r.items[key] = next
	return true, nil
}

func (r *LedgerRepository) ApplySettlement(_ context.Context, teamID string, matchdayNumber int, points decimal.Decimal, settledAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ledgerKey{teamID: teamID, number: matchdayNumber}
	entry, ok := r.items[key]
	if !ok || entry.IsSettled() {
		return false, nil
	}
	if !r.teams.addPoints(teamID, points, true) {
		return false, fmt.Errorf("apply settlement: team %s not found", teamID)
	}

	at := settledAt
	entry.PointsEarned = points
	entry.SettledAt = &at
	entry.UpdatedAt = settledAt
	r.items[key] = entry
	return true, nil
}

func (r *LedgerRepository) RevertSettlement(_ context.Context, teamID string, matchdayNumber int) (decimal.Decimal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ledgerKey{teamID: teamID, number: matchdayNumber}
	entry, ok := r.items[key]
	if !ok || !entry.IsSettled() {
		return decimal.Zero, false, nil
	}
	points := entry.PointsEarned
	if !r.teams.addPoints(teamID, points.Neg(), false) {
		return decimal.Zero, false, fmt.Errorf("revert settlement: team %s not found", teamID)
	}

	entry.PointsEarned = decimal.Zero
	entry.SettledAt = nil
	entry.UpdatedAt = r.now().UTC()
	r.items[key] = entry
	return points, true, nil
}

func (r *LedgerRepository) DeleteSnapshot(_ context.Context, teamID string, matchdayNumber int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ledgerKey{teamID: teamID, number: matchdayNumber}
	entry, ok := r.items[key]
	if !ok || entry.IsSettled() {
		return false, nil
	}
	delete(r.items, key)
	return true, nil
}

func (r *LedgerRepository) DeleteByMatchday(_ context.Context, matchdayNumber int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.items {
		if key.number == matchdayNumber {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *LedgerRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.items)
	return nil
}

func (r *LedgerRepository) filter(keep func(ledger.Entry) bool) []ledger.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ledger.Entry, 0)
	for _, entry := range r.items {
		if keep(entry) {
			out = append(out, ledger.Clone(entry))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchdayNumber != out[j].MatchdayNumber {
			return out[i].MatchdayNumber < out[j].MatchdayNumber
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}
