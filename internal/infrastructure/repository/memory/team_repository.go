package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/shopspring/decimal"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]fantasy.Team
	now   func() time.Time
}

func NewTeamRepository(teams ...fantasy.Team) *TeamRepository {
	r := &TeamRepository{
		items: make(map[string]fantasy.Team, len(teams)),
		now:   time.Now,
	}
	for _, t := range teams {
		r.items[t.ID] = fantasy.CloneTeam(t)
	}

	return r
}

// List returns teams ordered by id so results are stable between calls.
func (r *TeamRepository) List(_ context.Context) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, fantasy.CloneTeam(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (fantasy.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return fantasy.Team{}, false, nil
	}
	return fantasy.CloneTeam(t), true, nil
}

func (r *TeamRepository) Create(_ context.Context, team fantasy.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[team.ID]; ok {
		return fantasy.ErrTeamExists
	}
	r.items[team.ID] = fantasy.CloneTeam(team)
	return nil
}

func (r *TeamRepository) UpdateProfile(_ context.Context, teamID, teamName, managerName, logoURL string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return false, nil
	}
	t.TeamName = teamName
	t.ManagerName = managerName
	t.LogoURL = logoURL
	t.UpdatedAt = r.now().UTC()
	r.items[teamID] = t
	return true, nil
}

func (r *TeamRepository) UpdateRoster(_ context.Context, teamID string, expectedVersion int64, roster fantasy.Roster) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok || t.RosterVersion != expectedVersion {
		return false, nil
	}
	t.Roster = roster.Clone()
	t.RosterVersion++
	t.UpdatedAt = r.now().UTC()
	r.items[teamID] = t
	return true, nil
}

func (r *TeamRepository) ResetAll(_ context.Context, initialBudget int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	for id, t := range r.items {
		t.Roster = fantasy.Roster{
			PlayerIDs:   []string{},
			LineupIDs:   []string{},
			CreditsLeft: initialBudget,
		}
		t.RosterVersion++
		t.TotalPoints = decimal.Zero
		t.UpdatedAt = now
		r.items[id] = t
	}
	return nil
}

// addPoints is used by the ledger repository while it holds its own lock.
func (r *TeamRepository) addPoints(teamID string, delta decimal.Decimal, clearConfirmed bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return false
	}
	t.TotalPoints = t.TotalPoints.Add(delta)
	if clearConfirmed && t.Roster.IsLineupConfirmed {
		t.Roster.IsLineupConfirmed = false
		t.RosterVersion++
	}
	t.UpdatedAt = r.now().UTC()
	r.items[teamID] = t
	return true
}
