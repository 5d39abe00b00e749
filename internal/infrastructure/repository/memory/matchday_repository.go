package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/scoring"
)

type MatchdayRepository struct {
	mu    sync.RWMutex
	items map[string]matchday.Matchday
	now   func() time.Time
}

func NewMatchdayRepository(items ...matchday.Matchday) *MatchdayRepository {
	r := &MatchdayRepository{
		items: make(map[string]matchday.Matchday, len(items)),
		now:   time.Now,
	}
	for _, item := range items {
		r.items[item.ID] = cloneMatchday(item)
	}

	return r
}

func (r *MatchdayRepository) List(_ context.Context) ([]matchday.Matchday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchday.Matchday, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneMatchday(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })

	return out, nil
}

func (r *MatchdayRepository) GetByID(_ context.Context, matchdayID string) (matchday.Matchday, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchdayID]
	if !ok {
		return matchday.Matchday{}, false, nil
	}
	return cloneMatchday(item), true, nil
}

func (r *MatchdayRepository) GetByNumber(_ context.Context, number int) (matchday.Matchday, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Number == number {
			return cloneMatchday(item), true, nil
		}
	}
	return matchday.Matchday{}, false, nil
}

func (r *MatchdayRepository) Create(_ context.Context, item matchday.Matchday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Number == item.Number {
			return matchday.ErrDuplicateNumber
		}
	}
	r.items[item.ID] = cloneMatchday(item)
	return nil
}

func (r *MatchdayRepository) MergeVotes(_ context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats) (bool, error) {
	return r.writeVotes(matchdayID, func(existing map[string]scoring.PlayerMatchStats) map[string]scoring.PlayerMatchStats {
		return matchday.MergeVotes(existing, votes)
	})
}

func (r *MatchdayRepository) ReplaceVotes(_ context.Context, matchdayID string, votes map[string]scoring.PlayerMatchStats) (bool, error) {
	return r.writeVotes(matchdayID, func(map[string]scoring.PlayerMatchStats) map[string]scoring.PlayerMatchStats {
		return matchday.CloneVotes(votes)
	})
}

func (r *MatchdayRepository) TransitionStatus(_ context.Context, matchdayID string, from, to matchday.Status) (bool, error) {
	if err := matchday.ValidateTransition(from, to); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[matchdayID]
	if !ok || item.Status != from {
		return false, nil
	}
	item.Status = to
	item.UpdatedAt = r.now().UTC()
	r.items[matchdayID] = item
	return true, nil
}

func (r *MatchdayRepository) Delete(_ context.Context, matchdayID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, matchdayID)
	return nil
}

func (r *MatchdayRepository) ReopenAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	for id, item := range r.items {
		item.Status = matchday.StatusOpen
		item.Votes = map[string]scoring.PlayerMatchStats{}
		item.UpdatedAt = now
		r.items[id] = item
	}
	return nil
}

func (r *MatchdayRepository) writeVotes(matchdayID string, next func(map[string]scoring.PlayerMatchStats) map[string]scoring.PlayerMatchStats) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[matchdayID]
	if !ok || !item.IsOpen() {
		return false, nil
	}
	item.Votes = next(item.Votes)
	item.UpdatedAt = r.now().UTC()
	r.items[matchdayID] = item
	return true, nil
}

func cloneMatchday(item matchday.Matchday) matchday.Matchday {
	out := item
	out.Votes = matchday.CloneVotes(item.Votes)
	return out
}
