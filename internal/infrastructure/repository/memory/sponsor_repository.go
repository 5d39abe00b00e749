package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
)

type SponsorRepository struct {
	mu    sync.RWMutex
	items map[string]sponsor.Sponsor
}

func NewSponsorRepository(sponsors ...sponsor.Sponsor) *SponsorRepository {
	r := &SponsorRepository{items: make(map[string]sponsor.Sponsor, len(sponsors))}
	for _, s := range sponsors {
		r.items[s.ID] = s
	}
	return r
}

// List orders by name then id, like the postgres repository.
func (r *SponsorRepository) List(_ context.Context) ([]sponsor.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sponsor.Sponsor, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SponsorRepository) GetByID(_ context.Context, sponsorID string) (sponsor.Sponsor, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[sponsorID]
	return s, ok, nil
}

func (r *SponsorRepository) Upsert(_ context.Context, item sponsor.Sponsor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *SponsorRepository) Delete(_ context.Context, sponsorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sponsorID)
	return nil
}
