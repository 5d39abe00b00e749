package memory

import (
	"context"
	"sync"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/settings"
)

type SettingsRepository struct {
	mu     sync.RWMutex
	item   settings.Settings
	exists bool
	now    func() time.Time
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{now: time.Now}
}

func (r *SettingsRepository) Get(_ context.Context) (settings.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.exists {
		return settings.Settings{}, false, nil
	}
	return cloneSettings(r.item), true, nil
}

func (r *SettingsRepository) Upsert(_ context.Context, item settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.item = cloneSettings(item)
	r.exists = true
	return nil
}

func (r *SettingsRepository) AdvanceMatchday(_ context.Context, number int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLocked()
	if number > r.item.CurrentMatchday {
		r.item.CurrentMatchday = number
		r.item.UpdatedAt = r.now().UTC()
	}
	return nil
}

func (r *SettingsRepository) ResetMatchday(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLocked()
	r.item.CurrentMatchday = 1
	r.item.UpdatedAt = r.now().UTC()
	return nil
}

func (r *SettingsRepository) ensureLocked() {
	if r.exists {
		return
	}
	r.item = settings.Default()
	r.exists = true
}

func cloneSettings(item settings.Settings) settings.Settings {
	out := item
	if item.MarketDeadline != nil {
		deadline := *item.MarketDeadline
		out.MarketDeadline = &deadline
	}
	return out
}
