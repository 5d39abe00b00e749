package cache

import (
	"context"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	basecache "github.com/legastork/futsal-fantasy/internal/platform/cache"
	"github.com/shopspring/decimal"
)

const (
	playerKeyPrefix  = "player:"
	playerListKey    = "player:list"
	teamListKey      = "team:list"
	settingsKey      = "settings"
	playerByIDPrefix = "player:id:"
	sponsorListKey   = "sponsor:list"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerByIDPrefix+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

// GetByIDs is served from the cached catalog so lineup checks never hit the store twice.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]player.Player, len(all))
	for _, item := range all {
		byID[item.ID] = item
	}
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	defer r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return r.next.Upsert(ctx, item)
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	defer r.cache.DeletePrefix(ctx, playerKeyPrefix)
	return r.next.Delete(ctx, playerID)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

// SponsorRepository caches the public sponsor list only.
type SponsorRepository struct {
	sponsor.Repository
	cache *basecache.Store
}

func NewSponsorRepository(next sponsor.Repository, cache *basecache.Store) *SponsorRepository {
	return &SponsorRepository{Repository: next, cache: cache}
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	v, err := r.cache.GetOrLoad(ctx, sponsorListKey, func(ctx context.Context) (any, error) {
		items, err := r.Repository.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]sponsor.Sponsor(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]sponsor.Sponsor)
	return append([]sponsor.Sponsor(nil), items...), nil
}

func (r *SponsorRepository) Upsert(ctx context.Context, item sponsor.Sponsor) error {
	defer r.cache.Delete(ctx, sponsorListKey)
	return r.Repository.Upsert(ctx, item)
}

func (r *SponsorRepository) Delete(ctx context.Context, sponsorID string) error {
	defer r.cache.Delete(ctx, sponsorListKey)
	return r.Repository.Delete(ctx, sponsorID)
}

// TeamRepository caches the team list that standings are built from. Single
// team reads go to the store because roster writes compare against their version.
type TeamRepository struct {
	next  fantasy.Repository
	cache *basecache.Store
}

func NewTeamRepository(next fantasy.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]fantasy.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneTeams(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fantasy.Team)
	return cloneTeams(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (fantasy.Team, bool, error) {
	return r.next.GetByID(ctx, teamID)
}

func (r *TeamRepository) Create(ctx context.Context, team fantasy.Team) error {
	defer r.cache.Delete(ctx, teamListKey)
	return r.next.Create(ctx, team)
}

func (r *TeamRepository) UpdateProfile(ctx context.Context, teamID, teamName, managerName, logoURL string) (bool, error) {
	defer r.cache.Delete(ctx, teamListKey)
	return r.next.UpdateProfile(ctx, teamID, teamName, managerName, logoURL)
}

func (r *TeamRepository) UpdateRoster(ctx context.Context, teamID string, expectedVersion int64, roster fantasy.Roster) (bool, error) {
	defer r.cache.Delete(ctx, teamListKey)
	return r.next.UpdateRoster(ctx, teamID, expectedVersion, roster)
}

func (r *TeamRepository) ResetAll(ctx context.Context, initialBudget int64) error {
	defer r.cache.Delete(ctx, teamListKey)
	return r.next.ResetAll(ctx, initialBudget)
}

func cloneTeams(items []fantasy.Team) []fantasy.Team {
	out := make([]fantasy.Team, 0, len(items))
	for _, item := range items {
		out = append(out, fantasy.CloneTeam(item))
	}
	return out
}

// LedgerRepository is a pass-through that drops cached team totals whenever
// points move.
type LedgerRepository struct {
	ledger.Repository
	cache *basecache.Store
}

func NewLedgerRepository(next ledger.Repository, cache *basecache.Store) *LedgerRepository {
	return &LedgerRepository{Repository: next, cache: cache}
}

func (r *LedgerRepository) ApplySettlement(ctx context.Context, teamID string, matchdayNumber int, points decimal.Decimal, settledAt time.Time) (bool, error) {
	defer r.cache.Delete(ctx, teamListKey)
	return r.Repository.ApplySettlement(ctx, teamID, matchdayNumber, points, settledAt)
}

func (r *LedgerRepository) RevertSettlement(ctx context.Context, teamID string, matchdayNumber int) (decimal.Decimal, bool, error) {
	defer r.cache.Delete(ctx, teamListKey)
	return r.Repository.RevertSettlement(ctx, teamID, matchdayNumber)
}

func (r *LedgerRepository) DeleteAll(ctx context.Context) error {
	defer r.cache.Delete(ctx, teamListKey)
	return r.Repository.DeleteAll(ctx)
}

type SettingsRepository struct {
	next  settings.Repository
	cache *basecache.Store
}

func NewSettingsRepository(next settings.Repository, cache *basecache.Store) *SettingsRepository {
	return &SettingsRepository{next: next, cache: cache}
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.Settings, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, settingsKey, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Get(ctx)
		if err != nil {
			return nil, err
		}
		return cachedSettings{value: item, exists: exists}, nil
	})
	if err != nil {
		return settings.Settings{}, false, err
	}

	cached, _ := v.(cachedSettings)
	out := cached.value
	if out.MarketDeadline != nil {
		deadline := *out.MarketDeadline
		out.MarketDeadline = &deadline
	}
	return out, cached.exists, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, item settings.Settings) error {
	defer r.cache.Delete(ctx, settingsKey)
	return r.next.Upsert(ctx, item)
}

func (r *SettingsRepository) AdvanceMatchday(ctx context.Context, number int) error {
	defer r.cache.Delete(ctx, settingsKey)
	return r.next.AdvanceMatchday(ctx, number)
}

func (r *SettingsRepository) ResetMatchday(ctx context.Context) error {
	defer r.cache.Delete(ctx, settingsKey)
	return r.next.ResetMatchday(ctx)
}

type cachedSettings struct {
	value  settings.Settings
	exists bool
}
