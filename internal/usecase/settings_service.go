package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

type UpdateSettingsInput struct {
	LeagueName      string
	IsMarketOpen    bool
	IsLineupLocked  bool
	CurrentMatchday int
	LiveStreamURL   string
	TickerText      string
	MarketDeadline  *time.Time
}

type SettingsService struct {
	settingsRepo settings.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewSettingsService(settingsRepo settings.Repository, logger *logging.Logger) *SettingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (s *SettingsService) Get(ctx context.Context) (settings.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.Get")
	defer span.End()

	return loadSettings(ctx, s.settingsRepo)
}

func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (settings.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.Update")
	defer span.End()

	item := settings.Settings{
		LeagueName:      strings.TrimSpace(input.LeagueName),
		IsMarketOpen:    input.IsMarketOpen,
		IsLineupLocked:  input.IsLineupLocked,
		CurrentMatchday: input.CurrentMatchday,
		LiveStreamURL:   strings.TrimSpace(input.LiveStreamURL),
		TickerText:      strings.TrimSpace(input.TickerText),
		MarketDeadline:  input.MarketDeadline,
		UpdatedAt:       s.now().UTC(),
	}
	if item.LeagueName == "" {
		item.LeagueName = settings.DefaultLeagueName
	}
	if err := item.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Upsert(ctx, item); err != nil {
		return settings.Settings{}, errors.Wrap(err, "upsert settings")
	}

	s.logger.InfoContext(ctx, "settings updated",
		"market_open", item.IsMarketOpen,
		"lineup_locked", item.IsLineupLocked,
		"current_matchday", item.CurrentMatchday,
	)
	return item, nil
}

func loadSettings(ctx context.Context, repo settings.Repository) (settings.Settings, error) {
	item, exists, err := repo.Get(ctx)
	if err != nil {
		return settings.Settings{}, errors.Wrap(err, "get settings")
	}
	if !exists {
		return settings.Default(), nil
	}

	return item, nil
}
