package usecase

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsRepository(), logging.NewNop())

	got, err := service.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultLeagueName, got.LeagueName)
	assert.True(t, got.IsMarketOpen)
	assert.False(t, got.IsLineupLocked)
	assert.Equal(t, 1, got.CurrentMatchday)
}

func TestSettingsService_Update(t *testing.T) {
	service := NewSettingsService(memory.NewSettingsRepository(), logging.NewNop())
	service.now = func() time.Time { return fixedNow }

	deadline := fixedNow.Add(48 * time.Hour)
	updated, err := service.Update(t.Context(), UpdateSettingsInput{
		IsMarketOpen:    false,
		IsLineupLocked:  true,
		CurrentMatchday: 4,
		TickerText:      " Derby sabato alle 18 ",
		MarketDeadline:  &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultLeagueName, updated.LeagueName)
	assert.Equal(t, "Derby sabato alle 18", updated.TickerText)

	got, err := service.Get(t.Context())
	require.NoError(t, err)
	assert.False(t, got.IsMarketOpen)
	assert.Equal(t, 4, got.CurrentMatchday)
	require.NotNil(t, got.MarketDeadline)
	assert.True(t, got.MarketDeadline.Equal(deadline))

	_, err = service.Update(t.Context(), UpdateSettingsInput{CurrentMatchday: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
