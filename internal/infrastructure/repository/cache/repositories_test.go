package cache

import (
	"testing"
	"time"

	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	fantasymock "github.com/legastork/futsal-fantasy/internal/mocks/domain/fantasy"
	ledgermock "github.com/legastork/futsal-fantasy/internal/mocks/domain/ledger"
	playermock "github.com/legastork/futsal-fantasy/internal/mocks/domain/player"
	settingsmock "github.com/legastork/futsal-fantasy/internal/mocks/domain/settings"
	basecache "github.com/legastork/futsal-fantasy/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_ListIsCachedUntilWrite(t *testing.T) {
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	catalog := []player.Player{
		{ID: "1", Name: "Il Capitano", Role: player.RoleOutfield, Price: 45},
		{ID: "3", Name: "Saracinesca", Role: player.RoleGoalkeeper, Price: 25},
	}
	next.On("List", mock.Anything).Return(catalog, nil).Twice()
	next.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	first, err := repo.List(t.Context())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Il Capitano", second[0].Name)

	byIDs, err := repo.GetByIDs(t.Context(), []string{"3", "missing", "1"})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)
	assert.Equal(t, "3", byIDs[0].ID)
	assert.Equal(t, "1", byIDs[1].ID)

	require.NoError(t, repo.Upsert(t.Context(), catalog[0]))
	_, err = repo.List(t.Context())
	require.NoError(t, err)
}

func TestTeamRepository_ListInvalidatedBySettlement(t *testing.T) {
	store := basecache.NewStore(time.Minute)
	nextTeams := fantasymock.NewRepository(t)
	nextLedger := ledgermock.NewRepository(t)
	teams := NewTeamRepository(nextTeams, store)
	ledgerRepo := NewLedgerRepository(nextLedger, store)

	nextTeams.On("List", mock.Anything).
		Return([]fantasy.Team{{ID: "u1", TeamName: "Birra FC", TotalPoints: decimal.Zero}}, nil).
		Once()
	nextTeams.On("List", mock.Anything).
		Return([]fantasy.Team{{ID: "u1", TeamName: "Birra FC", TotalPoints: decimal.NewFromInt(10)}}, nil).
		Once()
	nextLedger.On("ApplySettlement", mock.Anything, "u1", 3, mock.Anything, mock.Anything).Return(true, nil).Once()

	before, err := teams.List(t.Context())
	require.NoError(t, err)
	cached, err := teams.List(t.Context())
	require.NoError(t, err)
	assert.True(t, cached[0].TotalPoints.Equal(before[0].TotalPoints))

	ok, err := ledgerRepo.ApplySettlement(t.Context(), "u1", 3, decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	after, err := teams.List(t.Context())
	require.NoError(t, err)
	assert.True(t, after[0].TotalPoints.Equal(decimal.NewFromInt(10)))
}

func TestSettingsRepository_AdvanceDropsCachedRow(t *testing.T) {
	next := settingsmock.NewRepository(t)
	repo := NewSettingsRepository(next, basecache.NewStore(time.Minute))

	current := settings.Default()
	advanced := settings.Default()
	advanced.CurrentMatchday = 4
	next.On("Get", mock.Anything).Return(current, true, nil).Once()
	next.On("Get", mock.Anything).Return(advanced, true, nil).Once()
	next.On("AdvanceMatchday", mock.Anything, 4).Return(nil).Once()

	got, _, err := repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentMatchday)
	got, _, err = repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentMatchday)

	require.NoError(t, repo.AdvanceMatchday(t.Context(), 4))
	got, _, err = repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 4, got.CurrentMatchday)
}

func TestSponsorRepository_ListCachedUntilAdminWrite(t *testing.T) {
	ctx := t.Context()
	next := memory.NewSponsorRepository(sponsor.Sponsor{ID: "sp-1", Name: "Birrificio Stork"})
	repo := NewSponsorRepository(next, basecache.NewStore(time.Minute))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// Writes that bypass the decorator stay hidden until the TTL or a decorated write.
	require.NoError(t, next.Upsert(ctx, sponsor.Sponsor{ID: "sp-2", Name: "Pizzeria Da Lele"}))
	listed, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, repo.Delete(ctx, "sp-1"))
	listed, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "sp-2", listed[0].ID)
}
