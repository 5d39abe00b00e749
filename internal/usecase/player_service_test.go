package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	fantasymock "github.com/legastork/futsal-fantasy/internal/mocks/domain/fantasy"
	playermock "github.com/legastork/futsal-fantasy/internal/mocks/domain/player"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_ListOrderedByName(t *testing.T) {
	service := NewPlayerService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewTeamRepository(),
		idgen.NewSequenceGenerator(),
		logging.NewNop(),
	)

	players, err := service.List(t.Context())
	require.NoError(t, err)
	require.Len(t, players, 10)
	assert.Equal(t, "Bomber di Razza", players[0].Name)
	assert.Equal(t, "Zaino in Spalla", players[len(players)-1].Name)
}

func TestPlayerService_UpsertGeneratesIDAndDefaults(t *testing.T) {
	repo := memory.NewPlayerRepository(nil)
	service := NewPlayerService(repo, memory.NewTeamRepository(), idgen.NewSequenceGenerator("p-new"), logging.NewNop())

	created, err := service.Upsert(t.Context(), UpsertPlayerInput{
		Name:  " Nuovo Acquisto ",
		Club:  "Azzurri",
		Role:  "m",
		Price: 14,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-new", created.ID)
	assert.Equal(t, player.RoleOutfield, created.Role)
	assert.Equal(t, player.StatusAvailable, created.Status)

	_, err = service.Upsert(t.Context(), UpsertPlayerInput{ID: "p-new", Name: "x", Role: "X", Price: 10})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	_, err = service.Upsert(t.Context(), UpsertPlayerInput{ID: "p-new", Name: "x", Role: "P", Price: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero price, got %v", err)
	}
}

func TestPlayerService_DeleteOwnedPlayerRejectedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	teamRepo := fantasymock.NewRepository(t)
	service := NewPlayerService(playerRepo, teamRepo, idgen.NewSequenceGenerator(), logging.NewNop())

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "1").
		Return(player.Player{ID: "1", Name: "Il Capitano"}, true, nil).
		Once()
	teamRepo.
		On("List", mock.Anything).
		Return([]fantasy.Team{{ID: "team-x", Roster: fantasy.Roster{PlayerIDs: []string{"1"}}}}, nil).
		Once()

	err := service.Delete(ctx, "1")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	playerRepo.AssertNotCalled(t, "Delete", mock.Anything, "1")
}

func TestPlayerService_DeleteFreePlayer(t *testing.T) {
	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewPlayerService(repo, memory.NewTeamRepository(), idgen.NewSequenceGenerator(), logging.NewNop())

	require.NoError(t, service.Delete(t.Context(), "9"))

	_, err := service.Get(t.Context(), "9")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
