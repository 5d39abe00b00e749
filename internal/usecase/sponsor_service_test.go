package usecase

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSponsorService_UpsertListDelete(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewSponsorRepository(sponsor.Sponsor{ID: "sp-0", Name: "pizzeria Da Lele", Type: "Food"})
	service := NewSponsorService(repo, idgen.NewSequenceGenerator("sp-1"), logging.NewNop())

	created, err := service.Upsert(ctx, UpsertSponsorInput{
		Name:    " Birrificio Stork ",
		Type:    "Main",
		LogoURL: "https://cdn.example.com/stork.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "sp-1", created.ID)
	assert.Equal(t, "Birrificio Stork", created.Name)

	updated, err := service.Upsert(ctx, UpsertSponsorInput{ID: "sp-1", Name: "Birrificio Stork", LinkURL: "https://stork.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://stork.example.com", updated.LinkURL)

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "sp-1", items[0].ID)
	assert.Equal(t, "sp-0", items[1].ID)

	require.NoError(t, service.Delete(ctx, "sp-0"))
	err = service.Delete(ctx, "sp-0")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSponsorService_UpsertRejectsInvalidInput(t *testing.T) {
	service := NewSponsorService(memory.NewSponsorRepository(), idgen.NewSequenceGenerator("sp-1", "sp-2", "sp-3"), logging.NewNop())

	cases := []UpsertSponsorInput{
		{Name: "  "},
		{Name: "Stork", LogoURL: "ftp://cdn.example.com/logo.png"},
		{Name: "Stork", LinkURL: "stork.example.com"},
	}
	for _, input := range cases {
		_, err := service.Upsert(t.Context(), input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}
