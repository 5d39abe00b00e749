package usecase

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_RegisterStartsWithFullBudget(t *testing.T) {
	f := newLeagueFixture(t)

	team, err := f.teamService.Register(t.Context(), RegisterTeamInput{
		UserID:      "  user-1 ",
		TeamName:    " I Calcianti ",
		ManagerName: "Marco",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", team.ID)
	assert.Equal(t, "I Calcianti", team.TeamName)
	assert.Equal(t, int64(250), team.Roster.CreditsLeft)
	assert.Empty(t, team.Roster.PlayerIDs)
	assert.True(t, team.TotalPoints.IsZero())
	assert.True(t, team.CreatedAt.Equal(fixedNow))
}

func TestTeamService_RegisterTwiceIsConflict(t *testing.T) {
	f := newLeagueFixture(t)
	registerTeam(t, f, "user-1")

	_, err := f.teamService.Register(t.Context(), RegisterTeamInput{UserID: "user-1", TeamName: "Again", ManagerName: "Again"})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestTeamService_RegisterInvalidInput(t *testing.T) {
	f := newLeagueFixture(t)

	tests := []RegisterTeamInput{
		{TeamName: "No User", ManagerName: "Marco"},
		{UserID: "user-1", ManagerName: "Marco"},
		{UserID: "user-1", TeamName: "No Manager"},
	}
	for _, input := range tests {
		_, err := f.teamService.Register(t.Context(), input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestTeamService_UpdateProfileKeepsRosterAndPoints(t *testing.T) {
	ctx := t.Context()
	f := newLeagueFixture(t, teamWithLineup("team-x", "Team X", "12.5", "1"))

	team, err := f.teamService.UpdateProfile(ctx, UpdateTeamProfileInput{
		TeamID:      "team-x",
		TeamName:    "Real Birra",
		ManagerName: "Luca",
		LogoURL:     "https://cdn.example.com/logo.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "Real Birra", team.TeamName)
	assert.Equal(t, "https://cdn.example.com/logo.png", team.LogoURL)
	assert.Equal(t, []string{"1"}, team.Roster.PlayerIDs)
	assert.Equal(t, "12.5", team.TotalPoints.String())

	_, err = f.teamService.UpdateProfile(ctx, UpdateTeamProfileInput{TeamID: "missing", TeamName: "x", ManagerName: "y"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
