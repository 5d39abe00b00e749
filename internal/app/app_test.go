package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/legastork/futsal-fantasy/internal/config"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		ServiceName:                "futsal-fantasy-api",
		HTTPAddr:                   ":0",
		StorageDriver:              config.StorageMemory,
		CacheEnabled:               true,
		CacheTTL:                   time.Minute,
		CORSAllowedOrigins:         []string{"*"},
		AdminRole:                  "admin",
		AnubisBaseURL:              "http://127.0.0.1:1",
		AnubisIntrospectPath:       "/v1/auth/introspect",
		LeagueInitialBudget:        250,
		LeagueMaxSquadSize:         10,
		LeagueGoalkeeperStarters:   1,
		LeagueOutfieldStarters:     4,
		SettlementWorkers:          2,
		SettlementScoreUnconfirmed: true,
	}
}

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Saracinesca")

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewHTTPServer_RejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestLeagueRules(t *testing.T) {
	cfg := memoryConfig()
	cfg.LeagueOutfieldStarters = 5

	rules := leagueRules(cfg)
	assert.EqualValues(t, 250, rules.InitialBudget)
	assert.Equal(t, 1, rules.StartersByRole[player.RoleGoalkeeper])
	assert.Equal(t, 5, rules.StartersByRole[player.RoleOutfield])
	assert.Equal(t, 6, rules.LineupSize())
}
