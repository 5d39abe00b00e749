package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/legastork/futsal-fantasy/internal/config"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/account/anubis"
	"github.com/legastork/futsal-fantasy/internal/interfaces/httpapi"
	idgen "github.com/legastork/futsal-fantasy/internal/platform/id"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/legastork/futsal-fantasy/internal/platform/resilience"
	"github.com/legastork/futsal-fantasy/internal/usecase"
)

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the storage backend and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rules := leagueRules(cfg)
	settlementCfg := usecase.SettlementConfig{
		Workers:          cfg.SettlementWorkers,
		ScoreUnconfirmed: cfg.SettlementScoreUnconfirmed,
	}
	ids := idgen.NewUUIDGenerator()

	settlement := usecase.NewSettlementService(repos.matchdays, repos.teams, repos.ledger, repos.settings, settlementCfg, logger)
	services := httpapi.Services{
		Settings:  usecase.NewSettingsService(repos.settings, logger),
		Players:   usecase.NewPlayerService(repos.players, repos.teams, ids, logger),
		Teams:     usecase.NewTeamService(repos.teams, rules, logger),
		Roster:    usecase.NewRosterService(repos.teams, repos.players, repos.settings, repos.matchdays, repos.ledger, rules, logger),
		Matchdays: usecase.NewMatchdayService(repos.matchdays, repos.ledger, settlement, ids, logger),
		Standings: usecase.NewStandingsService(repos.teams, repos.ledger, logger),
		Season:    usecase.NewSeasonService(repos.teams, repos.ledger, repos.matchdays, repos.settings, rules, logger),
		Sponsors:  usecase.NewSponsorService(repos.sponsors, ids, logger),
	}

	verifier := anubis.NewClient(anubis.Config{
		BaseURL:         cfg.AnubisBaseURL,
		IntrospectPath:  cfg.AnubisIntrospectPath,
		AdminKey:        cfg.AnubisAdminKey,
		Timeout:         cfg.AnubisTimeout,
		CacheTTL:        cfg.AnubisCacheTTL,
		CacheMaxEntries: cfg.AnubisCacheMaxEntries,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AnubisCircuitEnabled,
			FailureThreshold: cfg.AnubisCircuitFailureCount,
			OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
		},
	}, logger)

	handler := httpapi.NewHandler(services, logger)
	router := httpapi.NewRouter(handler, verifier, logger, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminRole:          cfg.AdminRole,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func leagueRules(cfg config.Config) fantasy.Rules {
	return fantasy.Rules{
		InitialBudget: cfg.LeagueInitialBudget,
		MaxSquadSize:  cfg.LeagueMaxSquadSize,
		StartersByRole: map[player.Role]int{
			player.RoleGoalkeeper: cfg.LeagueGoalkeeperStarters,
			player.RoleOutfield:   cfg.LeagueOutfieldStarters,
		},
	}
}
