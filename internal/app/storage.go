package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/legastork/futsal-fantasy/internal/config"
	"github.com/legastork/futsal-fantasy/internal/domain/fantasy"
	"github.com/legastork/futsal-fantasy/internal/domain/ledger"
	"github.com/legastork/futsal-fantasy/internal/domain/matchday"
	"github.com/legastork/futsal-fantasy/internal/domain/player"
	"github.com/legastork/futsal-fantasy/internal/domain/settings"
	"github.com/legastork/futsal-fantasy/internal/domain/sponsor"
	cacherepo "github.com/legastork/futsal-fantasy/internal/infrastructure/repository/cache"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/memory"
	"github.com/legastork/futsal-fantasy/internal/infrastructure/repository/postgres"
	basecache "github.com/legastork/futsal-fantasy/internal/platform/cache"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

type repositories struct {
	players   player.Repository
	teams     fantasy.Repository
	matchdays matchday.Repository
	ledger    ledger.Repository
	settings  settings.Repository
	sponsors  sponsor.Repository
	close     func() error
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories
	switch cfg.StorageDriver {
	case config.StorageMemory:
		teams := memory.NewTeamRepository()
		repos = repositories{
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			teams:     teams,
			matchdays: memory.NewMatchdayRepository(),
			ledger:    memory.NewLedgerRepository(teams),
			settings:  memory.NewSettingsRepository(),
			sponsors:  memory.NewSponsorRepository(),
			close:     func() error { return nil },
		}
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		repos = repositories{
			players:   postgres.NewPlayerRepository(db),
			teams:     postgres.NewTeamRepository(db),
			matchdays: postgres.NewMatchdayRepository(db),
			ledger:    postgres.NewLedgerRepository(db),
			settings:  postgres.NewSettingsRepository(db),
			sponsors:  postgres.NewSponsorRepository(db),
			close:     db.Close,
		}
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	// Matchdays stay uncached: votes are written too often for a TTL cache to pay off.
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.ledger = cacherepo.NewLedgerRepository(repos.ledger, store)
		repos.settings = cacherepo.NewSettingsRepository(repos.settings, store)
		repos.sponsors = cacherepo.NewSponsorRepository(repos.sponsors, store)
	}

	logger.Info("storage ready", "driver", cfg.StorageDriver, "cache_enabled", cfg.CacheEnabled, "cache_ttl", cfg.CacheTTL)
	return repos, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	attrs := []attribute.KeyValue{attribute.String("db.system", "postgresql")}

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attrs...),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithAttributes(attrs...))
	return db, nil
}
