package observability

import (
	"context"
	"strings"
	"testing"

	"github.com/legastork/futsal-fantasy/internal/config"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "futsal-fantasy-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown := InitUptrace(cfg, logging.NewNop())
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestLeagueLabels_TagResourcesAndProfiles(t *testing.T) {
	cfg := config.Config{
		AppEnv:                     config.EnvDev,
		ServiceVersion:             "dev",
		StorageDriver:              config.StorageMemory,
		CacheEnabled:               true,
		SettlementWorkers:          8,
		SettlementScoreUnconfirmed: true,
	}

	attrs := leagueResourceAttributes(cfg)
	if len(attrs) != 4 {
		t.Fatalf("expected 4 resource attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "league.storage_driver" || attrs[0].Value.AsString() != config.StorageMemory {
		t.Fatalf("unexpected storage attribute: %v", attrs[0])
	}

	tags := profileTags(cfg)
	if tags["league_settlement_workers"] != "8" || tags["league_cache_enabled"] != "true" {
		t.Fatalf("unexpected profile tags: %v", tags)
	}
	for key := range tags {
		if strings.Contains(key, ".") {
			t.Fatalf("profile tag %q must not contain dots", key)
		}
	}
}
