package observability

import (
	"context"
	"strconv"

	"github.com/legastork/futsal-fantasy/internal/config"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

type leagueLabel struct {
	key   string
	value string
}

// leagueLabels describe how this deployment stores and settles matchdays.
func leagueLabels(cfg config.Config) []leagueLabel {
	return []leagueLabel{
		{key: "league.storage_driver", value: cfg.StorageDriver},
		{key: "league.cache_enabled", value: strconv.FormatBool(cfg.CacheEnabled)},
		{key: "league.settlement_workers", value: strconv.Itoa(cfg.SettlementWorkers)},
		{key: "league.score_unconfirmed", value: strconv.FormatBool(cfg.SettlementScoreUnconfirmed)},
	}
}

func leagueResourceAttributes(cfg config.Config) []attribute.KeyValue {
	labels := leagueLabels(cfg)
	out := make([]attribute.KeyValue, 0, len(labels))
	for _, l := range labels {
		out = append(out, attribute.String(l.key, l.value))
	}
	return out
}

// InitUptrace exports league traces, metrics and (optionally) logs. The returned
// shutdown flushes the exporters and detaches the log mirror.
func InitUptrace(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	if logger == nil {
		logger = logging.Default()
	}

	noop := func(context.Context) error { return nil }
	if !cfg.UptraceEnabled || cfg.UptraceDSN == "" {
		logging.SetMirror(nil)
		logger.Info("league telemetry export off", "enabled", cfg.UptraceEnabled, "dsn_set", cfg.UptraceDSN != "")
		return noop
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(leagueResourceAttributes(cfg)...),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)

	var mirror logging.MirrorFunc
	if cfg.UptraceLogsEnabled {
		mirror = newUptraceLogMirror(cfg.ServiceVersion)
	}
	logging.SetMirror(mirror)

	logger.Info("league telemetry exporting to uptrace",
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
		"storage_driver", cfg.StorageDriver,
		"settlement_workers", cfg.SettlementWorkers,
		"logs_mirrored", mirror != nil,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}
}
