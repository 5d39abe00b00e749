package observability

import (
	"fmt"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/legastork/futsal-fantasy/internal/config"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

// settlementProfiles includes block and mutex profiles for the settlement worker pool.
var settlementProfiles = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileMutexDuration,
	pyroscope.ProfileBlockDuration,
}

// profileTags flattens league labels into pyroscope tag names, which allow no dots.
func profileTags(cfg config.Config) map[string]string {
	tags := map[string]string{
		"env":     cfg.AppEnv,
		"version": cfg.ServiceVersion,
	}
	for _, l := range leagueLabels(cfg) {
		tags[strings.ReplaceAll(l.key, ".", "_")] = l.value
	}
	return tags
}

// InitPyroscope starts continuous profiling of the API when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PyroscopeEnabled {
		return func() error { return nil }, nil
	}

	tags := profileTags(cfg)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              tags,
		ProfileTypes:      settlementProfiles,
	})
	if err != nil {
		return nil, fmt.Errorf("start league profiler: %w", err)
	}

	logger.Info("league profiling enabled",
		"application", cfg.PyroscopeAppName,
		"server_address", cfg.PyroscopeServerAddress,
		"tags", len(tags),
	)
	return profiler.Stop, nil
}
