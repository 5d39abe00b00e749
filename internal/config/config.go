package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/legastork/futsal-fantasy/internal/platform/logging"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level

	StorageDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	CacheEnabled            bool
	CacheTTL                time.Duration

	CORSAllowedOrigins []string
	AdminRole          string

	AnubisBaseURL               string
	AnubisIntrospectPath        string
	AnubisAdminKey              string
	AnubisTimeout               time.Duration
	AnubisCacheTTL              time.Duration
	AnubisCacheMaxEntries       int
	AnubisCircuitEnabled        bool
	AnubisCircuitFailureCount   int
	AnubisCircuitOpenTimeout    time.Duration
	AnubisCircuitHalfOpenMaxReq int

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	LeagueInitialBudget        int64
	LeagueMaxSquadSize         int
	LeagueGoalkeeperStarters   int
	LeagueOutfieldStarters     int
	SettlementWorkers          int
	SettlementScoreUnconfirmed bool
}

// LoadDotEnv fills unset variables from the given env files. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:               appEnv,
		ServiceName:          getEnv("APP_SERVICE_NAME", "futsal-fantasy-api"),
		ServiceVersion:       getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:             getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:             parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		StorageDriver:        strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StoragePostgres))),
		DBURL:                strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:   splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminRole:            strings.TrimSpace(getEnv("ADMIN_ROLE", "admin")),
		AnubisBaseURL:        strings.TrimSpace(getEnv("ANUBIS_BASE_URL", "http://localhost:8081")),
		AnubisIntrospectPath: strings.TrimSpace(getEnv("ANUBIS_INTROSPECT_PATH", "/v1/auth/introspect")),
		AnubisAdminKey:       strings.TrimSpace(getEnv("ANUBIS_ADMIN_KEY", "")),
		UptraceDSN:           strings.TrimSpace(getEnv("UPTRACE_DSN", "")),

		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	if err := loadServer(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadStorage(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadAnubis(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadTelemetry(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLeague(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadServer(cfg *Config) error {
	var err error
	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return err
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AdminRole == "" {
		return fmt.Errorf("ADMIN_ROLE cannot be empty")
	}
	return nil
}

func loadStorage(cfg *Config) error {
	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBURL == "" {
			return fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", cfg.StorageDriver, StoragePostgres, StorageMemory)
	}

	var err error
	if cfg.DBDisablePreparedBinary, err = getEnvAsBool("DB_DISABLE_PREPARED_BINARY_RESULT", true); err != nil {
		return err
	}
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return err
	}
	if cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", 60*time.Second); err != nil {
		return err
	}
	return nil
}

func loadAnubis(cfg *Config) error {
	if cfg.AnubisBaseURL == "" {
		return fmt.Errorf("ANUBIS_BASE_URL cannot be empty")
	}

	var err error
	if cfg.AnubisTimeout, err = getEnvAsDuration("ANUBIS_TIMEOUT", 3*time.Second); err != nil {
		return err
	}
	if cfg.AnubisCacheTTL, err = getEnvAsDuration("ANUBIS_CACHE_TTL", 30*time.Second); err != nil {
		return err
	}
	if cfg.AnubisCacheMaxEntries, err = getEnvAsInt("ANUBIS_CACHE_MAX_ENTRIES", 10000); err != nil {
		return fmt.Errorf("parse ANUBIS_CACHE_MAX_ENTRIES: %w", err)
	}
	if cfg.AnubisCacheMaxEntries < 0 {
		return fmt.Errorf("ANUBIS_CACHE_MAX_ENTRIES must be >= 0")
	}
	if cfg.AnubisCircuitEnabled, err = getEnvAsBool("ANUBIS_CIRCUIT_ENABLED", true); err != nil {
		return err
	}
	if cfg.AnubisCircuitFailureCount, err = getEnvAsInt("ANUBIS_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return fmt.Errorf("parse ANUBIS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.AnubisCircuitFailureCount < 1 {
		return fmt.Errorf("ANUBIS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if cfg.AnubisCircuitOpenTimeout, err = getEnvAsDuration("ANUBIS_CIRCUIT_OPEN_TIMEOUT", 15*time.Second); err != nil {
		return err
	}
	if cfg.AnubisCircuitHalfOpenMaxReq, err = getEnvAsInt("ANUBIS_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return fmt.Errorf("parse ANUBIS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if cfg.AnubisCircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("ANUBIS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	return nil
}

func loadTelemetry(cfg *Config) error {
	var err error
	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return err
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}
	if cfg.PyroscopeEnabled {
		if cfg.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if cfg.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}
	return nil
}

func loadLeague(cfg *Config) error {
	budget, err := getEnvAsInt("LEAGUE_INITIAL_BUDGET", 250)
	if err != nil {
		return fmt.Errorf("parse LEAGUE_INITIAL_BUDGET: %w", err)
	}
	if budget < 1 {
		return fmt.Errorf("LEAGUE_INITIAL_BUDGET must be >= 1")
	}
	cfg.LeagueInitialBudget = int64(budget)

	if cfg.LeagueMaxSquadSize, err = getEnvAsInt("LEAGUE_MAX_SQUAD_SIZE", 10); err != nil {
		return fmt.Errorf("parse LEAGUE_MAX_SQUAD_SIZE: %w", err)
	}
	if cfg.LeagueGoalkeeperStarters, err = getEnvAsInt("LEAGUE_GOALKEEPER_STARTERS", 1); err != nil {
		return fmt.Errorf("parse LEAGUE_GOALKEEPER_STARTERS: %w", err)
	}
	if cfg.LeagueOutfieldStarters, err = getEnvAsInt("LEAGUE_OUTFIELD_STARTERS", 4); err != nil {
		return fmt.Errorf("parse LEAGUE_OUTFIELD_STARTERS: %w", err)
	}
	if cfg.LeagueGoalkeeperStarters < 0 || cfg.LeagueOutfieldStarters < 0 {
		return fmt.Errorf("LEAGUE_*_STARTERS must be >= 0")
	}
	starters := cfg.LeagueGoalkeeperStarters + cfg.LeagueOutfieldStarters
	if starters < 1 {
		return fmt.Errorf("lineup needs at least one starter")
	}
	if cfg.LeagueMaxSquadSize < starters {
		return fmt.Errorf("LEAGUE_MAX_SQUAD_SIZE (%d) cannot be smaller than the lineup (%d)", cfg.LeagueMaxSquadSize, starters)
	}

	if cfg.SettlementWorkers, err = getEnvAsInt("SETTLEMENT_WORKERS", 4); err != nil {
		return fmt.Errorf("parse SETTLEMENT_WORKERS: %w", err)
	}
	if cfg.SettlementWorkers < 1 {
		return fmt.Errorf("SETTLEMENT_WORKERS must be >= 1")
	}
	if cfg.SettlementScoreUnconfirmed, err = getEnvAsBool("SETTLEMENT_SCORE_UNCONFIRMED", true); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

// getEnvAsDuration rejects non-positive durations.
func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(item), "=")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
