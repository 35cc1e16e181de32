// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for StudyHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: STUDYHUB_MONGO_URI, STUDYHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "study_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Token configuration
	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Bearer token signing key (must be strong in production)"},
	{Name: "jwt_expiry", Default: "24h", Desc: "Bearer token lifetime (e.g., 24h, 30m)"},

	// Document upload configuration
	{Name: "upload_dir", Default: "./uploads/documents", Desc: "Directory for uploaded group documents"},
	{Name: "upload_max_bytes", Default: 10 << 20, Desc: "Maximum accepted upload size in bytes (default: 10 MiB)"},

	// Database operation timeout tiers
	{Name: "db_timeout_ping", Default: "2s", Desc: "Timeout for health-check pings"},
	{Name: "db_timeout_short", Default: "5s", Desc: "Timeout for single-document reads"},
	{Name: "db_timeout_medium", Default: "10s", Desc: "Timeout for list queries and writes"},
	{Name: "db_timeout_long", Default: "30s", Desc: "Timeout for uploads and multi-collection operations"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STUDYHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STUDYHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		JWTExpiry: appValues.Duration("jwt_expiry", 24*time.Hour),

		UploadDir:      appValues.String("upload_dir"),
		UploadMaxBytes: int64(appValues.Int("upload_max_bytes")),

		DBTimeoutPing:   appValues.Duration("db_timeout_ping", timeouts.DefaultPing),
		DBTimeoutShort:  appValues.Duration("db_timeout_short", timeouts.DefaultShort),
		DBTimeoutMedium: appValues.Duration("db_timeout_medium", timeouts.DefaultMedium),
		DBTimeoutLong:   appValues.Duration("db_timeout_long", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// StudyHub validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and refuses to start in
// production with the development token key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must not be empty")
	}
	if coreCfg.Env == "prod" && appCfg.JWTSecret == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("jwt_secret must be changed from the development default in production")
	}

	if appCfg.UploadMaxBytes <= 0 {
		return fmt.Errorf("upload_max_bytes must be positive")
	}

	if appCfg.DBTimeoutPing <= 0 || appCfg.DBTimeoutShort <= 0 ||
		appCfg.DBTimeoutMedium <= 0 || appCfg.DBTimeoutLong <= 0 {
		return fmt.Errorf("database timeout tiers must be positive")
	}

	return nil
}
