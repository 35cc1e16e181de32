// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/studyhub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the query paths rely on. Index builds
// are idempotent, so this runs on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase, logger)
}
