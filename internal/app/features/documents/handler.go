// internal/app/features/documents/handler.go
package documents

import (
	"github.com/dalemusser/studyhub/internal/app/system/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the dependency container for the group-document feature:
// database, file storage, and logger.
type Handler struct {
	DB    *mongo.Database
	Files *storage.Local
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, files *storage.Local, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Files: files,
		Log:   logger,
	}
}
