// internal/app/features/groups/handler.go
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature. It
// holds the Mongo database and the logger so the membership workflow
// handlers (create, list, join, request, approve, view) share the same core
// dependencies.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a groups Handler. It is called from the bootstrap
// BuildHandler function, where the application's DB and logger are already
// initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}
