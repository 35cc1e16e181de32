// internal/app/features/auth/handler.go
package auth

import (
	sysauth "github.com/dalemusser/studyhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the dependencies of the signup/signin endpoints: the user
// store's database, the token manager that mints bearer tokens, and the
// logger.
type Handler struct {
	DB     *mongo.Database
	Tokens *sysauth.TokenManager
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *sysauth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Tokens: tokens,
		Log:    logger,
	}
}
