// internal/app/features/goals/handler.go
package goals

import (
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves a user's personal study goals.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireAuth)
		pr.Post("/", h.HandleCreateGoal)
		pr.Get("/", h.ServeGoals)
		pr.Put("/{id}", h.HandleUpdateGoal)
	})
	return r
}
