// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves user lookups.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// Routes returns the authenticated user-lookup subrouter.
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireAuth)
		pr.Get("/me", h.ServeMe)
	})
	return r
}

// ServeMe returns the acting user's record. The password hash never
// serializes (json:"-" on the model).
// GET /users/me
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, user.ID)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "User not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading user", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, u)
}
