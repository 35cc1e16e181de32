// internal/app/features/sessions/status.go
package sessions

import (
	"context"
	"net/http"

	sessionstore "github.com/dalemusser/studyhub/internal/app/store/sessions"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type statusRequest struct {
	Status string `json:"status"`
}

// HandleStatus transitions a session between scheduled, completed, and
// cancelled. Only the session's creator may change its status.
// PATCH /study-sessions/{sessionId}/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	sessionID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "sessionId"))
	if err != nil {
		httpjson.NotFound(w, "Session not found")
		return
	}

	var req statusRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if !models.ValidSessionStatus(req.Status) {
		httpjson.BadRequest(w, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := sessionstore.New(h.DB)
	sess, err := store.GetByID(ctx, sessionID)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "Session not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading session", err)
		return
	}
	if sess.CreatedBy != user.ID {
		httpjson.Forbidden(w, "Only the session creator can update the status")
		return
	}

	updated, err := store.SetStatus(ctx, sessionID, req.Status)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error updating status", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}
