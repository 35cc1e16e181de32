// internal/app/features/sessions/attendance.go
package sessions

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	sessionstore "github.com/dalemusser/studyhub/internal/app/store/sessions"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type attendanceRequest struct {
	Action string `json:"action"` // "join" or "leave"
}

// HandleAttendance adds or removes the acting user from a session's attendee
// list. Only members of the session's group may respond. Joining twice or
// leaving while absent are accepted no-ops.
// PATCH /study-sessions/{sessionId}/attendance
func (h *Handler) HandleAttendance(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	sessionID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "sessionId"))
	if err != nil {
		httpjson.NotFound(w, "Session not found")
		return
	}

	var req attendanceRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if req.Action != "join" && req.Action != "leave" {
		httpjson.BadRequest(w, "Action must be 'join' or 'leave'")
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

	group, err := groupstore.New(h.DB).GetByID(ctx, sess.GroupID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading group", err)
		return
	}
	if !authz.IsMember(group, user.ID) {
		httpjson.Forbidden(w, "You are not a member of this group")
		return
	}

	updated, err := store.SetAttendance(ctx, sessionID, user.ID, req.Action == "join")
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error updating attendance", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, updated)
}
