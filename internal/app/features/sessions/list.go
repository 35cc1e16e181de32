// internal/app/features/sessions/list.go
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

// ServeMySessions returns upcoming and past sessions across every group the
// acting user is a member of.
// GET /study-sessions
func (h *Handler) ServeMySessions(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := groupstore.New(h.DB).ListByMember(ctx, user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing groups", err)
		return
	}

	groupIDs := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}

	sessions, err := sessionstore.New(h.DB).ListByGroups(ctx, groupIDs)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing sessions", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, sessions)
}

// ServeGroupSessions returns a single group's sessions. Only members can see
// a group's schedule.
// GET /study-sessions/group/{groupId}
func (h *Handler) ServeGroupSessions(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupId"))
	if err != nil {
		httpjson.NotFound(w, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := groupstore.New(h.DB).GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "Group not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading group", err)
		return
	}
	if !authz.IsMember(group, user.ID) {
		httpjson.Forbidden(w, "You are not a member of this group")
		return
	}

	sessions, err := sessionstore.New(h.DB).ListByGroup(ctx, groupID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing sessions", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, sessions)
}
