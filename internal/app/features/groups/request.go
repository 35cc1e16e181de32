// internal/app/features/groups/request.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleRequestToJoin records the acting user's intent to join a private
// group, pending admin approval.
//
// Public groups reject the request (join directly instead), and a second
// request while one is pending is a 400. Existing members are not guarded
// against requesting; an admin approving such a request is a harmless
// no-op under set semantics.
// POST /groups/{id}/request
func (h *Handler) HandleRequestToJoin(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)
	group, err := store.GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "Group not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading group", err)
		return
	}

	if group.IsPublic {
		httpjson.BadRequest(w, "Join directly for public groups")
		return
	}
	if authz.HasPendingRequest(group, user.ID) {
		httpjson.BadRequest(w, "Request already pending")
		return
	}

	if err := store.AddJoinRequest(ctx, groupID, user.ID); err != nil {
		httpjson.ServerError(w, h.Log, "database error recording join request", err)
		return
	}

	httpjson.Message(w, "Join request sent to admin")
}
