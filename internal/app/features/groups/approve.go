// internal/app/features/groups/approve.go
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

// HandleApproveRequest moves the target user from the group's join-request
// set into its member set. Only admins may approve.
//
// The move is one combined update ($addToSet members + $pull joinRequests),
// so no reader can observe the user in both sets or neither. The target is
// not required to actually be pending: removing an absent entry and adding
// an existing member are both no-ops, making approval idempotent.
// POST /groups/{groupId}/approve/{userId}
func (h *Handler) HandleApproveRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupId"))
	if err != nil {
		httpjson.NotFound(w, "Group not found")
		return
	}
	targetID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		httpjson.BadRequest(w, "Invalid user ID")
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

	if !authz.IsAdmin(group, user.ID) {
		httpjson.Forbidden(w, "Admin access required")
		return
	}

	if err := store.ApproveRequest(ctx, groupID, targetID); err != nil {
		httpjson.ServerError(w, h.Log, "database error approving join request", err)
		return
	}

	httpjson.Message(w, "User added to group")
}
