// internal/app/features/groups/join.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleJoin adds the acting user to a public group's member set.
//
// Preconditions, checked in order: the group exists (404), is public (403),
// and the user is not already a member (400). The add itself uses
// $addToSet, so even a request racing past the membership check cannot
// produce a duplicate entry.
// POST /groups/{id}/join
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
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

	if !group.IsPublic {
		httpjson.Forbidden(w, "Private group - request invitation")
		return
	}
	if authz.IsMember(group, user.ID) {
		httpjson.BadRequest(w, "Already a member")
		return
	}

	updated, err := store.AddMember(ctx, groupID, user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error joining group", err)
		return
	}

	view, err := buildGroupView(ctx, userstore.New(h.DB), updated)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error resolving group members", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, view)
}
