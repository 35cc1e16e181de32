// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
)

// ServeMyGroups lists the groups the acting user belongs to, with member
// and admin display records resolved.
// GET /groups/my-groups
func (h *Handler) ServeMyGroups(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	gs, err := groupstore.New(h.DB).ListByMember(ctx, user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing member groups", err)
		return
	}
	h.respondGroupViews(ctx, w, gs)
}

// ServeAllGroups lists every group so users can discover what to join.
// GET /groups/list
func (h *Handler) ServeAllGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	gs, err := groupstore.New(h.DB).ListAll(ctx)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing groups", err)
		return
	}
	h.respondGroupViews(ctx, w, gs)
}

func (h *Handler) respondGroupViews(ctx context.Context, w http.ResponseWriter, gs []models.Group) {
	users := userstore.New(h.DB)
	views := make([]groupView, 0, len(gs))
	for _, g := range gs {
		v, err := buildGroupView(ctx, users, g)
		if err != nil {
			httpjson.ServerError(w, h.Log, "database error resolving group members", err)
			return
		}
		views = append(views, v)
	}
	httpjson.Respond(w, http.StatusOK, views)
}
