// internal/app/features/groups/requests.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
)

// ServePendingRequests is the cross-group admin inbox: every group where
// the acting user is an admin and at least one join request is pending,
// with the requesters resolved to display records. There is no
// group-scoping parameter.
// GET /groups/admin/requests
func (h *Handler) ServePendingRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	gs, err := groupstore.New(h.DB).ListWithPendingForAdmin(ctx, user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing pending requests", err)
		return
	}

	users := userstore.New(h.DB)
	views := make([]requestsView, 0, len(gs))
	for _, g := range gs {
		requesters, err := users.Summaries(ctx, g.JoinRequests)
		if err != nil {
			httpjson.ServerError(w, h.Log, "database error resolving requesters", err)
			return
		}
		views = append(views, requestsView{
			ID:           g.ID,
			Name:         g.Name,
			Subject:      g.Subject,
			IsPublic:     g.IsPublic,
			JoinRequests: requesters,
		})
	}

	httpjson.Respond(w, http.StatusOK, views)
}
