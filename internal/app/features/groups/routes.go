// internal/app/features/groups/routes.go
package groups

import (
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /groups requires authentication
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireAuth)

		// CREATE
		pr.Post("/", h.HandleCreateGroup)

		// LIST
		pr.Get("/my-groups", h.ServeMyGroups)
		pr.Get("/list", h.ServeAllGroups)

		// MEMBERSHIP WORKFLOW
		pr.Post("/{id}/join", h.HandleJoin)
		pr.Post("/{id}/request", h.HandleRequestToJoin)
		pr.Get("/admin/requests", h.ServePendingRequests)
		pr.Post("/{groupId}/approve/{userId}", h.HandleApproveRequest)

		// VIEW (member-only; registered last so the literal paths above win)
		pr.Get("/{groupId}", h.ServeGroup)
	})

	return r
}
