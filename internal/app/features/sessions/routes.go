// internal/app/features/sessions/routes.go
package sessions

import (
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireAuth)

		// CREATE
		pr.Post("/", h.HandleCreateSession)

		// LIST (mine across groups, and per-group)
		pr.Get("/", h.ServeMySessions)
		pr.Get("/group/{groupId}", h.ServeGroupSessions)

		// ATTENDANCE & STATUS
		pr.Patch("/{sessionId}/attendance", h.HandleAttendance)
		pr.Patch("/{sessionId}/status", h.HandleStatus)
	})
	return r
}
