// internal/app/features/profile/routes.go
package profile

import (
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireAuth)
		pr.Get("/", h.ServeProfile)
		pr.Put("/", h.HandleUpdateProfile)
	})
	return r
}
