// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the unauthenticated identity endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.HandleSignUp)
	r.Post("/signin", h.HandleSignIn)
	return r
}
