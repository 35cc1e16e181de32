// internal/app/features/documents/routes.go
package documents

import (
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireAuth)
		pr.Post("/{groupId}/upload", h.HandleUpload)
		pr.Get("/{groupId}/documents", h.ServeGroupDocuments)
	})
	return r
}
