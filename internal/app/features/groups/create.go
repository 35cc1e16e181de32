// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"
	"strings"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/sanitize"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
)

// HandleCreateGroup creates a group with the acting user as its first
// member and admin.
// POST /groups
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req createGroupRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Name == "" || req.Subject == "" {
		httpjson.BadRequest(w, "Name and subject are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := groupstore.New(h.DB).Create(ctx, models.Group{
		Name:        req.Name,
		Subject:     req.Subject,
		Description: sanitize.Text(req.Description),
		IsPublic:    req.IsPublic,
	}, user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error creating group", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, group)
}
