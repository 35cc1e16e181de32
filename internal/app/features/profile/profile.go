// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/sanitize"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// updateProfileRequest is the typed body of PUT /profile. Pointer fields
// distinguish "absent" from "set to empty": only supplied fields change,
// and studyPreferences merges field-by-field.
type updateProfileRequest struct {
	Name             *string                  `json:"name"`
	Email            *string                  `json:"email"`
	Department       *string                  `json:"department"`
	Courses          []string                 `json:"courses"`
	StudyPreferences *models.StudyPreferences `json:"studyPreferences"`
}

// ServeProfile returns the acting user's profile.
// GET /profile
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, user.ID)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "User not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading profile", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, u)
}

// HandleUpdateProfile patches the supplied fields and returns the updated
// profile.
// PUT /profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req updateProfileRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	patch := userstore.ProfilePatch{
		Email:            req.Email,
		Courses:          req.Courses,
		StudyPreferences: req.StudyPreferences,
	}
	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" {
			httpjson.BadRequest(w, "Name cannot be empty")
			return
		}
		patch.Name = &name
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) == "" {
		httpjson.BadRequest(w, "Email cannot be empty")
		return
	}
	if req.Department != nil {
		department := sanitize.Text(*req.Department)
		patch.Department = &department
	}
	if req.Courses != nil {
		patch.Courses = sanitize.Fields(req.Courses)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := userstore.New(h.DB).UpdateProfile(ctx, user.ID, patch)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "User not found")
		return
	}
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		httpjson.BadRequest(w, "Email already in use")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error updating profile", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, u)
}
