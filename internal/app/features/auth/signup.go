// internal/app/features/auth/signup.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/sanitize"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.uber.org/zap"
)

type signUpRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

type signUpResponse struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

// HandleSignUp creates an account and returns a bearer token for it.
// POST /auth/signup
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	req.Name = sanitize.Text(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		httpjson.BadRequest(w, "All fields are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	department := sanitize.Text(req.Department)
	if department == "" {
		department = "Not specified"
	}

	user, err := userstore.New(h.DB).Create(ctx, models.User{
		Name:       req.Name,
		Email:      req.Email,
		Department: department,
	}, req.Password)
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		httpjson.BadRequest(w, "User already exists")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error creating user", err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "token issue failed", err)
		return
	}

	h.Log.Info("user signed up", zap.String("user_id", user.ID.Hex()))
	httpjson.Respond(w, http.StatusCreated, signUpResponse{
		Token:   token,
		User:    user,
		Message: "User created successfully",
	})
}
