// internal/app/features/auth/signin.go
package auth

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// HandleSignIn verifies the credentials and returns a bearer token.
// A missing account and a wrong password are indistinguishable to the
// caller: both are 401 "Invalid credentials".
// POST /auth/signin
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.BadRequest(w, "Please provide email and password")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := userstore.New(h.DB).Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, userstore.ErrInvalidCredentials) {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error during sign-in", err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "token issue failed", err)
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", user.ID.Hex()))
	httpjson.Respond(w, http.StatusOK, signInResponse{
		Token:   token,
		UserID:  user.ID.Hex(),
		Message: "Login successful",
	})
}
