// internal/app/features/goals/goals.go
package goals

import (
	"context"
	"net/http"
	"strings"
	"time"

	goalstore "github.com/dalemusser/studyhub/internal/app/store/goals"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/sanitize"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type createGoalRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
}

// updateGoalRequest patches a goal; nil fields are unchanged.
type updateGoalRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Completed   *bool      `json:"completed"`
	Progress    *int       `json:"progress"`
}

// HandleCreateGoal creates a goal owned by the acting user.
// POST /goals
func (h *Handler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req createGoalRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	req.Title = sanitize.Text(req.Title)
	req.Description = sanitize.Text(req.Description)
	if req.Title == "" || req.Description == "" || req.Deadline.IsZero() {
		httpjson.BadRequest(w, "Title, description, and deadline are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	goal, err := goalstore.New(h.DB).Create(ctx, models.StudyGoal{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error creating goal", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, goal)
}

// ServeGoals lists the acting user's goals, nearest deadline first.
// GET /goals
func (h *Handler) ServeGoals(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	gs, err := goalstore.New(h.DB).ListByUser(ctx, user.ID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing goals", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, gs)
}

// HandleUpdateGoal patches the acting user's own goal (progress, completed
// flag, text, deadline). A goal owned by someone else reads as not found.
// PUT /goals/{id}
func (h *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	goalID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Goal not found")
		return
	}

	var req updateGoalRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	if req.Progress != nil && (*req.Progress < 0 || *req.Progress > 100) {
		httpjson.BadRequest(w, "Progress must be between 0 and 100")
		return
	}

	patch := goalstore.Patch{
		Deadline:  req.Deadline,
		Completed: req.Completed,
		Progress:  req.Progress,
	}
	if req.Title != nil {
		title := sanitize.Text(*req.Title)
		if strings.TrimSpace(title) == "" {
			httpjson.BadRequest(w, "Title cannot be empty")
			return
		}
		patch.Title = &title
	}
	if req.Description != nil {
		desc := sanitize.Text(*req.Description)
		patch.Description = &desc
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	goal, err := goalstore.New(h.DB).Update(ctx, goalID, user.ID, patch)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "Goal not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error updating goal", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, goal)
}
