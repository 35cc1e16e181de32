// internal/app/features/sessions/create.go
package sessions

import (
	"context"
	"net/http"
	"time"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	sessionstore "github.com/dalemusser/studyhub/internal/app/store/sessions"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/sanitize"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type createSessionRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"` // minutes
	GroupID     string    `json:"groupId"`
}

// HandleCreateSession schedules a study session in a group the acting user
// belongs to. The creator is added as the first attendee.
// POST /study-sessions
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req createSessionRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}
	req.Title = sanitize.Text(req.Title)
	if req.Title == "" || req.Date.IsZero() || req.Duration <= 0 || req.GroupID == "" {
		httpjson.BadRequest(w, "Please provide all required fields")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		httpjson.NotFound(w, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := groupstore.New(h.DB).GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "Group not found")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error loading group", err)
		return
	}
	if !authz.IsMember(group, user.ID) {
		httpjson.Forbidden(w, "You must be a group member to create study sessions")
		return
	}

	sess, err := sessionstore.New(h.DB).Create(ctx, models.StudySession{
		Title:       req.Title,
		Description: sanitize.Text(req.Description),
		Date:        req.Date,
		Duration:    req.Duration,
		GroupID:     groupID,
		CreatedBy:   user.ID,
	})
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error creating study session", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, sess)
}
