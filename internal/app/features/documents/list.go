// internal/app/features/documents/list.go
package documents

import (
	"context"
	"net/http"
	"time"

	documentstore "github.com/dalemusser/studyhub/internal/app/store/documents"
	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// documentView is a document with its uploader resolved to a display
// record.
type documentView struct {
	ID         primitive.ObjectID `json:"id"`
	GroupID    primitive.ObjectID `json:"groupId"`
	Uploader   *models.Summary    `json:"uploader,omitempty"`
	FileName   string             `json:"fileName"`
	FileType   string             `json:"fileType"`
	FileSize   int64              `json:"fileSize"`
	UploadDate time.Time          `json:"uploadDate"`
}

// ServeGroupDocuments lists a group's documents, newest first, with
// uploader display records. Only members may list.
// GET /documents/{groupId}/documents
func (h *Handler) ServeGroupDocuments(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupId"))
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
		httpjson.Forbidden(w, "You are not a member of this group")
		return
	}

	docs, err := documentstore.New(h.DB).ListByGroup(ctx, groupID)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error listing documents", err)
		return
	}

	// Resolve uploaders in one query rather than per-document.
	uploaderIDs := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		uploaderIDs = append(uploaderIDs, d.UploaderID)
	}
	summaries, err := userstore.New(h.DB).Summaries(ctx, uploaderIDs)
	if err != nil {
		httpjson.ServerError(w, h.Log, "database error resolving uploaders", err)
		return
	}
	byID := make(map[primitive.ObjectID]models.Summary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	views := make([]documentView, 0, len(docs))
	for _, d := range docs {
		v := documentView{
			ID:         d.ID,
			GroupID:    d.GroupID,
			FileName:   d.FileName,
			FileType:   d.FileType,
			FileSize:   d.FileSize,
			UploadDate: d.UploadDate,
		}
		if s, ok := byID[d.UploaderID]; ok {
			sum := s
			v.Uploader = &sum
		}
		views = append(views, v)
	}

	httpjson.Respond(w, http.StatusOK, views)
}
