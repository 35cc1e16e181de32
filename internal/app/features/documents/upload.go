// internal/app/features/documents/upload.go
package documents

import (
	"context"
	"errors"
	"net/http"

	documentstore "github.com/dalemusser/studyhub/internal/app/store/documents"
	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	"github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/app/system/httpjson"
	"github.com/dalemusser/studyhub/internal/app/system/storage"
	"github.com/dalemusser/studyhub/internal/app/system/timeouts"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpload stores a multipart file for a group and records its
// metadata. Only members may upload. The form field name is "file".
// POST /documents/{groupId}/upload
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupId"))
	if err != nil {
		httpjson.NotFound(w, "Group not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
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

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	stored, err := h.Files.Save(file, header)
	if errors.Is(err, storage.ErrTooLarge) {
		httpjson.BadRequest(w, "File exceeds the upload size limit")
		return
	}
	if err != nil {
		httpjson.ServerError(w, h.Log, "storing uploaded file failed", err)
		return
	}

	_, err = documentstore.New(h.DB).Create(ctx, models.Document{
		GroupID:    groupID,
		UploaderID: user.ID,
		FileName:   stored.FileName,
		FilePath:   stored.Path,
		FileType:   stored.Type,
		FileSize:   stored.Size,
	})
	if err != nil {
		// The bytes are on disk but the record failed; clean up so the
		// upload directory does not accumulate orphans.
		_ = h.Files.Remove(stored.Path)
		httpjson.ServerError(w, h.Log, "database error recording document", err)
		return
	}

	httpjson.Message(w, "Document uploaded successfully")
}
