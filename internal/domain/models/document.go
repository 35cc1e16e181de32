// internal/domain/models/document.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is an uploaded file scoped to a group. The file bytes live on
// disk under the configured upload directory; FilePath is the stored path.
type Document struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID    primitive.ObjectID `bson:"group_id" json:"groupId"`
	UploaderID primitive.ObjectID `bson:"uploader_id" json:"uploaderId"`
	FileName   string             `bson:"file_name" json:"fileName"`
	FilePath   string             `bson:"file_path" json:"filePath"`
	FileType   string             `bson:"file_type" json:"fileType"`
	FileSize   int64              `bson:"file_size" json:"fileSize"`
	UploadDate time.Time          `bson:"upload_date" json:"uploadDate"`
}
