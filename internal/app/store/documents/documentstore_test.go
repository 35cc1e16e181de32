package documentstore_test

import (
	"testing"
	"time"

	documentstore "github.com/dalemusser/studyhub/internal/app/store/documents"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/dalemusser/studyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := documentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Document{
		GroupID:    primitive.NewObjectID(),
		UploaderID: primitive.NewObjectID(),
		FileName:   "notes.pdf",
		FilePath:   "/tmp/uploads/abc.pdf",
		FileType:   "application/pdf",
		FileSize:   2048,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.UploadDate.IsZero() {
		t.Error("expected UploadDate to default to now")
	}
}

func TestStore_ListByGroup_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := documentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	uploader := primitive.NewObjectID()
	now := time.Now().UTC()

	for i, name := range []string{"oldest.pdf", "middle.pdf", "newest.pdf"} {
		_, err := store.Create(ctx, models.Document{
			GroupID:    groupID,
			UploaderID: uploader,
			FileName:   name,
			FilePath:   "/tmp/" + name,
			FileType:   "application/pdf",
			FileSize:   100,
			UploadDate: now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	// Documents in other groups stay out of the listing.
	_, err := store.Create(ctx, models.Document{
		GroupID:    primitive.NewObjectID(),
		UploaderID: uploader,
		FileName:   "elsewhere.pdf",
		FilePath:   "/tmp/elsewhere.pdf",
		FileType:   "application/pdf",
		FileSize:   100,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	docs, err := store.ListByGroup(ctx, groupID)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[0].FileName != "newest.pdf" || docs[2].FileName != "oldest.pdf" {
		t.Errorf("documents not sorted newest first: %q, %q, %q",
			docs[0].FileName, docs[1].FileName, docs[2].FileName)
	}
}
