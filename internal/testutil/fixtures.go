package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name and email. The stored
// password hash corresponds to "password123".
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		Password:   string(hash),
		Department: "Computer Science",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err = f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateGroup creates a test group with the given creator as sole member
// and admin.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, isPublic bool, creatorID primitive.ObjectID) models.Group {
	f.t.Helper()

	group := models.Group{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Subject:      "Test Subject",
		Description:  "Test group description",
		IsPublic:     isPublic,
		Members:      []primitive.ObjectID{creatorID},
		Admins:       []primitive.ObjectID{creatorID},
		JoinRequests: []primitive.ObjectID{},
		CreatedAt:    time.Now().UTC(),
	}

	_, err := f.db.Collection("groups").InsertOne(ctx, group)
	if err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}

	return group
}

// CreateGoal creates a test study goal owned by the given user.
func (f *Fixtures) CreateGoal(ctx context.Context, userID primitive.ObjectID, title string) models.StudyGoal {
	f.t.Helper()

	now := time.Now().UTC()
	goal := models.StudyGoal{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Title:       title,
		Description: "Test goal description",
		Deadline:    now.Add(7 * 24 * time.Hour),
		Progress:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("study_goals").InsertOne(ctx, goal)
	if err != nil {
		f.t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

// CreateSession creates a test study session in the given group, created
// by creatorID with the creator as the only attendee.
func (f *Fixtures) CreateSession(ctx context.Context, groupID, creatorID primitive.ObjectID, title string) models.StudySession {
	f.t.Helper()

	now := time.Now().UTC()
	sess := models.StudySession{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test session description",
		Date:        now.Add(48 * time.Hour),
		Duration:    60,
		GroupID:     groupID,
		CreatedBy:   creatorID,
		Attendees:   []primitive.ObjectID{creatorID},
		Status:      models.SessionScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := f.db.Collection("study_sessions").InsertOne(ctx, sess)
	if err != nil {
		f.t.Fatalf("failed to create test session: %v", err)
	}

	return sess
}

// CreateDocument creates a test document record in the given group.
func (f *Fixtures) CreateDocument(ctx context.Context, groupID, uploaderID primitive.ObjectID, fileName string) models.Document {
	f.t.Helper()

	doc := models.Document{
		ID:         primitive.NewObjectID(),
		GroupID:    groupID,
		UploaderID: uploaderID,
		FileName:   fileName,
		FilePath:   "/tmp/test/" + fileName,
		FileType:   "application/pdf",
		FileSize:   1024,
		UploadDate: time.Now().UTC(),
	}

	_, err := f.db.Collection("documents").InsertOne(ctx, doc)
	if err != nil {
		f.t.Fatalf("failed to create test document: %v", err)
	}

	return doc
}
