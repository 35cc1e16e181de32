// internal/app/store/goals/goalstore.go
package goalstore

import (
	"context"
	"time"

	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("study_goals")}
}

func (s *Store) Create(ctx context.Context, g models.StudyGoal) (models.StudyGoal, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.StudyGoal{}, err
	}
	return g, nil
}

// ListByUser returns the user's goals, nearest deadline first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.StudyGoal, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	goals := []models.StudyGoal{}
	if err := cur.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// Patch carries the optional fields of a goal update. Nil means unchanged.
type Patch struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Completed   *bool
	Progress    *int
}

// Update applies the patch to the user's own goal and returns the updated
// document. The filter includes user_id so one user can never touch
// another's goals; a mismatch surfaces as mongo.ErrNoDocuments.
func (s *Store) Update(ctx context.Context, id, userID primitive.ObjectID, p Patch) (models.StudyGoal, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Deadline != nil {
		set["deadline"] = *p.Deadline
	}
	if p.Completed != nil {
		set["completed"] = *p.Completed
	}
	if p.Progress != nil {
		set["progress"] = *p.Progress
	}

	var g models.StudyGoal
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if err != nil {
		return models.StudyGoal{}, err
	}
	return g, nil
}
