// internal/app/store/sessions/sessionstore.go
package sessionstore

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
	return &Store{c: db.Collection("study_sessions")}
}

// Create inserts a session with the creator as the first attendee.
func (s *Store) Create(ctx context.Context, sess models.StudySession) (models.StudySession, error) {
	now := time.Now().UTC()
	sess.ID = primitive.NewObjectID()
	sess.Attendees = []primitive.ObjectID{sess.CreatedBy}
	if sess.Status == "" {
		sess.Status = models.SessionScheduled
	}
	sess.CreatedAt = now
	sess.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, sess); err != nil {
		return models.StudySession{}, err
	}
	return sess, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.StudySession, error) {
	var sess models.StudySession
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sess); err != nil {
		return models.StudySession{}, err
	}
	return sess, nil
}

// ListByGroup returns a group's sessions in date order.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.StudySession, error) {
	return s.list(ctx, bson.M{"group_id": groupID})
}

// ListByGroups returns all sessions belonging to any of the given groups,
// in date order. This backs the "my sessions" view: the caller supplies the
// IDs of the groups the user is a member of.
func (s *Store) ListByGroups(ctx context.Context, groupIDs []primitive.ObjectID) ([]models.StudySession, error) {
	if len(groupIDs) == 0 {
		return []models.StudySession{}, nil
	}
	return s.list(ctx, bson.M{"group_id": bson.M{"$in": groupIDs}})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.StudySession, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := []models.StudySession{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SetAttendance adds or removes the user in the attendee set. Both
// directions use set semantics ($addToSet / $pull), so repeated joins or
// leaves are no-ops. The updated session is returned.
func (s *Store) SetAttendance(ctx context.Context, id, userID primitive.ObjectID, attending bool) (models.StudySession, error) {
	update := bson.M{
		"$pull": bson.M{"attendees": userID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if attending {
		update = bson.M{
			"$addToSet": bson.M{"attendees": userID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		}
	}

	var sess models.StudySession
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&sess)
	if err != nil {
		return models.StudySession{}, err
	}
	return sess, nil
}

// SetStatus updates the session's status and returns the updated document.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.StudySession, error) {
	var sess models.StudySession
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&sess)
	if err != nil {
		return models.StudySession{}, err
	}
	return sess, nil
}
