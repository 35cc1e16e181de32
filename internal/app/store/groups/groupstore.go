// internal/app/store/groups/groupstore.go

// Package groupstore owns the groups collection and the membership /
// join-request primitives the workflow is built on. All mutation is scoped
// to one group document at a time; the store relies on Mongo's
// single-document atomicity rather than any higher-level transaction.
package groupstore

import (
	"context"
	"time"

	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// Create inserts a group with the creator seeded into both the member and
// admin sets. This is the only point where admins ⊆ members is guaranteed.
func (s *Store) Create(ctx context.Context, g models.Group, creator primitive.ObjectID) (models.Group, error) {
	g.ID = primitive.NewObjectID()
	g.Members = []primitive.ObjectID{creator}
	g.Admins = []primitive.ObjectID{creator}
	g.JoinRequests = []primitive.ObjectID{}
	g.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// ListAll returns every group.
func (s *Store) ListAll(ctx context.Context) ([]models.Group, error) {
	return s.list(ctx, bson.M{})
}

// ListByMember returns the groups whose member set contains userID.
func (s *Store) ListByMember(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	return s.list(ctx, bson.M{"members": userID})
}

// ListWithPendingForAdmin returns every group where userID is an admin and
// at least one join request is pending: the cross-group admin inbox.
func (s *Store) ListWithPendingForAdmin(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	return s.list(ctx, bson.M{
		"admins":        userID,
		"join_requests": bson.M{"$exists": true, "$ne": bson.A{}},
	})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// AddMember inserts userID into the member set with $addToSet: the
// idempotent addUnique primitive. A concurrent double-join cannot produce a
// duplicate entry. The updated group is returned.
func (s *Store) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error) {
	_, err := s.c.UpdateByID(ctx, groupID, bson.M{
		"$addToSet": bson.M{"members": userID},
	})
	if err != nil {
		return models.Group{}, err
	}
	return s.GetByID(ctx, groupID)
}

// AddJoinRequest appends userID to the pending set with a plain $push,
// matching the request endpoint's read-then-append behavior. The handler
// checks for an existing pending request first; a double-submit racing past
// that check can duplicate the entry. Accepted risk, not a guarantee.
func (s *Store) AddJoinRequest(ctx context.Context, groupID, userID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, groupID, bson.M{
		"$push": bson.M{"join_requests": userID},
	})
	return err
}

// ApproveRequest moves userID from join_requests to members as one combined
// update: $addToSet and $pull are submitted in a single UpdateByID, so a
// concurrent reader never observes the user in both sets or neither.
// Both halves are no-ops when already satisfied, which makes the operation
// idempotent; it does not verify the user was actually pending.
func (s *Store) ApproveRequest(ctx context.Context, groupID, userID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, groupID, bson.M{
		"$addToSet": bson.M{"members": userID},
		"$pull":     bson.M{"join_requests": userID},
	})
	return err
}
