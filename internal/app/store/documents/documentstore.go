// internal/app/store/documents/documentstore.go
package documentstore

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
	return &Store{c: db.Collection("documents")}
}

func (s *Store) Create(ctx context.Context, d models.Document) (models.Document, error) {
	d.ID = primitive.NewObjectID()
	if d.UploadDate.IsZero() {
		d.UploadDate = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Document{}, err
	}
	return d, nil
}

// ListByGroup returns a group's documents, newest first.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Document, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"group_id": groupID},
		options.Find().SetSort(bson.D{{Key: "upload_date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []models.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
