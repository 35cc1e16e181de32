// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a study group with its membership state embedded.
//
// NOTE:
//   - Members, Admins, and JoinRequests are ID sets on the group document
//     itself. Keeping them on one document is what lets an approval move a
//     user from join_requests to members in a single atomic update.
//   - Admins is seeded as a subset of Members at creation (the creator lands
//     in both). Later mutations do not maintain the subset relation.
type Group struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Subject      string               `bson:"subject" json:"subject"`
	Description  string               `bson:"description,omitempty" json:"description,omitempty"`
	IsPublic     bool                 `bson:"is_public" json:"isPublic"`
	Members      []primitive.ObjectID `bson:"members" json:"members"`
	Admins       []primitive.ObjectID `bson:"admins" json:"admins"`
	JoinRequests []primitive.ObjectID `bson:"join_requests" json:"joinRequests"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
