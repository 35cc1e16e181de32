// internal/domain/models/studysession.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Study session statuses.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// ValidSessionStatus reports whether s is one of the allowed status values.
func ValidSessionStatus(s string) bool {
	return s == SessionScheduled || s == SessionCompleted || s == SessionCancelled
}

// StudySession is a scheduled meeting of a group. The creator is added to
// Attendees automatically; other members join or leave via the attendance
// endpoint.
type StudySession struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time            `bson:"date" json:"date"`
	Duration    int                  `bson:"duration" json:"duration"` // minutes
	GroupID     primitive.ObjectID   `bson:"group_id" json:"group"`
	CreatedBy   primitive.ObjectID   `bson:"created_by" json:"createdBy"`
	Attendees   []primitive.ObjectID `bson:"attendees" json:"attendees"`
	Status      string               `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
