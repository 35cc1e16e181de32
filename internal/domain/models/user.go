// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyPreferences captures a user's preferred study setup. Profile updates
// merge field-by-field: a PUT that only carries preferred_time leaves the
// other two untouched.
type StudyPreferences struct {
	PreferredTime string `bson:"preferred_time,omitempty" json:"preferredTime,omitempty"`
	GroupSize     string `bson:"group_size,omitempty" json:"groupSize,omitempty"`
	Environment   string `bson:"environment,omitempty" json:"environment,omitempty"`
}

// User is an account holder. The password field holds the bcrypt hash and is
// never serialized to JSON, so handlers can return User values directly.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	Department       string             `bson:"department,omitempty" json:"department,omitempty"`
	Courses          []string           `bson:"courses,omitempty" json:"courses,omitempty"`
	StudyPreferences StudyPreferences   `bson:"study_preferences,omitempty" json:"studyPreferences"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Summary is the display record other documents resolve user IDs into
// (group member lists, document uploaders, session attendees).
type Summary struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}
