// internal/domain/models/studygoal.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyGoal is a personal goal owned by one user. Progress is a percentage
// in [0,100]; Completed is tracked independently of Progress.
type StudyGoal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Deadline    time.Time          `bson:"deadline" json:"deadline"`
	Completed   bool               `bson:"completed" json:"completed"`
	Progress    int                `bson:"progress" json:"progress"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
