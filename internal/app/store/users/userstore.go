// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/studyhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create hashes the plaintext password and inserts the user. Email
// uniqueness is enforced by the unique index; a duplicate-key error maps to
// ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Password = string(hash)
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Authenticate looks the user up by email and compares the bcrypt hash.
// Both a missing user and a wrong password return ErrInvalidCredentials so
// callers cannot distinguish which part failed.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// ProfilePatch carries the optional profile fields of a PUT /profile.
// Nil means "leave unchanged"; StudyPreferences merges field-by-field.
type ProfilePatch struct {
	Name             *string
	Email            *string
	Department       *string
	Courses          []string
	StudyPreferences *models.StudyPreferences
}

// UpdateProfile applies the patch and returns the updated user.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, p ProfilePatch) (models.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*p.Email))
	}
	if p.Department != nil {
		set["department"] = *p.Department
	}
	if p.Courses != nil {
		set["courses"] = p.Courses
	}
	if p.StudyPreferences != nil {
		// Merge: only the supplied preference fields change.
		if v := p.StudyPreferences.PreferredTime; v != "" {
			set["study_preferences.preferred_time"] = v
		}
		if v := p.StudyPreferences.GroupSize; v != "" {
			set["study_preferences.group_size"] = v
		}
		if v := p.StudyPreferences.Environment; v != "" {
			set["study_preferences.environment"] = v
		}
	}

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Summaries resolves a set of user IDs to display records, preserving the
// order of ids. Unknown IDs are skipped rather than erroring: a user deleted
// for test isolation must not break group views that still reference them.
func (s *Store) Summaries(ctx context.Context, ids []primitive.ObjectID) ([]models.Summary, error) {
	if len(ids) == 0 {
		return []models.Summary{}, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[primitive.ObjectID]models.Summary, len(ids))
	for cur.Next(ctx) {
		var sum models.Summary
		if err := cur.Decode(&sum); err != nil {
			return nil, err
		}
		byID[sum.ID] = sum
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Summary, 0, len(ids))
	for _, id := range ids {
		if sum, ok := byID[id]; ok {
			out = append(out, sum)
		}
	}
	return out, nil
}
