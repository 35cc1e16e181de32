// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Index creation is idempotent (CreateMany
reuses an existing index with the same keys and options), so repeated
startups are safe. Errors are aggregated so every problem is visible and
startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}
	if err := ensureDocuments(ctx, db); err != nil {
		problems = append(problems, "documents: "+err.Error())
	}
	if err := ensureStudyGoals(ctx, db); err != nil {
		problems = append(problems, "study_goals: "+err.Error())
	}
	if err := ensureStudySessions(ctx, db); err != nil {
		problems = append(problems, "study_sessions: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	logger.Info("indexes ensured")
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Email must be unique across all users; signup relies on the
		// duplicate-key error rather than a racy read-then-insert check.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
	})
	return err
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("groups")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Multikey indexes over the three ID sets: "my groups", the admin
		// request inbox, and membership checks all filter on these.
		{
			Keys:    bson.D{{Key: "members", Value: 1}},
			Options: options.Index().SetName("idx_groups_members"),
		},
		{
			Keys:    bson.D{{Key: "admins", Value: 1}},
			Options: options.Index().SetName("idx_groups_admins"),
		},
		{
			Keys:    bson.D{{Key: "join_requests", Value: 1}},
			Options: options.Index().SetName("idx_groups_join_requests"),
		},
	})
	return err
}

func ensureDocuments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("documents")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Per-group document listing, newest first
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}, {Key: "upload_date", Value: -1}},
			Options: options.Index().SetName("idx_documents_group_uploaded"),
		},
	})
	return err
}

func ensureStudyGoals(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("study_goals")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Per-user goal listing, nearest deadline first
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "deadline", Value: 1}},
			Options: options.Index().SetName("idx_goals_user_deadline"),
		},
	})
	return err
}

func ensureStudySessions(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("study_sessions")
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Per-group schedule
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_sessions_group_date"),
		},
		// "My sessions" queries filter by group membership then sort by date
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_sessions_date"),
		},
	})
	return err
}
