// internal/app/features/groups/types.go
package groups

import (
	"context"
	"time"

	userstore "github.com/dalemusser/studyhub/internal/app/store/users"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createGroupRequest is the typed body of POST /groups.
type createGroupRequest struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// groupView is a group with its member and admin ID sets resolved to
// display records. Join and list responses use it; the raw single-group
// view does not.
type groupView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Subject     string             `json:"subject"`
	Description string             `json:"description,omitempty"`
	IsPublic    bool               `json:"isPublic"`
	Members     []models.Summary   `json:"members"`
	Admins      []models.Summary   `json:"admins"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// requestsView is one entry of the admin inbox: a group with its pending
// requesters resolved to display records.
type requestsView struct {
	ID           primitive.ObjectID `json:"id"`
	Name         string             `json:"name"`
	Subject      string             `json:"subject"`
	IsPublic     bool               `json:"isPublic"`
	JoinRequests []models.Summary   `json:"joinRequests"`
}

// buildGroupView resolves the group's members and admins through the users
// collection, the populate() step of the join and list responses.
func buildGroupView(ctx context.Context, users *userstore.Store, g models.Group) (groupView, error) {
	members, err := users.Summaries(ctx, g.Members)
	if err != nil {
		return groupView{}, err
	}
	admins, err := users.Summaries(ctx, g.Admins)
	if err != nil {
		return groupView{}, err
	}
	return groupView{
		ID:          g.ID,
		Name:        g.Name,
		Subject:     g.Subject,
		Description: g.Description,
		IsPublic:    g.IsPublic,
		Members:     members,
		Admins:      admins,
		CreatedAt:   g.CreatedAt,
	}, nil
}
