package authz_test

import (
	"testing"

	"github.com/dalemusser/studyhub/internal/app/system/authz"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPredicates(t *testing.T) {
	member := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	requester := primitive.NewObjectID()
	outsider := primitive.NewObjectID()

	g := models.Group{
		Members:      []primitive.ObjectID{member, admin},
		Admins:       []primitive.ObjectID{admin},
		JoinRequests: []primitive.ObjectID{requester},
	}

	if !authz.IsMember(g, member) {
		t.Error("expected member to be a member")
	}
	if authz.IsMember(g, outsider) {
		t.Error("expected outsider not to be a member")
	}

	if !authz.IsAdmin(g, admin) {
		t.Error("expected admin to be an admin")
	}
	if authz.IsAdmin(g, member) {
		t.Error("expected plain member not to be an admin")
	}

	if !authz.HasPendingRequest(g, requester) {
		t.Error("expected requester to have a pending request")
	}
	if authz.HasPendingRequest(g, member) {
		t.Error("expected member not to have a pending request")
	}
}

func TestPredicates_EmptySets(t *testing.T) {
	g := models.Group{}
	id := primitive.NewObjectID()

	if authz.IsMember(g, id) || authz.IsAdmin(g, id) || authz.HasPendingRequest(g, id) {
		t.Error("expected all predicates to be false on an empty group")
	}
}

// Admin status is tracked independently of membership: removing a user from
// the member set does not revoke their admin entry.
func TestIsAdmin_IndependentOfMembership(t *testing.T) {
	admin := primitive.NewObjectID()
	g := models.Group{
		Members: []primitive.ObjectID{},
		Admins:  []primitive.ObjectID{admin},
	}

	if authz.IsMember(g, admin) {
		t.Error("expected admin not to be a member")
	}
	if !authz.IsAdmin(g, admin) {
		t.Error("expected admin to remain an admin")
	}
}
