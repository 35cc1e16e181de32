// internal/app/system/authz/authz.go

// Package authz holds the membership predicates that gate access to
// group-scoped resources. They are the sole authorization contract the
// documents, goals, and study-session features consume.
//
// The predicates must be evaluated against a freshly loaded group document,
// never a cached copy: membership can change between requests.
package authz

import (
	"github.com/dalemusser/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsMember reports whether userID appears in the group's member set.
func IsMember(g models.Group, userID primitive.ObjectID) bool {
	return containsID(g.Members, userID)
}

// IsAdmin reports whether userID appears in the group's admin set.
//
// IsAdmin does not imply IsMember. Creation seeds the creator into both
// sets, but later mutations do not maintain the subset relation, so the two
// predicates stay independent reads.
func IsAdmin(g models.Group, userID primitive.ObjectID) bool {
	return containsID(g.Admins, userID)
}

// HasPendingRequest reports whether userID has an unapproved join request
// on the group.
func HasPendingRequest(g models.Group, userID primitive.ObjectID) bool {
	return containsID(g.JoinRequests, userID)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
