package groupstore_test

import (
	"testing"

	groupstore "github.com/dalemusser/studyhub/internal/app/store/groups"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/dalemusser/studyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_SeedsCreator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Group{
		Name:     "Algorithms Study Group",
		Subject:  "Computer Science",
		IsPublic: true,
	}, creator)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	// Creator lands in both the member and admin sets.
	if len(created.Members) != 1 || created.Members[0] != creator {
		t.Errorf("members: got %v, want [%v]", created.Members, creator)
	}
	if len(created.Admins) != 1 || created.Admins[0] != creator {
		t.Errorf("admins: got %v, want [%v]", created.Admins, creator)
	}
	if created.JoinRequests == nil || len(created.JoinRequests) != 0 {
		t.Errorf("join requests: got %v, want empty", created.JoinRequests)
	}

	// Round-trip through the database.
	loaded, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Name != "Algorithms Study Group" {
		t.Errorf("name: got %q", loaded.Name)
	}
	if !loaded.IsPublic {
		t.Error("expected group to be public")
	}
}

func TestStore_ListByMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	fixtures.CreateGroup(ctx, "Alice's Group", true, alice)
	shared := fixtures.CreateGroup(ctx, "Shared Group", true, alice)
	fixtures.CreateGroup(ctx, "Bob's Group", true, bob)

	if _, err := store.AddMember(ctx, shared.ID, bob); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	groups, err := store.ListByMember(ctx, bob)
	if err != nil {
		t.Fatalf("ListByMember failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for bob, got %d", len(groups))
	}

	groups, err = store.ListByMember(ctx, alice)
	if err != nil {
		t.Fatalf("ListByMember failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for alice, got %d", len(groups))
	}
}

func TestStore_AddMember_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	joiner := primitive.NewObjectID()
	group := fixtures.CreateGroup(ctx, "Public Group", true, creator)

	// Adding the same user twice must not duplicate the entry.
	if _, err := store.AddMember(ctx, group.ID, joiner); err != nil {
		t.Fatalf("first AddMember failed: %v", err)
	}
	updated, err := store.AddMember(ctx, group.ID, joiner)
	if err != nil {
		t.Fatalf("second AddMember failed: %v", err)
	}

	count := 0
	for _, m := range updated.Members {
		if m == joiner {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected joiner to appear once in members, got %d", count)
	}
}

func TestStore_ApproveRequest_MovesUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	requester := primitive.NewObjectID()
	group := fixtures.CreateGroup(ctx, "Private Group", false, creator)

	if err := store.AddJoinRequest(ctx, group.ID, requester); err != nil {
		t.Fatalf("AddJoinRequest failed: %v", err)
	}

	loaded, err := store.GetByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(loaded.JoinRequests) != 1 || loaded.JoinRequests[0] != requester {
		t.Fatalf("join requests: got %v, want [%v]", loaded.JoinRequests, requester)
	}

	if err := store.ApproveRequest(ctx, group.ID, requester); err != nil {
		t.Fatalf("ApproveRequest failed: %v", err)
	}

	loaded, err = store.GetByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	// The requester appears in members exactly once and is gone from the
	// pending set.
	found := false
	for _, m := range loaded.Members {
		if m == requester {
			found = true
		}
	}
	if !found {
		t.Error("expected requester to be a member after approval")
	}
	for _, r := range loaded.JoinRequests {
		if r == requester {
			t.Error("expected requester to be removed from join requests")
		}
	}
}

func TestStore_ApproveRequest_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	requester := primitive.NewObjectID()
	group := fixtures.CreateGroup(ctx, "Private Group", false, creator)

	if err := store.AddJoinRequest(ctx, group.ID, requester); err != nil {
		t.Fatalf("AddJoinRequest failed: %v", err)
	}

	// Approving twice must not duplicate the member entry.
	if err := store.ApproveRequest(ctx, group.ID, requester); err != nil {
		t.Fatalf("first ApproveRequest failed: %v", err)
	}
	if err := store.ApproveRequest(ctx, group.ID, requester); err != nil {
		t.Fatalf("second ApproveRequest failed: %v", err)
	}

	loaded, err := store.GetByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	count := 0
	for _, m := range loaded.Members {
		if m == requester {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected requester once in members, got %d", count)
	}
}

func TestStore_ListWithPendingForAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := primitive.NewObjectID()
	other := primitive.NewObjectID()
	requester := primitive.NewObjectID()

	withPending := fixtures.CreateGroup(ctx, "With Pending", false, admin)
	fixtures.CreateGroup(ctx, "No Pending", false, admin)
	notAdmin := fixtures.CreateGroup(ctx, "Someone Else's", false, other)

	if err := store.AddJoinRequest(ctx, withPending.ID, requester); err != nil {
		t.Fatalf("AddJoinRequest failed: %v", err)
	}
	if err := store.AddJoinRequest(ctx, notAdmin.ID, requester); err != nil {
		t.Fatalf("AddJoinRequest failed: %v", err)
	}

	// Only the admin's group with a pending request shows up.
	groups, err := store.ListWithPendingForAdmin(ctx, admin)
	if err != nil {
		t.Fatalf("ListWithPendingForAdmin failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].ID != withPending.ID {
		t.Errorf("got group %v, want %v", groups[0].ID, withPending.ID)
	}
}
