package profile_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/studyhub/internal/app/features/profile"
	"github.com/dalemusser/studyhub/internal/app/system/indexes"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/dalemusser/studyhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*profile.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return profile.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestServeProfile(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")

	req := testutil.NewAuthenticatedRequest("GET", "/profile", user.ID)
	rec := testutil.NewRecorder()

	h.ServeProfile(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp map[string]any
	rec.DecodeJSON(t, &resp)
	if resp["email"] != "alice@test.com" {
		t.Errorf("email: got %v", resp["email"])
	}
	if resp["department"] != "Computer Science" {
		t.Errorf("department: got %v", resp["department"])
	}
	// The password hash never leaves the server.
	if _, ok := resp["password"]; ok {
		t.Error("expected password omitted from response")
	}
}

func TestHandleUpdateProfile(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")

	req := testutil.NewJSONRequest(t, "PUT", "/profile", user.ID, map[string]any{
		"name":       "Alice <b>Smith</b>",
		"department": "Mathematics",
	})
	rec := testutil.NewRecorder()

	h.HandleUpdateProfile(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp models.User
	rec.DecodeJSON(t, &resp)

	// Markup is stripped before persisting.
	if resp.Name != "Alice Smith" {
		t.Errorf("name: got %q", resp.Name)
	}
	if resp.Department != "Mathematics" {
		t.Errorf("department: got %q", resp.Department)
	}
	if resp.Email != "alice@test.com" {
		t.Errorf("expected email unchanged, got %q", resp.Email)
	}
}

func TestHandleUpdateProfile_EmptyName(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")

	req := testutil.NewJSONRequest(t, "PUT", "/profile", user.ID, map[string]any{
		"name": "   ",
	})
	rec := testutil.NewRecorder()

	h.HandleUpdateProfile(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Name cannot be empty")
}

func TestHandleUpdateProfile_EmptyEmail(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")

	req := testutil.NewJSONRequest(t, "PUT", "/profile", user.ID, map[string]any{
		"email": "  ",
	})
	rec := testutil.NewRecorder()

	h.HandleUpdateProfile(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Email cannot be empty")
}

func TestHandleUpdateProfile_DuplicateEmail(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique email index is what turns the second write into a
	// duplicate-key error, so build indexes like startup does.
	if err := indexes.EnsureAll(ctx, fixtures.DB(), zap.NewNop()); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	fixtures.CreateUser(ctx, "Alice", "alice@test.com")
	bob := fixtures.CreateUser(ctx, "Bob", "bob@test.com")

	req := testutil.NewJSONRequest(t, "PUT", "/profile", bob.ID, map[string]any{
		"email": "alice@test.com",
	})
	rec := testutil.NewRecorder()

	h.HandleUpdateProfile(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Email already in use")
}
