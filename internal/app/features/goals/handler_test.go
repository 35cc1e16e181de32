package goals_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/studyhub/internal/app/features/goals"
	"github.com/dalemusser/studyhub/internal/domain/models"
	"github.com/dalemusser/studyhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*goals.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return goals.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleCreateGoal(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")

	req := testutil.NewJSONRequest(t, "POST", "/goals", user.ID, map[string]any{
		"title":       "Finish <b>chapter 5</b>",
		"description": "Graph algorithms",
		"deadline":    "2026-09-30T00:00:00Z",
	})
	rec := testutil.NewRecorder()

	h.HandleCreateGoal(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp models.StudyGoal
	rec.DecodeJSON(t, &resp)

	// Markup is stripped before persisting.
	if resp.Title != "Finish chapter 5" {
		t.Errorf("title: got %q", resp.Title)
	}
	if resp.UserID != user.ID {
		t.Errorf("user ID: got %v, want %v", resp.UserID, user.ID)
	}
}

func TestHandleCreateGoal_MissingFields(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")

	req := testutil.NewJSONRequest(t, "POST", "/goals", user.ID, map[string]any{
		"title": "No deadline",
	})
	rec := testutil.NewRecorder()

	h.HandleCreateGoal(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Title, description, and deadline are required")
}

func TestHandleUpdateGoal_Progress(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")
	goal := fixtures.CreateGoal(ctx, user.ID, "Read papers")

	req := testutil.NewJSONRequest(t, "PUT", "/goals/"+goal.ID.Hex(), user.ID, map[string]any{
		"progress": 75,
	})
	req = testutil.WithChiURLParam(req, "id", goal.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleUpdateGoal(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp models.StudyGoal
	rec.DecodeJSON(t, &resp)
	if resp.Progress != 75 {
		t.Errorf("progress: got %d, want 75", resp.Progress)
	}
	if resp.Title != "Read papers" {
		t.Errorf("expected title unchanged, got %q", resp.Title)
	}
}

func TestHandleUpdateGoal_ProgressOutOfRange(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "Alice", "alice@test.com")
	goal := fixtures.CreateGoal(ctx, user.ID, "Read papers")

	req := testutil.NewJSONRequest(t, "PUT", "/goals/"+goal.ID.Hex(), user.ID, map[string]any{
		"progress": 150,
	})
	req = testutil.WithChiURLParam(req, "id", goal.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleUpdateGoal(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Progress must be between 0 and 100")
}

func TestHandleUpdateGoal_OtherUsersGoal(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fixtures.CreateUser(ctx, "Owner", "owner@test.com")
	intruder := fixtures.CreateUser(ctx, "Intruder", "intruder@test.com")
	goal := fixtures.CreateGoal(ctx, owner.ID, "Owner's goal")

	req := testutil.NewJSONRequest(t, "PUT", "/goals/"+goal.ID.Hex(), intruder.ID, map[string]any{
		"completed": true,
	})
	req = testutil.WithChiURLParam(req, "id", goal.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleUpdateGoal(rec.ResponseRecorder, req)

	// Ownership scoping reads as not found, not forbidden.
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Goal not found")
}
