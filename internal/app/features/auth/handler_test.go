package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authfeature "github.com/dalemusser/studyhub/internal/app/features/auth"
	sysauth "github.com/dalemusser/studyhub/internal/app/system/auth"
	"github.com/dalemusser/studyhub/internal/app/system/indexes"
	"github.com/dalemusser/studyhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*authfeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens, err := sysauth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return authfeature.NewHandler(db, tokens, zap.NewNop()), testutil.NewFixtures(t, db)
}

func jsonRequest(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode body: %v", err)
	}
	req := httptest.NewRequest("POST", target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleSignUp(t *testing.T) {
	h, _ := newHandler(t)

	req := jsonRequest(t, "/auth/signup", map[string]string{
		"name":     "Alice Chen",
		"email":    "alice@test.com",
		"password": "secret-password",
	})
	rec := testutil.NewRecorder()

	h.HandleSignUp(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Token   string `json:"token"`
		Message string `json:"message"`
		User    struct {
			Name       string `json:"name"`
			Email      string `json:"email"`
			Department string `json:"department"`
		} `json:"user"`
	}
	rec.DecodeJSON(t, &resp)

	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.Message != "User created successfully" {
		t.Errorf("message: got %q", resp.Message)
	}
	if resp.User.Email != "alice@test.com" {
		t.Errorf("email: got %q", resp.User.Email)
	}
	// Department defaults when omitted.
	if resp.User.Department != "Not specified" {
		t.Errorf("department: got %q, want %q", resp.User.Department, "Not specified")
	}

	// The password hash must never appear in the response.
	if body := rec.Body.String(); bytes.Contains([]byte(body), []byte("secret-password")) {
		t.Errorf("response leaks the password: %s", body)
	}
}

func TestHandleSignUp_MissingFields(t *testing.T) {
	h, _ := newHandler(t)

	req := jsonRequest(t, "/auth/signup", map[string]string{
		"name":  "No Password",
		"email": "nopw@test.com",
	})
	rec := testutil.NewRecorder()

	h.HandleSignUp(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "All fields are required")
}

func TestHandleSignUp_DuplicateEmail(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Duplicate detection rides on the unique email index; build indexes
	// like startup does.
	if err := indexes.EnsureAll(ctx, fixtures.DB(), zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	body := map[string]string{
		"name":     "First",
		"email":    "dup@test.com",
		"password": "pw-one",
	}
	rec := testutil.NewRecorder()
	h.HandleSignUp(rec.ResponseRecorder, jsonRequest(t, "/auth/signup", body))
	rec.AssertStatus(t, http.StatusCreated)

	body["name"] = "Second"
	rec = testutil.NewRecorder()
	h.HandleSignUp(rec.ResponseRecorder, jsonRequest(t, "/auth/signup", body))

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "User already exists")
}

func TestHandleSignIn(t *testing.T) {
	h, _ := newHandler(t)

	rec := testutil.NewRecorder()
	h.HandleSignUp(rec.ResponseRecorder, jsonRequest(t, "/auth/signup", map[string]string{
		"name":     "Bob Park",
		"email":    "bob@test.com",
		"password": "correct-horse",
	}))
	rec.AssertStatus(t, http.StatusCreated)

	rec = testutil.NewRecorder()
	h.HandleSignIn(rec.ResponseRecorder, jsonRequest(t, "/auth/signin", map[string]string{
		"email":    "bob@test.com",
		"password": "correct-horse",
	}))

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Token   string `json:"token"`
		UserID  string `json:"userId"`
		Message string `json:"message"`
	}
	rec.DecodeJSON(t, &resp)

	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.UserID == "" {
		t.Error("expected a user ID in the response")
	}
	if resp.Message != "Login successful" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestHandleSignIn_WrongPassword(t *testing.T) {
	h, fixtures := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Carol", "carol@test.com")

	rec := testutil.NewRecorder()
	h.HandleSignIn(rec.ResponseRecorder, jsonRequest(t, "/auth/signin", map[string]string{
		"email":    "carol@test.com",
		"password": "wrong",
	}))

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "Invalid credentials")
}

func TestHandleSignIn_UnknownEmail(t *testing.T) {
	h, _ := newHandler(t)

	rec := testutil.NewRecorder()
	h.HandleSignIn(rec.ResponseRecorder, jsonRequest(t, "/auth/signin", map[string]string{
		"email":    "nobody@test.com",
		"password": "whatever",
	}))

	// Indistinguishable from a wrong password.
	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "Invalid credentials")
}

func TestHandleSignIn_MissingFields(t *testing.T) {
	h, _ := newHandler(t)

	rec := testutil.NewRecorder()
	h.HandleSignIn(rec.ResponseRecorder, jsonRequest(t, "/auth/signin", map[string]string{
		"email": "bob@test.com",
	}))

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Please provide email and password")
}
