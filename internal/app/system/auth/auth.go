// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Token manager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// Claims is the JWT payload: the registered claims plus the acting user's ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenManager issues and verifies the bearer tokens that authenticate every
// API request. Tokens are HS256-signed and carry only the user ID; handlers
// that need the full user record load it fresh from the users collection.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

// NewTokenManager validates the signing secret and returns a TokenManager.
func NewTokenManager(secret string, expiry time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), expiry: expiry, log: logger}, nil
}

// Issue signs a token for the given user ID, valid for the configured expiry.
func (tm *TokenManager) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
		},
		UserID: userID.Hex(),
	})
	return token.SignedString(tm.secret)
}

// Verify parses and validates a token string and returns the embedded user ID.
func (tm *TokenManager) Verify(tokenString string) (primitive.ObjectID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !token.Valid {
		return primitive.NilObjectID, fmt.Errorf("invalid token")
	}
	uid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("malformed user id in token: %w", err)
	}
	return uid, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User context                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// UserContext is what the auth gate injects into r.Context(): the verified
// identity of the acting user, nothing more.
type UserContext struct {
	ID primitive.ObjectID
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the acting user and a "found?" flag.
func CurrentUser(r *http.Request) (*UserContext, bool) {
	u, ok := r.Context().Value(currentUserKey).(*UserContext)
	return u, ok
}

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it, and injects the acting user into the request context.
// Requests with a missing, malformed, or expired token get 401 and never
// reach the handler.
func (tm *TokenManager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			unauthorized(w)
			return
		}

		uid, err := tm.Verify(tokenString)
		if err != nil {
			tm.log.Debug("token verification failed", zap.Error(err))
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, withUser(r, &UserContext{ID: uid}))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Please authenticate"})
}

func withUser(r *http.Request, u *UserContext) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user into the request context directly, bypassing
// token verification. Tests use this to exercise handlers without minting
// real tokens.
func WithTestUser(r *http.Request, u *UserContext) *http.Request {
	return withUser(r, u)
}
