package stores

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/credstore"
	"github.com/aakcay5656/dropspot/internal/client/models"
	"github.com/aakcay5656/dropspot/internal/logging"
)

// SessionStore owns the credential and identity. It sits below the other
// stores: they depend on session validity but never call it — the transport's
// 401 handler closes that loop through Invalidate.
//
// Concurrent Login/Signup calls are not deduplicated: the store reflects the
// most recently settled call's outcome.
type SessionStore struct {
	state
	api   api.Client
	creds credstore.Repository
	log   logging.Logger

	token string
	user  *models.User
}

func NewSessionStore(client api.Client, creds credstore.Repository, log logging.Logger) *SessionStore {
	return &SessionStore{
		api:   client,
		creds: creds,
		log:   log.With("store", "session"),
	}
}

// Restore seeds session state from the persisted credential, once, at
// process start. A token that is absent, unreadable, or already expired
// leaves the store unauthenticated; expired tokens are also wiped durably.
// Identity is partial after a restore: only the user id is carried in the
// token claims, the rest returns with the next login.
func (s *SessionStore) Restore(ctx context.Context) error {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read persisted credential: %w", err)
	}
	if token == "" {
		return nil
	}

	userID, expiresAt, err := parseCredential(token)
	if err != nil || (expiresAt != nil && expiresAt.Before(time.Now())) {
		s.log.Warn(ctx, "discarding persisted credential", "error", err)
		return s.creds.Clear(ctx)
	}

	s.api.SetToken(token)
	s.mu.Lock()
	s.token = token
	s.user = &models.User{ID: userID}
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "user_id", userID)
	return nil
}

// parseCredential decodes the token's claims without verifying the
// signature — the client holds no signing key; validity is the server's
// call. It only needs the subject (user id) and expiry.
func parseCredential(token string) (int64, *time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, nil, err
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid subject claim: %w", err)
	}
	if claims.ExpiresAt == nil {
		return userID, nil, nil
	}
	return userID, &claims.ExpiresAt.Time, nil
}

func (s *SessionStore) Signup(ctx context.Context, email, password string) (*models.User, error) {
	return s.authenticate(ctx, "Signup failed", func(ctx context.Context) (*api.AuthResult, error) {
		return s.api.Signup(ctx, email, password)
	})
}

func (s *SessionStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	return s.authenticate(ctx, "Login failed", func(ctx context.Context) (*api.AuthResult, error) {
		return s.api.Login(ctx, email, password)
	})
}

func (s *SessionStore) authenticate(ctx context.Context, fallback string, exchange func(context.Context) (*api.AuthResult, error)) (*models.User, error) {
	s.begin()

	res, err := exchange(ctx)
	if err != nil {
		s.fail(normalize(err, fallback))
		return nil, err
	}

	if err := s.creds.Save(ctx, res.AccessToken); err != nil {
		s.fail(normalize(err, fallback))
		return nil, fmt.Errorf("persist credential: %w", err)
	}

	s.api.SetToken(res.AccessToken)

	user := res.User
	s.mu.Lock()
	s.token = res.AccessToken
	s.user = &user
	s.mu.Unlock()

	s.end()
	s.log.Info(ctx, "authenticated", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// Logout clears the durable credential and all in-memory session state.
// Synchronous: no network call is made, and drop caches are left alone.
func (s *SessionStore) Logout() {
	if err := s.creds.Clear(context.Background()); err != nil {
		s.log.Error(context.Background(), "failed to clear persisted credential", "error", err)
	}
	s.api.SetToken("")

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Invalidate drops the in-memory session after the transport detected
// credential expiry. Durable storage and the transport token are already
// cleared by the time this runs.
func (s *SessionStore) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// User returns the current identity, or nil when unauthenticated.
func (s *SessionStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a credential is live. It does not imply
// the credential is still valid server-side.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin reports whether admin affordances should be shown. Advisory only.
func (s *SessionStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}
