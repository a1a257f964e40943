package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Session is the single source of truth for the current identity. It starts
// unresolved with Loading() true; the first CheckAuthStatus settles it into
// authenticated or anonymous. One Session per application: construct it once
// and hand it to consumers.
//
// Session-mutating calls (CheckAuthStatus, Login, Register, Logout) are
// serialized by an internal mutex, so two concurrent login attempts cannot
// interleave their identity writes.
type Session struct {
	client *Client
	store  CredentialStore
	logger *slog.Logger

	mu sync.Mutex // serializes session-mutating operations

	stateMu  sync.RWMutex
	identity *Identity
	loading  bool

	cacheMu   sync.Mutex
	userCache map[string]*UserProfile
}

// SessionOption configures Session construction.
type SessionOption func(*Session)

// WithCredentialStore enables persistence of the session credential across
// process runs. Login saves, Logout deletes. Nil disables persistence.
func WithCredentialStore(store CredentialStore) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// NewSession creates a Session bound to client. The session starts in the
// loading state; call CheckAuthStatus to resolve it.
func NewSession(client *Client, optFns ...SessionOption) *Session {
	s := &Session{
		client:    client,
		logger:    client.logger,
		loading:   true,
		userCache: make(map[string]*UserProfile),
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Loading reports whether an authentication-resolving request is still
// outstanding. True from construction until the first CheckAuthStatus
// (or Login) completes, for all outcomes.
func (s *Session) Loading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

// Identity returns the current identity, or nil when anonymous or still
// unresolved. The returned value is shared; callers must not mutate it.
func (s *Session) Identity() *Identity {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.identity
}

func (s *Session) publish(identity *Identity) {
	s.stateMu.Lock()
	s.identity = identity
	s.stateMu.Unlock()
}

func (s *Session) setLoading(v bool) {
	s.stateMu.Lock()
	s.loading = v
	s.stateMu.Unlock()
}

// expire clears the identity after the server rejected the session
// credential on an authenticated operation.
func (s *Session) expire() {
	s.logger.Info("session expired, clearing identity")
	s.publish(nil)
}

// CheckAuthStatus resolves the current session against the server. On
// success it fetches the policy catalog, merges it into the identity, and
// publishes the result; on any failure it publishes anonymous. It never
// returns an error: session-resolution failures surface only as "no
// identity". Returns the published identity for convenience.
func (s *Session) CheckAuthStatus(ctx context.Context) *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.setLoading(false)

	body, err := s.client.doJSON(ctx, http.MethodGet, "/check-auth", nil)
	if err != nil {
		s.logger.Debug("session check failed", "error", err)
		s.publish(nil)
		return nil
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		s.logger.Debug("session check returned malformed identity", "error", err)
		s.publish(nil)
		return nil
	}

	catalog, err := s.client.FetchPolicyCatalog(ctx)
	if err != nil {
		s.logger.Debug("policy catalog fetch failed during session check", "error", err)
		s.publish(nil)
		return nil
	}
	identity.Policies = catalog

	s.publish(&identity)
	return &identity
}

// Login authenticates with email and password against the token endpoint
// (form-encoded, per the API contract). On success the policy catalog is
// fetched and merged, the identity is published and persisted, and the same
// identity is returned. On failure it returns *AuthError carrying the
// server's detail message and leaves the published identity untouched.
func (s *Session) Login(ctx context.Context, input LoginInput) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.login(ctx, input)
}

// login is Login without the mutex, for chaining from Register.
func (s *Session) login(ctx context.Context, input LoginInput) (*Identity, error) {
	defer s.setLoading(false)

	form := url.Values{}
	form.Set("username", input.Email)
	form.Set("password", input.Password)

	body, err := s.client.doForm(ctx, "/token", form)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, &AuthError{Message: apiErr.detailOr("Login failed"), Err: err}
		}
		return nil, &AuthError{Message: "Login failed", Err: err}
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, &AuthError{Message: "Login failed", Err: err}
	}

	catalog, err := s.client.FetchPolicyCatalog(ctx)
	if err != nil {
		return nil, &AuthError{Message: "Login failed", Err: err}
	}
	identity.Policies = catalog

	s.publish(&identity)
	s.persist(&identity)
	s.logger.Info("logged in", "user_id", identity.UserID, "role", identity.Role)
	return &identity, nil
}

// Register creates a new account and, on success, chains into Login with
// the same email and password. On failure it returns *RegistrationError
// with the server's detail message and performs no login call.
func (s *Session) Register(ctx context.Context, input RegistrationInput) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.client.doJSON(ctx, http.MethodPost, "/users/", input); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return nil, &RegistrationError{Message: apiErr.detailOr("Registration failed"), Err: err}
		}
		return nil, &RegistrationError{Message: "Registration failed", Err: err}
	}

	s.logger.Info("registered", "email", input.Email)
	return s.login(ctx, LoginInput{Email: input.Email, Password: input.Password})
}

// Logout posts to the logout endpoint and publishes anonymous regardless of
// the network outcome. Transport failures are swallowed and logged; the
// persisted credential is deleted either way.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.client.doJSON(ctx, http.MethodPost, "/logout", nil); err != nil {
		s.logger.Warn("logout request failed", "error", err)
	}
	s.publish(nil)
	if s.store != nil {
		if err := s.store.DeleteCredentials(); err != nil {
			s.logger.Warn("failed to delete stored credentials", "error", err)
		}
	}
}

// Restore seeds the client's cookie jar from the credential store and
// validates the session with CheckAuthStatus. Without a store, or with no
// stored credential, it behaves exactly like CheckAuthStatus.
func (s *Session) Restore(ctx context.Context) *Identity {
	if s.store != nil {
		if credentials, err := s.store.LoadCredentials(); err == nil {
			s.client.RestoreCredentials(credentials)
		}
	}
	return s.CheckAuthStatus(ctx)
}

// persist saves the session cookies alongside the identity summary.
// Best effort: persistence failures are logged, never propagated.
func (s *Session) persist(identity *Identity) {
	if s.store == nil {
		return
	}
	credentials := &Credentials{
		UserID:  identity.UserID,
		Role:    identity.Role,
		Cookies: s.client.sessionCookies(),
		SavedAt: time.Now().UTC(),
	}
	if err := s.store.SaveCredentials(credentials); err != nil {
		s.logger.Warn("failed to persist credentials", "error", err)
	}
}
