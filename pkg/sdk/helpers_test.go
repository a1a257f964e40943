package sdk_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/SilasBach/insurease/pkg/sdk"
)

// apiStub is a configurable InsurEase API double. Handlers are keyed by
// "METHOD path"; unhandled routes get a 404. Request counts are recorded
// per key for call-count assertions.
type apiStub struct {
	mu       sync.Mutex
	counts   map[string]int
	handlers map[string]http.HandlerFunc
	server   *httptest.Server
}

func newAPIStub(t *testing.T) *apiStub {
	t.Helper()
	stub := &apiStub{
		counts:   make(map[string]int),
		handlers: make(map[string]http.HandlerFunc),
	}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		stub.mu.Lock()
		stub.counts[key]++
		handler := stub.handlers[key]
		stub.mu.Unlock()
		if handler == nil {
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *apiStub) handle(key string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[key] = handler
}

func (s *apiStub) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

func (s *apiStub) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// respondJSON writes v with the given status.
func respondJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encode stub response: %v", err)
		}
	}
}

// stubAuthenticated wires the session-check and catalog endpoints for a
// plain authenticated user.
func (s *apiStub) stubAuthenticated(t *testing.T, userID, role string, catalog map[string][]string) {
	t.Helper()
	s.handle("GET /check-auth", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK, map[string]string{"user_id": userID, "role": role})
	})
	s.handle("GET /policies/policies", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK, map[string]any{"policies": catalog})
	})
}

func newTestClient(t *testing.T, stub *apiStub) *sdk.Client {
	t.Helper()
	client, err := sdk.NewClient(stub.server.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func newTestSession(t *testing.T, stub *apiStub, optFns ...sdk.SessionOption) *sdk.Session {
	t.Helper()
	return sdk.NewSession(newTestClient(t, stub), optFns...)
}

// memoryStore is an in-memory CredentialStore for persistence tests.
type memoryStore struct {
	mu          sync.Mutex
	credentials *sdk.Credentials
	saves       int
	deletes     int
}

func (m *memoryStore) SaveCredentials(credentials *sdk.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credentials = credentials
	m.saves++
	return nil
}

func (m *memoryStore) LoadCredentials() (*sdk.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.credentials == nil {
		return nil, errNotLoggedIn
	}
	return m.credentials, nil
}

func (m *memoryStore) DeleteCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credentials = nil
	m.deletes++
	return nil
}

var errNotLoggedIn = &notLoggedInError{}

type notLoggedInError struct{}

func (*notLoggedInError) Error() string { return "not logged in" }
