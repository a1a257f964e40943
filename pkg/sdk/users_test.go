package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SilasBach/insurease/pkg/sdk"
)

func TestFetchUserDataCache(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t)
	stub.handle("GET /users/123", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK, map[string]string{
			"id":       "123",
			"email":    "test@example.com",
			"fullName": "Test User",
			"role":     "user",
		})
	})

	session := newTestSession(t, stub)
	first, err := session.FetchUserData(context.Background(), "123")
	if err != nil {
		t.Fatalf("FetchUserData() error = %v", err)
	}
	second, err := session.FetchUserData(context.Background(), "123")
	if err != nil {
		t.Fatalf("FetchUserData() second call error = %v", err)
	}
	if first != second {
		t.Fatal("second call returned a different profile value than the cached one")
	}
	if got := stub.count("GET /users/123"); got != 1 {
		t.Fatalf("profile endpoint hit %d times, want 1 (cache hit on second call)", got)
	}
}

func TestFetchUserDataUnauthorized(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t)
	stub.stubAuthenticated(t, "123", "user", testCatalog)
	stub.handle("GET /users/123", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
	})

	session := newTestSession(t, stub)
	session.CheckAuthStatus(context.Background())
	if session.Identity() == nil {
		t.Fatal("precondition: expected authenticated session")
	}

	_, err := session.FetchUserData(context.Background(), "123")
	var fetchErr *sdk.FetchUserError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("FetchUserData() error = %T(%v), want *sdk.FetchUserError", err, err)
	}
	if fetchErr.Message != "Failed to fetch user data" {
		t.Fatalf("FetchUserError.Message = %q, want Failed to fetch user data", fetchErr.Message)
	}
	if session.Identity() != nil {
		t.Fatal("Identity() survived a 401 on a profile fetch, want cleared")
	}
}

func TestFetchUserDataNotFound(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t)
	stub.handle("GET /users/nonexistent", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusNotFound, map[string]string{"detail": "User not found"})
	})

	session := newTestSession(t, stub)
	_, err := session.FetchUserData(context.Background(), "nonexistent")
	var fetchErr *sdk.FetchUserError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("FetchUserData() error = %T, want *sdk.FetchUserError", err)
	}
}

func TestFetchUsers(t *testing.T) {
	t.Parallel()

	t.Run("maps legacy _id to id", func(t *testing.T) {
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("GET /users/", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, http.StatusOK, []map[string]string{
				{"_id": "1", "email": "user1@example.com", "fullName": "User One", "role": "user"},
				{"_id": "2", "email": "user2@example.com", "fullName": "User Two", "role": "admin"},
			})
		})

		session := newTestSession(t, stub)
		users, err := session.FetchUsers(context.Background())
		if err != nil {
			t.Fatalf("FetchUsers() error = %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("len(users) = %d, want 2", len(users))
		}
		if users[0].ID != "1" || users[1].ID != "2" {
			t.Fatalf("ids = %q, %q, want 1, 2", users[0].ID, users[1].ID)
		}
		if users[1].Role != "admin" {
			t.Fatalf("users[1].Role = %q, want admin", users[1].Role)
		}
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("GET /users/", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Fetch failed"})
		})

		session := newTestSession(t, stub)
		_, err := session.FetchUsers(context.Background())
		var fetchErr *sdk.FetchUsersError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("FetchUsers() error = %T, want *sdk.FetchUsersError", err)
		}
		if fetchErr.Message != "Failed to fetch users" {
			t.Fatalf("FetchUsersError.Message = %q, want Failed to fetch users", fetchErr.Message)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("returns updated profile", func(t *testing.T) {
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("PUT /users/123", func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]string
			if err := jsonDecode(r, &payload); err != nil {
				t.Errorf("decode update payload: %v", err)
			}
			if _, present := payload["password"]; present {
				t.Error("empty password was serialized into the update payload")
			}
			respondJSON(t, w, http.StatusOK, map[string]string{
				"id":       "123",
				"email":    "updated@example.com",
				"fullName": "Updated User",
				"role":     "admin",
			})
		})

		session := newTestSession(t, stub)
		updated, err := session.UpdateUser(context.Background(), "123", sdk.UserUpdate{Email: "updated@example.com", Role: "admin"})
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		if updated.Email != "updated@example.com" || updated.Role != "admin" {
			t.Fatalf("updated = %+v", updated)
		}
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("PUT /users/123", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Update failed"})
		})

		session := newTestSession(t, stub)
		_, err := session.UpdateUser(context.Background(), "123", sdk.UserUpdate{Email: "invalid@example.com"})
		var updateErr *sdk.UpdateUserError
		if !errors.As(err, &updateErr) {
			t.Fatalf("UpdateUser() error = %T, want *sdk.UpdateUserError", err)
		}
		if updateErr.Message != "Failed to update user" {
			t.Fatalf("UpdateUserError.Message = %q, want Failed to update user", updateErr.Message)
		}
	})

	t.Run("does not refresh the profile cache", func(t *testing.T) {
		// Documented behavior of the shipped client: an update followed by
		// a re-fetch of the same id observes the pre-update profile.
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("GET /users/123", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, http.StatusOK, map[string]string{"id": "123", "email": "old@example.com", "role": "user"})
		})
		stub.handle("PUT /users/123", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(t, w, http.StatusOK, map[string]string{"id": "123", "email": "new@example.com", "role": "user"})
		})

		session := newTestSession(t, stub)
		if _, err := session.FetchUserData(context.Background(), "123"); err != nil {
			t.Fatalf("FetchUserData() error = %v", err)
		}
		if _, err := session.UpdateUser(context.Background(), "123", sdk.UserUpdate{Email: "new@example.com"}); err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		refetched, err := session.FetchUserData(context.Background(), "123")
		if err != nil {
			t.Fatalf("FetchUserData() after update error = %v", err)
		}
		if refetched.Email != "old@example.com" {
			t.Fatalf("refetched.Email = %q, want stale old@example.com", refetched.Email)
		}
		if got := stub.count("GET /users/123"); got != 1 {
			t.Fatalf("profile endpoint hit %d times, want 1", got)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("DELETE /users/123", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		session := newTestSession(t, stub)
		if err := session.DeleteUser(context.Background(), "123"); err != nil {
			t.Fatalf("DeleteUser() error = %v", err)
		}
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		stub := newAPIStub(t)
		stub.handle("DELETE /users/123", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		session := newTestSession(t, stub)
		err := session.DeleteUser(context.Background(), "123")
		var deleteErr *sdk.DeleteUserError
		if !errors.As(err, &deleteErr) {
			t.Fatalf("DeleteUser() error = %T, want *sdk.DeleteUserError", err)
		}
		if deleteErr.Message != "Failed to delete user" {
			t.Fatalf("DeleteUserError.Message = %q, want Failed to delete user", deleteErr.Message)
		}
	})
}
