package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

// userProfileWire tolerates both id shapes the API emits: single-profile
// endpoints return "id", the admin list endpoint returns Mongo-style "_id".
type userProfileWire struct {
	ID                string `json:"id"`
	MongoID           string `json:"_id"`
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	Role              string `json:"role"`
	BureauAffiliation string `json:"bureauAffiliation"`
	AccountStatus     string `json:"accountStatus"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
	LastLogin         string `json:"lastLogin"`
}

func (w userProfileWire) toProfile() *UserProfile {
	id := w.ID
	if id == "" {
		id = w.MongoID
	}
	return &UserProfile{
		ID:                id,
		Email:             w.Email,
		FullName:          w.FullName,
		Role:              w.Role,
		BureauAffiliation: w.BureauAffiliation,
		AccountStatus:     w.AccountStatus,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
		LastLogin:         w.LastLogin,
	}
}

// UserUpdate is the partial-profile payload for UpdateUser. Zero-valued
// fields are omitted from the request.
type UserUpdate struct {
	Email             string `json:"email,omitempty"`
	FullName          string `json:"fullName,omitempty"`
	Role              string `json:"role,omitempty"`
	BureauAffiliation string `json:"bureauAffiliation,omitempty"`
	AccountStatus     string `json:"accountStatus,omitempty"`
	Password          string `json:"password,omitempty"`
}

// FetchUserData returns the profile for userID, consulting the in-session
// cache first. A cached entry is returned without a network call; entries
// live for the session lifetime with no eviction. On HTTP 401 the identity
// is cleared (session expiry) before the error is returned.
//
// Note: UpdateUser does not refresh the cache, so an update followed by a
// re-fetch of the same id observes the pre-update profile. This mirrors the
// shipped web client; do not "fix" it here without changing both.
func (s *Session) FetchUserData(ctx context.Context, userID string) (*UserProfile, error) {
	if profile := s.cachedUser(userID); profile != nil {
		return profile, nil
	}

	body, err := s.client.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil)
	if err != nil {
		if apiErr := s.classify(err); apiErr != nil {
			return nil, &FetchUserError{Message: "Failed to fetch user data", Err: err}
		}
		return nil, &NetworkError{Err: err}
	}

	var wire userProfileWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &FetchUserError{Message: "Failed to fetch user data", Err: err}
	}
	profile := wire.toProfile()

	s.cacheMu.Lock()
	s.userCache[userID] = profile
	s.cacheMu.Unlock()
	return profile, nil
}

// FetchUsers lists all user profiles (admin only).
func (s *Session) FetchUsers(ctx context.Context) ([]*UserProfile, error) {
	body, err := s.client.doJSON(ctx, http.MethodGet, "/users/", nil)
	if err != nil {
		if apiErr := s.classify(err); apiErr != nil {
			return nil, &FetchUsersError{Message: "Failed to fetch users", Err: err}
		}
		return nil, &NetworkError{Err: err}
	}

	var wires []userProfileWire
	if err := json.Unmarshal(body, &wires); err != nil {
		return nil, &FetchUsersError{Message: "Failed to fetch users", Err: err}
	}
	profiles := make([]*UserProfile, 0, len(wires))
	for _, wire := range wires {
		profiles = append(profiles, wire.toProfile())
	}
	return profiles, nil
}

// UpdateUser applies a partial update to the profile and returns the
// updated record. The cached entry for userID is intentionally left alone
// (see FetchUserData).
func (s *Session) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*UserProfile, error) {
	body, err := s.client.doJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), update)
	if err != nil {
		if apiErr := s.classify(err); apiErr != nil {
			return nil, &UpdateUserError{Message: "Failed to update user", Err: err}
		}
		return nil, &NetworkError{Err: err}
	}

	var wire userProfileWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &UpdateUserError{Message: "Failed to update user", Err: err}
	}
	return wire.toProfile(), nil
}

// DeleteUser removes the user account (admin only).
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	_, err := s.client.doJSON(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil)
	if err != nil {
		if apiErr := s.classify(err); apiErr != nil {
			return &DeleteUserError{Message: "Failed to delete user", Err: err}
		}
		return &NetworkError{Err: err}
	}
	return nil
}

// ClearUserCache drops all cached profiles. Exposed for long-lived
// embedders; the web client this layer mirrors never invalidates.
func (s *Session) ClearUserCache() {
	s.cacheMu.Lock()
	s.userCache = make(map[string]*UserProfile)
	s.cacheMu.Unlock()
}

func (s *Session) cachedUser(userID string) *UserProfile {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.userCache[userID]
}

// classify extracts the *apiError from err, expiring the session on 401.
// Returns nil for transport-level failures.
func (s *Session) classify(err error) *apiError {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return nil
	}
	if apiErr.unauthorized() {
		s.expire()
	}
	return apiErr
}
