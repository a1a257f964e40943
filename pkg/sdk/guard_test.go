package sdk_test

import (
	"testing"

	"github.com/SilasBach/insurease/pkg/sdk"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	anon := (*sdk.Identity)(nil)
	user := &sdk.Identity{UserID: "123", Role: sdk.RoleUser}
	admin := &sdk.Identity{UserID: "456", Role: sdk.RoleAdmin}

	tests := []struct {
		name     string
		identity *sdk.Identity
		loading  bool
		path     string
		want     sdk.Decision
	}{
		{"loading suspends everything", admin, true, sdk.PathAdminUsers, sdk.Decision{Loading: true}},

		{"anonymous renders login", anon, false, sdk.PathLogin, sdk.Decision{}},
		{"anonymous renders register", anon, false, sdk.PathRegister, sdk.Decision{}},
		{"authenticated leaves login", user, false, sdk.PathLogin, sdk.Decision{Redirect: sdk.PathGpt}},
		{"authenticated leaves register", admin, false, sdk.PathRegister, sdk.Decision{Redirect: sdk.PathGpt}},

		{"anonymous bounced from gpt", anon, false, sdk.PathGpt, sdk.Decision{Redirect: sdk.PathLogin}},
		{"anonymous bounced from update-user", anon, false, sdk.PathUpdateUser, sdk.Decision{Redirect: sdk.PathLogin}},
		{"user renders gpt", user, false, sdk.PathGpt, sdk.Decision{}},
		{"admin renders update-user", admin, false, sdk.PathUpdateUser, sdk.Decision{}},

		{"user bounced from admin users", user, false, sdk.PathAdminUsers, sdk.Decision{Redirect: sdk.PathLogin}},
		{"user bounced from admin policies", user, false, sdk.PathAdminPolicies, sdk.Decision{Redirect: sdk.PathLogin}},
		{"anonymous bounced from admin users", anon, false, sdk.PathAdminUsers, sdk.Decision{Redirect: sdk.PathLogin}},
		{"admin renders admin users", admin, false, sdk.PathAdminUsers, sdk.Decision{}},
		{"admin renders admin policies", admin, false, sdk.PathAdminPolicies, sdk.Decision{}},

		{"root sends anonymous to login", anon, false, sdk.PathRoot, sdk.Decision{Redirect: sdk.PathLogin}},
		{"root sends admin to admin users", admin, false, sdk.PathRoot, sdk.Decision{Redirect: sdk.PathAdminUsers}},
		{"root sends user to gpt", user, false, sdk.PathRoot, sdk.Decision{Redirect: sdk.PathGpt}},

		{"unknown path renders", anon, false, "/no-such-route", sdk.Decision{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sdk.Resolve(tt.identity, tt.loading, tt.path)
			if got != tt.want {
				t.Fatalf("Resolve(%v, %v, %q) = %+v, want %+v", tt.identity, tt.loading, tt.path, got, tt.want)
			}
		})
	}
}

func TestDecisionRender(t *testing.T) {
	t.Parallel()

	if !(sdk.Decision{}).Render() {
		t.Error("zero Decision should render")
	}
	if (sdk.Decision{Loading: true}).Render() {
		t.Error("loading Decision should not render")
	}
	if (sdk.Decision{Redirect: sdk.PathLogin}).Render() {
		t.Error("redirect Decision should not render")
	}
}
