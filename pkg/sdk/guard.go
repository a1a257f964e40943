package sdk

// Route paths known to the client application.
const (
	PathRoot          = "/"
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathGpt           = "/gpt"
	PathUpdateUser    = "/update-user"
	PathAdminUsers    = "/admin_users"
	PathAdminPolicies = "/admin_policies"
)

// Decision is the outcome of a routing-authorization check. Exactly one of
// the three states holds: show the global loading indicator, redirect to
// Redirect, or render the requested route (both fields zero).
type Decision struct {
	Loading  bool
	Redirect string
}

// Render reports whether the requested route should be rendered as-is.
func (d Decision) Render() bool {
	return !d.Loading && d.Redirect == ""
}

// Resolve decides whether the given identity may render path. It is a pure
// function with no side effects. While the session is still loading, every
// routing decision is suspended behind the loading indicator.
//
// A non-admin requesting an admin path is sent to /login rather than a
// dedicated forbidden page; that is the application's established behavior.
func Resolve(identity *Identity, loading bool, path string) Decision {
	if loading {
		return Decision{Loading: true}
	}

	switch path {
	case PathLogin, PathRegister:
		if identity != nil {
			return Decision{Redirect: PathGpt}
		}
		return Decision{}

	case PathGpt, PathUpdateUser:
		if identity == nil {
			return Decision{Redirect: PathLogin}
		}
		return Decision{}

	case PathAdminUsers, PathAdminPolicies:
		if !identity.IsAdmin() {
			return Decision{Redirect: PathLogin}
		}
		return Decision{}

	case PathRoot:
		switch {
		case identity == nil:
			return Decision{Redirect: PathLogin}
		case identity.IsAdmin():
			return Decision{Redirect: PathAdminUsers}
		default:
			return Decision{Redirect: PathGpt}
		}
	}

	// Unknown paths are outside the guarded route table; rendering falls
	// through to the application's not-found handling.
	return Decision{}
}
