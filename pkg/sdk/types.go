package sdk

import "time"

// Role values returned by the InsurEase API.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// PolicyCatalog maps an insurance company name to the ordered list of
// policy document filenames visible to the current identity.
type PolicyCatalog map[string][]string

// Identity is the authenticated principal: who is logged in and which
// policy documents they may see. It is replaced wholesale on every
// successful session check or login and cleared on logout.
type Identity struct {
	UserID   string        `json:"user_id"`
	Role     string        `json:"role"`
	Policies PolicyCatalog `json:"policies,omitempty"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// UserProfile is the detailed record of a user, fetched on demand for
// self-service or admin editing. Distinct from Identity.
type UserProfile struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	Role              string `json:"role"`
	BureauAffiliation string `json:"bureauAffiliation,omitempty"`
	AccountStatus     string `json:"accountStatus"`
	CreatedAt         string `json:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
	LastLogin         string `json:"lastLogin,omitempty"`
}

// LoginInput carries the credentials for Session.Login.
type LoginInput struct {
	Email    string
	Password string
}

// RegistrationInput carries the fields for Session.Register.
type RegistrationInput struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"fullName"`
	BureauAffiliation string `json:"bureauAffiliation"`
}

// OperationResult is the uniform outcome of the result-style mutating
// operations (upload/delete policy, add/delete company). Those operations
// never return a Go error; callers branch on Success and show Message.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Credentials is the persistable session state: the identity summary and
// the session cookies issued by the token endpoint. The transport still
// uses cookies; this type makes the ambient credential explicit so it can
// be stored, restored, and tested without a live browser jar.
type Credentials struct {
	UserID  string          `json:"user_id"`
	Role    string          `json:"role"`
	Cookies []SessionCookie `json:"cookies"`
	SavedAt time.Time       `json:"saved_at"`
}

// SessionCookie is the serialized form of a session cookie.
type SessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CredentialStore persists Credentials between client runs. The CLI
// implements it with a JSON file under the user's home directory.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}

// BureauAffiliations maps affiliation codes accepted at registration to
// insurer display names.
var BureauAffiliations = map[string]string{
	"TRYG":           "Tryg Forsikring",
	"TOPDANMARK":     "Topdanmark",
	"CODAN":          "Codan Forsikring",
	"ALM_BRAND":      "Alm. Brand",
	"IF_SKADE":       "If Skadeforsikring",
	"GJENSIDIGE":     "Gjensidige Forsikring",
	"LB":             "LB Forsikring",
	"LAERERSTANDENS": "Lærerstandens Brandforsikring",
	"GF":             "GF Forsikring",
	"KOBSTAEDERNES":  "Købstædernes Forsikring",
}
