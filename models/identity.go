package models

// Role discriminates the two account collections.
type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
)

// ParseRole maps a path segment to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleLawyer:
		return Role(s), true
	default:
		return "", false
	}
}

// Identity is the request-scoped view of a logged-in account.
type Identity struct {
	Role      Role   `json:"role"`
	AccountID string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	// Photo is the federated profile image. It is only ever held in the
	// session record and disappears with it.
	Photo string `json:"photo,omitempty"`
}

func (i Identity) IsClient() bool { return i.Role == RoleClient }
func (i Identity) IsLawyer() bool { return i.Role == RoleLawyer }

// Principal is the outcome of a successful authentication.
type Principal struct {
	Identity
	// Onboarded is always true for clients.
	Onboarded bool
}

// FederatedProfile is the identity asserted by an external provider.
type FederatedProfile struct {
	ProviderID  string
	Email       string
	DisplayName string
	PhotoURL    string
}
