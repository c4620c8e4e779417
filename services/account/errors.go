package account

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotFound    = errors.New("account not found")
)

// UnknownRoleError is returned when a role outside client/lawyer reaches the service.
type UnknownRoleError struct {
	Role string
}

func (e UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q", e.Role)
}
