package ports

import (
	"parceltrack/internal/core/domain/model/access"
)

// TokenIssuer signs identity tokens for authenticated users and turns presented
// tokens back into principals.
type TokenIssuer interface {
	// Issue returns a signed token carrying the principal's id and role.
	Issue(principal access.Principal) (string, error)

	// Verify returns the principal of a valid, unexpired token. Anything else is an
	// UnauthenticatedError.
	Verify(token string) (access.Principal, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
