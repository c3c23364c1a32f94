package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/goshen-supply/storefront/internal/shared"
)

// Identity is the single admin credential pair injected from configuration.
// PasswordHash, when set, takes precedence over the plaintext Password and
// is expected to be a bcrypt digest.
type Identity struct {
	Email        string
	Password     string
	PasswordHash string
}

// Service validates login attempts against the one configured admin
// identity. There is no user table: the whole system has exactly one
// privileged identity and anonymous visitors.
type Service struct {
	identity Identity
}

// NewService constructs a Service around the configured identity.
func NewService(identity Identity) *Service {
	return &Service{identity: identity}
}

// Authenticate checks the submitted credential pair. Both fields must match
// exactly; comparison is constant-time so a mismatch reveals nothing about
// which field was wrong.
func (s *Service) Authenticate(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.identity.Email)) == 1

	var passwordOK bool
	if s.identity.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.identity.PasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.identity.Password)) == 1
	}

	if !emailOK || !passwordOK {
		return shared.ErrInvalidCredentials
	}
	return nil
}
