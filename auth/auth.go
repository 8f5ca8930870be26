package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator is the injected capability that verifies admin logins.
// The storefront never compares credentials inline.
type Authenticator interface {
	Authenticate(username, password string) error
}

// EnvAuthenticator checks against a single credential pair supplied
// through configuration.
type EnvAuthenticator struct {
	username string
	password string
}

func NewEnvAuthenticator(username, password string) *EnvAuthenticator {
	return &EnvAuthenticator{username: username, password: password}
}

func (a *EnvAuthenticator) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
