// Package auth implements password authentication and JWT session tokens.
package auth

import (
	"context"

	"github.com/smartchef/smartchef/internal/models"
)

// Authenticator verifies and manages user credentials. The services only
// see this interface, so the password scheme can be replaced.
type Authenticator interface {
	// Register validates the input and creates an account.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the user owning email when credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ChangeCredential replaces userID's credential after checking current.
	ChangeCredential(ctx context.Context, userID, current, next string) error

	// ValidateCredential reports whether credential is acceptable for a new account.
	ValidateCredential(credential string) error
}
