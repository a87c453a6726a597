package service

import (
	"context"
)

// IdentityUser is the principal the identity provider vouches for: a
// stable subject identifier plus the credential email.
type IdentityUser struct {
	SubjectID string
	Email     string
}

// IdentityProvider defines the credential operations consumed from the
// external identity service. Credential failures map onto the domain
// error taxonomy (unknown account, wrong password, malformed email,
// rate-limited, unreachable) so handlers can surface them verbatim.
type IdentityProvider interface {
	// SignInWithPassword verifies an email/password credential and
	// returns the authenticated principal.
	SignInWithPassword(ctx context.Context, email, password string) (*IdentityUser, error)

	// VerifyIDToken validates a provider-issued ID token and returns the
	// principal it was minted for.
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityUser, error)

	// RevokeSessions invalidates the provider's refresh tokens for the
	// subject, forcing re-authentication everywhere.
	RevokeSessions(ctx context.Context, subjectID string) error
}
