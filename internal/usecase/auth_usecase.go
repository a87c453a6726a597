// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agriatoo/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a seller to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenLoginInput defines the data for logging in with a provider-issued
// ID token (the client authenticated against the identity provider
// directly).
type TokenLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// RefreshTokenInput defines the data required to refresh a session.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	SellerID string `json:"-"`
}

// --- Output DTOs ---

// LoginOutput returns the session tokens and the seller record.
type LoginOutput struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

// RefreshTokenOutput returns the rotated session tokens.
type RefreshTokenOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUsecase defines the interface for seller authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies an email/password credential against the identity
	// provider, then requires a matching active seller record. A principal
	// with no seller record is forcibly signed out.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginWithIDToken verifies a provider-issued ID token and applies the
	// same seller-record policy as Login.
	LoginWithIDToken(ctx context.Context, input *TokenLoginInput) (*LoginOutput, error)

	// RefreshToken rotates the session token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout ends the seller's session and tears down the alert engine.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetProfile loads the authenticated seller's record.
	GetProfile(ctx context.Context, sellerID string) (*entity.User, error)
}
