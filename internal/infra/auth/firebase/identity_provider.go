package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"agriatoo/config"
	domainerrors "agriatoo/internal/domain/errors"
	"agriatoo/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// identityProvider implements service.IdentityProvider against Firebase:
// password sign-in goes through the Identity Toolkit REST API (the Admin
// SDK has no password verification), token verification and session
// revocation go through the Admin SDK.
type identityProvider struct {
	authClient *auth.Client
	webAPIKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// IdentityProviderParams holds dependencies for the identity provider, injected by Fx
type IdentityProviderParams struct {
	fx.In

	Config     *config.Config
	AuthClient *auth.Client
	Logger     *slog.Logger
}

// NewIdentityProvider is the constructor for the Firebase identity provider.
func NewIdentityProvider(params IdentityProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.WebAPIKey == "" {
		return nil, errors.New("firebase web API key must be configured for password sign-in")
	}

	return &identityProvider{
		authClient: params.AuthClient,
		webAPIKey:  cfg.WebAPIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: params.Logger,
	}, nil
}

// signInRequest is the Identity Toolkit password sign-in payload.
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// signInResponse carries the fields we consume from a successful sign-in.
type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

// signInError is the Identity Toolkit error envelope.
type signInError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword verifies an email/password credential and returns
// the authenticated principal.
func (p *identityProvider) SignInWithPassword(ctx context.Context, email, password string) (*service.IdentityUser, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signInEndpoint+"?key="+p.webAPIKey, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("Identity provider unreachable", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var body signInResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, errors.Wrap(err, "failed to decode sign-in response")
		}

		return &service.IdentityUser{
			SubjectID: body.LocalID,
			Email:     body.Email,
		}, nil
	}

	var body signInError
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode sign-in error response")
	}

	return nil, mapSignInError(body.Error.Message)
}

// mapSignInError translates Identity Toolkit error codes onto the domain
// error taxonomy. Codes can carry suffixes like "TOO_MANY_ATTEMPTS_TRY_LATER
// : ..." so matching is by prefix.
func mapSignInError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"):
		return domainerrors.ErrEmailNotFound
	case strings.HasPrefix(code, "INVALID_PASSWORD"), strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return domainerrors.ErrInvalidPassword
	case strings.HasPrefix(code, "INVALID_EMAIL"):
		return domainerrors.ErrInvalidEmail
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return domainerrors.ErrTooManyAttempts
	case strings.HasPrefix(code, "USER_DISABLED"):
		return domainerrors.ErrAccountDisabled
	default:
		return domainerrors.ErrInvalidPassword
	}
}

// VerifyIDToken validates a provider-issued ID token and returns the
// principal it was minted for.
func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityUser, error) {
	token, err := p.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	email, _ := token.Claims["email"].(string)

	return &service.IdentityUser{
		SubjectID: token.UID,
		Email:     email,
	}, nil
}

// RevokeSessions invalidates the provider's refresh tokens for the
// subject, forcing re-authentication everywhere.
func (p *identityProvider) RevokeSessions(ctx context.Context, subjectID string) error {
	if err := p.authClient.RevokeRefreshTokens(ctx, subjectID); err != nil {
		return errors.Wrapf(err, "failed to revoke sessions for %s", subjectID)
	}

	p.logger.Info("Revoked identity provider sessions",
		slog.String("subject_id", subjectID),
	)

	return nil
}
