package impl

import (
	"context"
	"log/slog"

	"agriatoo/internal/domain/entity"
	domainerrors "agriatoo/internal/domain/errors"
	"agriatoo/internal/domain/repository"
	"agriatoo/internal/domain/service"
	"agriatoo/internal/errors"
	"agriatoo/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. The policy is strict
// pre-registration: the identity provider authenticates the credential,
// but only principals with a matching active seller record in the
// document store get a session. There is no legacy-account self-healing.
type authService struct {
	identity      service.IdentityProvider
	userRepo      repository.UserRepository
	tokenService  service.TokenService
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Identity      service.IdentityProvider
	UserRepo      repository.UserRepository
	TokenService  service.TokenService
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identity:      params.Identity,
		userRepo:      params.UserRepo,
		tokenService:  params.TokenService,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

// Login verifies an email/password credential against the identity
// provider, then requires a matching active seller record.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	principal, err := srv.identity.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		srv.logger.Warn("Credential sign-in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return srv.establishSession(ctx, principal)
}

// LoginWithIDToken verifies a provider-issued ID token and applies the
// same seller-record policy as Login.
func (srv *authService) LoginWithIDToken(ctx context.Context, input *usecase.TokenLoginInput) (*usecase.LoginOutput, error) {
	principal, err := srv.identity.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.logger.Warn("ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("id token rejected by identity provider")
	}

	return srv.establishSession(ctx, principal)
}

// establishSession enforces the seller-record policy and issues the
// service's own token pair. A principal that authenticated but has no
// active seller record is forcibly signed out of the identity provider:
// the failure is fatal for the session, not recoverable.
func (srv *authService) establishSession(ctx context.Context, principal *service.IdentityUser) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.SubjectID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.signOutUnauthorized(ctx, principal.SubjectID, "no seller record")

		return nil, errors.WithStack(domainerrors.ErrSellerNotRegistered)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller record")
	}

	if !user.IsSeller() {
		srv.signOutUnauthorized(ctx, principal.SubjectID, "role is not seller")

		return nil, errors.WithStack(domainerrors.ErrSellerNotRegistered)
	}

	if !user.IsActive {
		srv.signOutUnauthorized(ctx, principal.SubjectID, "seller account deactivated")

		return nil, errors.WithStack(domainerrors.ErrAccountDisabled)
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	srv.logger.Info("Seller logged in", slog.String("sellerID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// signOutUnauthorized revokes the provider's sessions for an
// authenticated principal that fails the seller-record policy.
func (srv *authService) signOutUnauthorized(ctx context.Context, subjectID, reason string) {
	srv.logger.Warn("Forcing sign-out of unauthorized principal",
		slog.String("subjectID", subjectID), slog.String("reason", reason))

	if err := srv.identity.RevokeSessions(ctx, subjectID); err != nil {
		srv.logger.Error("Failed to revoke identity provider sessions",
			slog.String("subjectID", subjectID), slog.Any("error", err))
	}
}

// RefreshToken rotates the session token pair. The seller record is
// re-checked so a deactivated account cannot keep refreshing.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token validation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSellerNotRegistered)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller record")
	}
	if !user.IsActive {
		return nil, errors.WithStack(domainerrors.ErrAccountDisabled)
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout ends the session and tears down the seller's alert engine,
// which cancels both live subscriptions.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.notifications.Release(input.SellerID)
	srv.logger.Info("Seller logged out", slog.String("sellerID", input.SellerID))

	return nil
}

// GetProfile loads the authenticated seller's record.
func (srv *authService) GetProfile(ctx context.Context, sellerID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, sellerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSellerNotRegistered)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller record")
	}

	return user, nil
}
