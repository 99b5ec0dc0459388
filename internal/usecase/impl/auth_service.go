// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	deliverycontext "todo/internal/delivery/context"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the UserUsecase interface. It is the only path
// that creates credentials, and the per-request gate that verifies them.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	issuer    service.CredentialIssuer
	codec     service.SessionCodec
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Issuer    service.CredentialIssuer
	Codec     service.SessionCodec
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.UserUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		issuer:    params.Issuer,
		codec:     params.Codec,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account inside a transaction. Email and username
// are pre-checked independently so conflicts produce friendly errors; the
// database unique constraints remain the backstop for the race window
// between check and insert.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("email", input.Email), slog.String("username", input.Username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("registration rejected")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email existence")
		}

		if _, findErr := userRepo.FindByUsername(ctx, input.Username); findErr == nil {
			return domainerrors.ErrUsernameTaken.WrapMessage("registration rejected")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check username existence")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	output, err := srv.issueSession(newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to issue credential after registration", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login verifies the email/password pair and issues a fresh credential.
// "No such account" and "wrong password" are deliberately indistinguishable.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	output, err := srv.issueSession(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue credential during login", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// Logout revokes the session where the strategy supports it and hands back
// the clearing cookie. An absent or invalid cookie still clears.
func (srv *authService) Logout(ctx context.Context, rawCookieHeader string) string {
	if credential, ok := srv.codec.Decode(rawCookieHeader); ok {
		srv.issuer.Revoke(credential)
	}
	srv.log(ctx).Info("Logged out")

	return srv.codec.Clear()
}

// Authenticate resolves the cookie header to a fresh identity. The claims
// inside a credential are trusted only far enough to look the user up; the
// returned identity always reflects the current user record.
func (srv *authService) Authenticate(ctx context.Context, rawCookieHeader string) (*entity.Identity, error) {
	credential, ok := srv.codec.Decode(rawCookieHeader)
	if !ok {
		return nil, nil
	}

	claims, err := srv.issuer.Resolve(credential)
	if err != nil {
		// Invalid, expired, tampered, or revoked. Terminal for this request.
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account is gone but the credential still resolves. Treat as
			// not authenticated and purge the stale registry entry.
			srv.issuer.Revoke(credential)
			srv.log(ctx).Warn("Credential resolved to deleted user", slog.Any("userID", claims.UserID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return entity.IdentityOf(user), nil
}

// RequireAuthenticated is the entry point for every protected operation.
func (srv *authService) RequireAuthenticated(ctx context.Context, rawCookieHeader string) (*entity.Identity, error) {
	identity, err := srv.Authenticate(ctx, rawCookieHeader)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("authentication required")
	}

	return identity, nil
}

func (srv *authService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	credential, err := srv.issuer.Issue(service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credential")
	}

	return &usecase.AuthOutput{
		Identity: entity.IdentityOf(user),
		Cookie:   srv.codec.EncodeForClient(credential),
	}, nil
}
