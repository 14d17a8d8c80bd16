// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It holds no mutable state
// of its own: registration races are settled by the store's uniqueness
// constraint and session validity lives entirely in the token cache, so no
// locking happens at this layer.
type authService struct {
	userRepo  repository.UserRepository
	cache     repository.TokenCache
	hasher    service.PasswordHasher
	tokenGen  service.TokenGenerator
	publisher service.EventPublisher
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Cache     repository.TokenCache
	Hasher    service.PasswordHasher
	TokenGen  service.TokenGenerator
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	tokenTTL := 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		tokenTTL = params.Config.Auth.TokenTTL
	}

	return &authService{
		userRepo:  params.UserRepo,
		cache:     params.Cache,
		hasher:    params.Hasher,
		tokenGen:  params.TokenGen,
		publisher: params.Publisher,
		tokenTTL:  tokenTTL,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the user registration process: hash the password,
// hand the record to the store, and let its uniqueness constraint arbitrate
// duplicates.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Profile:      input.Profile,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration conflict", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))
	srv.publishEvent(ctx, entity.EventUserRegistered, newUser)

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and issues a fresh access token. An unknown email
// and a wrong password produce the same error on purpose: the response must
// not reveal whether the account exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load user during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "failed to load user during login")
	}

	// bcrypt comparison is CPU-bound; nothing is held open while it runs.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokenValue, err := srv.tokenGen.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	// Once this write lands the token is live, even if the caller abandons the
	// request before seeing the response. No rollback is attempted.
	if err := srv.cache.Put(ctx, user.ID, tokenValue, srv.tokenTTL); err != nil {
		srv.log(ctx).Error("Failed to store token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCacheUnavailable, "failed to store access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))
	srv.publishEvent(ctx, entity.EventUserLoggedIn, user)

	return &usecase.LoginOutput{
		User: user,
		AccessToken: &entity.AccessToken{
			UserID:    user.ID,
			Token:     tokenValue,
			ExpiresAt: time.Now().Add(srv.tokenTTL),
		},
	}, nil
}

// IsAuthenticated answers the per-request session check with a single cache
// lookup. Empty inputs short-circuit to false as policy, without touching the
// cache. A cache outage fails closed: the boolean is false and the error still
// propagates so the transport can surface an operational failure instead of a
// silent 401.
func (srv *authService) IsAuthenticated(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	if userID == uuid.Nil || token == "" {
		return false, nil
	}

	ok, err := srv.cache.Exists(ctx, userID, token)
	if err != nil {
		srv.log(ctx).Error("Session check failed", slog.Any("userID", userID), slog.Any("error", err))

		return false, errors.Wrap(domainerrors.ErrCacheUnavailable, "failed to check session")
	}

	return ok, nil
}

// Logout revokes a single session. Revoking an unknown or already-expired pair
// succeeds silently; callers cannot tell "already logged out" from "logged out
// now", which keeps the endpoint useless for token probing.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	if userID == uuid.Nil || token == "" {
		return nil
	}

	if err := srv.cache.Delete(ctx, userID, token); err != nil {
		srv.log(ctx).Error("Failed to delete token", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCacheUnavailable, "failed to revoke session")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))
	srv.publishEvent(ctx, entity.EventUserLoggedOut, &entity.User{ID: userID})

	return nil
}

// LogoutAll revokes every live session of the user across all devices.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return nil
	}

	if err := srv.cache.DeleteAll(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete all tokens", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCacheUnavailable, "failed to revoke sessions")
	}

	srv.log(ctx).Info("User logged out from all devices", slog.Any("userID", userID))
	srv.publishEvent(ctx, entity.EventUserLoggedOut, &entity.User{ID: userID})

	return nil
}

// GetUser retrieves a user by ID for protected profile reads. Unlike login,
// this sits behind the guard, so NotFound is allowed to surface directly.
func (srv *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load user")
		}

		srv.log(ctx).Error("Failed to load user", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "failed to load user")
	}

	return user, nil
}

// publishEvent emits an auth event. Publishing is best-effort: a failed
// publish is logged and the triggering operation still succeeds.
func (srv *authService) publishEvent(ctx context.Context, eventType string, user *entity.User) {
	event := &entity.AuthEvent{
		Type:       eventType,
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("type", eventType),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}
