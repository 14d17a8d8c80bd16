package impl

import (
	"context"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("$2a$12$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_StoreError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("database connection failed")

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("$2a$12$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(dbError)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
}

func TestAuthService_Register_HashError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	hashError := errors.New("cost out of range")

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("", hashError)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, hashError))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	// Unknown account must be indistinguishable from a bad password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-pass", "$2a$12$hashed").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_StoreError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("database connection failed")

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, dbError)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_CacheWriteError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "$2a$12$hashed").Return(true)
	fx.tokenGen.EXPECT().Generate().Return("aabbccdd", nil)
	fx.cache.EXPECT().
		Put(ctx, user.ID, "aabbccdd", testTokenTTL).
		Return(errors.Wrap(repository.ErrCacheUnavailable, "connection refused"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCacheUnavailable))
}

func TestAuthService_Login_TokenGenerationError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	genError := errors.New("entropy source unavailable")
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hashed",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "$2a$12$hashed").Return(true)
	fx.tokenGen.EXPECT().Generate().Return("", genError)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, genError))
}

func TestAuthService_IsAuthenticated_CacheOutageFailsClosed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cache.EXPECT().
		Exists(ctx, userID, "aabbccdd").
		Return(false, errors.Wrap(repository.ErrCacheUnavailable, "connection refused"))

	ok, err := fx.service.IsAuthenticated(ctx, userID, "aabbccdd")

	assert.False(t, ok)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCacheUnavailable))
}

func TestAuthService_Logout_CacheError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cache.EXPECT().
		Delete(ctx, userID, "aabbccdd").
		Return(errors.Wrap(repository.ErrCacheUnavailable, "connection refused"))

	err := fx.service.Logout(ctx, userID, "aabbccdd")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCacheUnavailable))
}

func TestAuthService_LogoutAll_CacheError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cache.EXPECT().
		DeleteAll(ctx, userID).
		Return(errors.Wrap(repository.ErrCacheUnavailable, "connection refused"))

	err := fx.service.LogoutAll(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCacheUnavailable))
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
