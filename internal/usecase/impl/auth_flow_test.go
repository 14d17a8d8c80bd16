package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/cache"
	"gatekeeper/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepository is an in-memory UserRepository for exercising the full
// register/login/logout flow without a database.
type memoryUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	r.byEmail[user.Email] = &stored
	r.byID[user.ID] = &stored

	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	found := *user

	return &found, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	found := *user

	return &found, nil
}

// noopPublisher swallows events; flow tests only care about auth semantics.
type noopPublisher struct{}

func (noopPublisher) PublishAuthEvent(context.Context, *entity.AuthEvent) error { return nil }
func (noopPublisher) Close() error                                              { return nil }

func createFlowAuthService(t *testing.T) (usecase.AuthUsecase, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4, // minimum cost, keeps the flow tests fast
			TokenTTL:   testTokenTTL,
		},
	}

	service := NewAuthService(AuthServiceParams{
		UserRepo:  newMemoryUserRepository(),
		Cache:     cache.NewTokenCache(client),
		Hasher:    auth.NewBcryptHasher(cfg),
		TokenGen:  auth.NewTokenGenerator(),
		Publisher: noopPublisher{},
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mr
}

func TestAuthFlow_RegisterLoginLogout(t *testing.T) {
	service, _ := createFlowAuthService(t)

	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, registered.User.ID)
	assert.NotEqual(t, "s3cret-pass", registered.User.PasswordHash)

	loggedIn, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, loggedIn.AccessToken)
	assert.Len(t, loggedIn.AccessToken.Token, 48)

	userID := registered.User.ID
	token := loggedIn.AccessToken.Token

	ok, err := service.IsAuthenticated(ctx, userID, token)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, service.Logout(ctx, userID, token))

	ok, err = service.IsAuthenticated(ctx, userID, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// Logout of an already revoked token still succeeds.
	require.NoError(t, service.Logout(ctx, userID, token))
}

func TestAuthFlow_DuplicateRegistration(t *testing.T) {
	service, _ := createFlowAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "alice@example.com", Password: "s3cret-pass"}

	_, err := service.Register(ctx, input)
	require.NoError(t, err)

	_, err = service.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthFlow_NeverIssuedTokenIsRejected(t *testing.T) {
	service, _ := createFlowAuthService(t)

	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	ok, err := service.IsAuthenticated(ctx, registered.User.ID, "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthFlow_TokenBoundToItsUser(t *testing.T) {
	service, _ := createFlowAuthService(t)

	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	bob, err := service.Register(ctx, &usecase.RegisterInput{Email: "bob@example.com", Password: "0ther-pass"})
	require.NoError(t, err)

	aliceLogin, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	// Alice's token presented under Bob's identity must not validate.
	ok, err := service.IsAuthenticated(ctx, bob.User.ID, aliceLogin.AccessToken.Token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthFlow_LogoutAllRevokesEveryDevice(t *testing.T) {
	service, _ := createFlowAuthService(t)

	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	input := &usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"}
	first, err := service.Login(ctx, input)
	require.NoError(t, err)
	second, err := service.Login(ctx, input)
	require.NoError(t, err)
	require.NotEqual(t, first.AccessToken.Token, second.AccessToken.Token)

	userID := registered.User.ID

	require.NoError(t, service.LogoutAll(ctx, userID))

	for _, token := range []string{first.AccessToken.Token, second.AccessToken.Token} {
		ok, err := service.IsAuthenticated(ctx, userID, token)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestAuthFlow_ExpiredTokenIsRejected(t *testing.T) {
	service, mr := createFlowAuthService(t)

	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	loggedIn, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	mr.FastForward(testTokenTTL + time.Second)

	ok, err := service.IsAuthenticated(ctx, registered.User.ID, loggedIn.AccessToken.Token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthFlow_CacheOutageFailsClosed(t *testing.T) {
	service, mr := createFlowAuthService(t)

	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	loggedIn, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	mr.Close()

	ok, err := service.IsAuthenticated(ctx, registered.User.ID, loggedIn.AccessToken.Token)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, domainerrors.ErrCacheUnavailable))
}
