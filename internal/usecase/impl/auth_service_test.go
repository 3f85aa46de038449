package impl

import (
	"context"
	"testing"

	"backroom/internal/domain/entity"
	domainerrors "backroom/internal/domain/errors"
	"backroom/internal/domain/repository"
	mockRepo "backroom/internal/mocks/repository"
	mockService "backroom/internal/mocks/service"
	"backroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func newTestAuthService(t *testing.T) *authServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return &authServiceFixture{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := newTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "manager@example.com",
		PasswordHash: "$2a$12$hash",
		Roles:        entity.Roles{entity.RoleStoreManager},
		DistrictID:   int64Ptr(3),
		LocationID:   int64Ptr(5),
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "manager@example.com").Return(user, nil)
	})

	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "manager@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := newTestAuthService(t)

	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := newTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "manager@example.com", PasswordHash: "$2a$12$hash"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "manager@example.com").Return(user, nil)
	})

	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "manager@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_TokenGenerationFails(t *testing.T) {
	fx := newTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "manager@example.com", PasswordHash: "$2a$12$hash"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "manager@example.com").Return(user, nil)
	})

	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "manager@example.com", Password: "secret"})

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate access token")
}

func TestAuthService_Me(t *testing.T) {
	fx := newTestAuthService(t)

	t.Run("district manager exposes district scope", func(t *testing.T) {
		principal := &entity.Principal{
			UserID:     uuid.New(),
			Email:      "dm@example.com",
			Roles:      entity.Roles{entity.RoleDistrictManager},
			DistrictID: int64Ptr(3),
		}

		output, err := fx.service.Me(context.Background(), principal)

		require.NoError(t, err)
		assert.Equal(t, "dm@example.com", output.Email)
		assert.Equal(t, []string{"DistrictManager"}, output.Roles)
		require.NotNil(t, output.DistrictID)
		assert.EqualValues(t, 3, *output.DistrictID)
		assert.Nil(t, output.LocationID)
	})

	t.Run("admin carries no scope claims", func(t *testing.T) {
		principal := &entity.Principal{
			UserID:     uuid.New(),
			Email:      "admin@example.com",
			Roles:      entity.Roles{entity.RoleAdmin},
			DistrictID: int64Ptr(3),
		}

		output, err := fx.service.Me(context.Background(), principal)

		require.NoError(t, err)
		assert.Nil(t, output.DistrictID)
		assert.Nil(t, output.LocationID)
	})

	t.Run("nil principal is unauthorized", func(t *testing.T) {
		_, err := fx.service.Me(context.Background(), nil)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
