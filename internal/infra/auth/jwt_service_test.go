package auth

import (
	"testing"
	"time"

	"backroom/config"
	"backroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "backroom"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(time.Minute))
	require.NoError(t, err)

	user := &entity.User{
		ID:         uuid.New(),
		Email:      "sm@example.com",
		Roles:      entity.Roles{entity.RoleStoreManager},
		DistrictID: int64Ptr(3),
		LocationID: int64Ptr(5),
	}

	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "sm@example.com", claims.Email)
	assert.Equal(t, []string{"StoreManager"}, claims.Roles)
	require.NotNil(t, claims.DistrictID)
	assert.EqualValues(t, 3, *claims.DistrictID)
	require.NotNil(t, claims.LocationID)
	assert.EqualValues(t, 5, *claims.LocationID)
	assert.Equal(t, "backroom", claims.Issuer)
}

func TestJWTService_AdminTokenOmitsScopeClaims(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(time.Minute))
	require.NoError(t, err)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Roles: entity.Roles{entity.RoleAdmin},
	}

	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.DistrictID)
	assert.Nil(t, claims.LocationID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(time.Minute))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative TTL signs a token that is already expired.
	jwtService := &jwtService{secret: "test_secret", accessTTL: -time.Minute}

	user := &entity.User{ID: uuid.New(), Email: "sm@example.com", Roles: entity.Roles{entity.RoleStoreManager}}

	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(time.Minute))
	require.NoError(t, err)

	otherCfg := testJWTConfig(time.Minute)
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Email: "sm@example.com"}

	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	service, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, service)
}
