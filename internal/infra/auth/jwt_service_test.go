package auth

import (
	"testing"
	"time"

	"sapphire/config"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleGroupAdmin}
	issuedAt := time.Now()

	token, expiresAt, err := jwtService.GenerateAccessToken(user, issuedAt)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, issuedAt.Add(time.Hour), expiresAt, time.Second)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RoleGroupAdmin, claims.Role)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_TokensIssuedTogetherDiffer(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleUser}
	now := time.Now()

	first, _, err := jwtService.GenerateAccessToken(user, now)
	require.NoError(t, err)
	second, _, err := jwtService.GenerateAccessToken(user, now)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Minute))
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Username: "bob", Role: entity.RoleUser}
	token, _, err := jwtService.GenerateAccessToken(user, time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	other := newTestConfig(time.Hour)
	other.SecretKey.Access = "another_secret_key_that_does_not_match"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	token, _, err := otherService.GenerateAccessToken(&entity.User{ID: uuid.New()}, time.Now())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RecordExpiryMatchesExpClaim(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	base := time.Now().UTC().Truncate(time.Second)
	issuedAt := base.Add(987_654_321 * time.Nanosecond)
	token, expiresAt, err := jwtService.GenerateAccessToken(&entity.User{ID: uuid.New()}, issuedAt)
	require.NoError(t, err)

	assert.Zero(t, expiresAt.Nanosecond())
	assert.True(t, base.Add(time.Hour).Equal(expiresAt))

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt))
}
