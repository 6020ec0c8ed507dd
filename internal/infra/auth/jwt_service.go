// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"sapphire/config"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := 60 * time.Minute
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
	}, nil
}

// GenerateAccessToken creates a signed access token for the user.
func (s *jwtService) GenerateAccessToken(user *entity.User, issuedAt time.Time) (string, time.Time, error) {
	// exp has whole-second precision; the stored record must expire at the same instant.
	expiresAt := time.Unix(issuedAt.Add(s.accessTTL).Unix(), 0).UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(), // Subject (who the token is for)
		"username": user.Username,
		"role":     user.Role.String(),
		"iat":      issuedAt.Unix(),  // Issued At
		"exp":      expiresAt.Unix(), // Expiration Time
		"jti":      uuid.NewString(), // Keeps tokens issued in the same second distinct
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return signed, expiresAt, nil
}

// ValidateToken verifies the signature and expiry and extracts the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("jwt exp claim elapsed")
		}

		return nil, domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.WithStack(domainerrors.ErrTokenMalformed)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject missing from token")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("invalid subject format in token")
	}

	claims := &service.Claims{UserID: userID}
	claims.Subject = sub
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = entity.Role(role)
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
