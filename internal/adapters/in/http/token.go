package http

import (
	"time"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload issued on login. The subject carries the
// account id; role decides what the transport layer lets the caller do.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens.
type TokenService struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenService creates a token service. The signing key must be non-empty.
func NewTokenService(key []byte, issuer, audience string, ttl time.Duration) (*TokenService, error) {
	if len(key) == 0 {
		return nil, errs.NewValueIsRequiredError("key")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &TokenService{
		key:      key,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// Issue creates a signed token for the given account. Returns the token
// string and its expiry time.
func (s *TokenService) Issue(accountID kernel.UUID, email, fullName string, role auth.Role) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := TokenClaims{
		Email: email,
		Name:  fullName,
		Role:  role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify parses and validates a token string and maps it to a caller.
// Every failure mode collapses into the same Unauthorized error.
func (s *TokenService) Verify(tokenString string) (auth.Caller, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return auth.Anonymous(), errs.NewUnauthorizedError("invalid token")
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return auth.Anonymous(), errs.NewUnauthorizedError("invalid token subject")
	}

	role, err := auth.RoleFromString(claims.Role)
	if err != nil {
		return auth.Anonymous(), errs.NewUnauthorizedError("invalid token role")
	}

	caller, err := auth.NewCaller(accountID, role)
	if err != nil {
		return auth.Anonymous(), errs.NewUnauthorizedError("invalid token claims")
	}

	return caller, nil
}
