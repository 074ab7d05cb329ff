package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed is returned when a token cannot be parsed or its
	// signature cannot be verified.
	ErrTokenMalformed = errors.New("token is malformed or has an invalid signature")
	// ErrTokenExpired is returned when a token is past its expiration instant.
	ErrTokenExpired = errors.New("token has expired")
	// ErrUnsupportedAlgorithm is returned when the configured signing
	// algorithm is not in the supported HMAC family.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
)

// Claims is the signed claim set carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed, time-bound access tokens.
// The secret, signing method, and TTL are fixed at construction and the
// manager is safe for concurrent use.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager from a shared secret, an algorithm
// name (HS256, HS384, or HS512), a token TTL, and a clock. A nil clock
// defaults to time.Now.
func NewTokenManager(secret, algorithm string, ttl time.Duration, now func() time.Time) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	var method jwt.SigningMethod
	switch strings.ToUpper(algorithm) {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	if now == nil {
		now = time.Now
	}

	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue builds a claim set {sub: subject, exp: now + ttl}, signs it, and
// returns the encoded token string. The clock is read once per call.
func (m *TokenManager) Issue(subject string) (string, error) {
	issuedAt := m.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiration of a token string. It returns
// ErrTokenExpired once the current time is past the expiration claim and
// ErrTokenMalformed for every other failure.
func (m *TokenManager) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
