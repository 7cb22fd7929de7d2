package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService returns an AuthService signing HS256 tokens with secret that
// expire after ttl.
func NewAuthService(secret string, ttl time.Duration) AuthService {
	return &authService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken signs payload as the token claims. The caller's identity is not
// checked: whoever asks for a token for an email gets one. "iat" and "exp"
// are always set by the server.
func (s *authService) IssueToken(payload map[string]any) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns
// its claims.
func (s *authService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
