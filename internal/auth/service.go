package auth

import (
	"fmt"
	"time"

	"github.com/askhat/gostore/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims describes the validated identity extracted from an access token.
type UserClaims struct {
	UserID    string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Service validates and issues HS256 access tokens. There is no user
// store behind it; credential management belongs to whoever issues the
// tokens.
type Service struct {
	cfg     config.AuthConfig
	nowFunc func() time.Time
	issuer  string
	parser  *jwt.Parser
}

// NewService creates a Service with dependencies.
func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		cfg:     cfg,
		nowFunc: time.Now,
		issuer:  "gostore",
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
	}
}

// IssueAccessToken signs a token identifying the given user.
func (s *Service) IssueAccessToken(userID string) (string, error) {
	now := s.nowFunc()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.AccessTokenSecret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies the signature and expiry and returns
// the embedded identity.
func (s *Service) ValidateAccessToken(token string) (UserClaims, error) {
	var claims jwt.RegisteredClaims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.AccessTokenSecret), nil
	})
	if err != nil || !parsed.Valid {
		return UserClaims{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return UserClaims{}, ErrInvalidToken
	}

	out := UserClaims{UserID: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
