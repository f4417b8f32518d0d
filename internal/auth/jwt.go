// Package auth issues and checks the signed session tokens that tell the
// server who is looking at a project: the workspace owner or a guest who
// arrived through a share link.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/wedcontrol/internal/models"
)

// ErrInvalidToken is returned for tokens that fail signature or time checks.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Claims carries the session identity.
type Claims struct {
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	ProjectID string      `json:"project_id,omitempty"`
	jwt.RegisteredClaims
}

// Profile returns the identity carried by the claims.
func (c *Claims) Profile() models.Profile {
	return models.Profile{Name: c.Name, Role: c.Role}
}

// SessionManager signs and validates session tokens.
type SessionManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewSessionManager creates a manager signing with secretKey. Tokens stay
// valid for ttl.
func NewSessionManager(secretKey string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Generate signs a token for profile. projectID scopes guest sessions to the
// shared project and is empty for the owner.
func (m *SessionManager) Generate(profile models.Profile, projectID string) (string, error) {
	now := m.now()
	claims := &Claims{
		Name:      profile.Name,
		Role:      profile.Role,
		ProjectID: projectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims.
func (m *SessionManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
