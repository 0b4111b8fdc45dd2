package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type InvalidTokenError struct {
	err error
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %v", e.err)
}

func (e *InvalidTokenError) Unwrap() error {
	return e.err
}

// Manager issues and checks HS256 access tokens carrying the user id as
// subject.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) CreateToken(id int64) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(id, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

func (m *Manager) GetIdFromToken(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	parser := &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}); err != nil {
		return 0, &InvalidTokenError{err: err}
	}

	if !claims.VerifyExpiresAt(m.now(), true) {
		return 0, &InvalidTokenError{err: errors.New("token expired")}
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, &InvalidTokenError{err: fmt.Errorf("subject %q: %w", claims.Subject, err)}
	}

	return id, nil
}
