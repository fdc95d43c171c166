// Package token issues and verifies the HS256 session tokens handed out at
// login.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session expired, please log in again",
		http.StatusUnauthorized,
	)
)

type Claims struct {
	SubjectID uint   `json:"subject_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of m that reads the time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) Issue(sub contextutil.Subject) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)
	claims := Claims{
		SubjectID: sub.ID,
		Role:      sub.Role,
		Name:      sub.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.Role + ":" + strconv.FormatUint(uint64(sub.ID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *Manager) Parse(raw string) (contextutil.Subject, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return contextutil.Subject{}, ErrTokenExpired
		}
		return contextutil.Subject{}, ErrInvalidToken
	}

	if claims.SubjectID == 0 || claims.Role == "" {
		return contextutil.Subject{}, ErrInvalidToken
	}
	return contextutil.Subject{ID: claims.SubjectID, Role: claims.Role, Name: claims.Name}, nil
}
