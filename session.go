package sdeprep

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionCookie   = "sdeprep_session"
	sessionLifetime = 30 * 24 * time.Hour
)

// sessionManager issues and verifies the signed session cookie carrying the
// user id. Cookies are HMAC signed with the secret from the config, so a
// restart with the same home directory keeps sessions valid.
type sessionManager struct {
	secret []byte
}

func newSessionManager(secret string) *sessionManager {
	return &sessionManager{secret: []byte(secret)}
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Issue returns a session cookie for the given user.
func (manager *sessionManager) Issue(userID uuid.UUID) (*http.Cookie, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(manager.secret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	return &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(sessionLifetime),
	}, nil
}

// Verify extracts the user id from the request's session cookie.
func (manager *sessionManager) Verify(req *http.Request) (uuid.UUID, error) {
	cookie, err := req.Cookie(sessionCookie)
	if err != nil {
		return uuid.Nil, fmt.Errorf("reading session cookie: %w", err)
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return manager.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing session token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing session subject: %w", err)
	}
	return userID, nil
}
