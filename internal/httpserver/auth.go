// apps/go-solver/internal/httpserver/auth.go
//
// Bearer-token gate for expensive endpoints.
//   - SignToken mints an HS256 JWT for a subject (used by the `token` command).
//   - requireToken rejects requests without a valid "Authorization: Bearer" token.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned by SignToken when no signing secret is configured.
var ErrNoSecret = errors.New("httpserver: JWT secret not set")

type ctxSubjectKey struct{}

// SignToken creates an HS256 JWT for subject that expires after ttl.
func SignToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, ErrNoSecret
	}
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// parseToken validates tok and returns its subject.
func parseToken(secret, tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// requireToken enforces a valid bearer token and stores its subject in the
// request context. An empty secret disables the check.
func requireToken(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearer(r)
			if tok == "" {
				httpError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			sub, err := parseToken(secret, tok)
			if err != nil {
				httpError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// subject returns the token subject of an authenticated request, or "".
func subject(r *http.Request) string {
	s, _ := r.Context().Value(ctxSubjectKey{}).(string)
	return s
}
