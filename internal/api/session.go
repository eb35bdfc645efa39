/**
 * @description
 * Session middleware for the web shell. Sessions are issued by the external
 * auth subsystem as HMAC-signed JWTs carried in a cookie (or a bearer
 * header for programmatic callers); this service only reads them. A missing
 * or invalid token is not an error here: the request simply proceeds
 * without a session and the post-auth router sends the user to sign-in.
 *
 * @dependencies
 * - context, net/http, strings: Standard Go libraries.
 * - github.com/golang-jwt/jwt/v5: JWT parsing and HMAC validation.
 */

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VII-77/Levqor-9.0-sub003/internal/domain"
)

// sessionContextKey is a custom type for the context key to avoid collisions.
type sessionContextKey string

const sessionKey sessionContextKey = "levqorSession"

// SessionMiddleware creates a middleware that extracts and validates the
// session token, attaching the decoded Session to the request context when
// valid. With an empty secret every request is treated as unauthenticated.
func SessionMiddleware(secret, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := sessionTokenFromRequest(r, cookieName)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := parseSessionToken(tokenString, secret)
			if err != nil {
				// Invalid tokens degrade to "no session" rather than 401;
				// the post-auth router owns the redirect to sign-in.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionTokenFromRequest pulls the raw token from the session cookie or,
// failing that, from a bearer Authorization header.
func sessionTokenFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}
	return ""
}

// parseSessionToken validates the HMAC signature and extracts the session
// claims. The email claim is mandatory; name is optional.
func parseSessionToken(tokenString, secret string) (*domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("email claim missing")
	}

	session := &domain.Session{Email: email}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	return session, nil
}

// SessionFromContext retrieves the authenticated session from the request
// context. Handlers should use this to decide between the signed-in and
// anonymous paths.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok && session != nil
}
