package api

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
	"github.com/golang-jwt/jwt/v5"
)

// authorizer authenticates admin requests. The primary mechanism is the
// form-supplied username/password pair checked against the store; a bearer
// token previously issued by /admin/test-auth is accepted as an
// alternative so clients don't have to resend the password on every call.
type authorizer struct {
	admins        store.AdminStore
	jwtSecret     string
	tokenDuration time.Duration
}

func newAuthorizer(admins store.AdminStore, jwtSecret string, tokenDuration time.Duration) *authorizer {
	return &authorizer{admins: admins, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

// authorize reports whether the request carries valid admin credentials.
// Any parse or lookup failure counts as unauthorized.
func (a *authorizer) authorize(r *http.Request) bool {
	if tokenString := bearerToken(r); tokenString != "" {
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(a.jwtSecret), nil
		})
		if err == nil && token.Valid {
			return true
		}
		logger.Info("rejected bearer token", slog.Any("err", err))
		return false
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" {
		return false
	}
	ok, err := a.admins.VerifyAdmin(r.Context(), username, password)
	if err != nil {
		logger.Error("verify admin credentials", slog.Any("err", err))
		return false
	}
	return ok
}

// issueToken signs a short-lived HS256 token for an authenticated admin.
func (a *authorizer) issueToken(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(a.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(a.jwtSecret))
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	var tokenString string
	if _, err := fmt.Sscanf(authHeader, "Bearer %s", &tokenString); err != nil {
		logger.Error("failed to parse Authorization header", slog.Any("err", err))
		return ""
	}
	return tokenString
}
