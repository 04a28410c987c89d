// internal/auth/auth.go
//
// JWT issuing/parsing and auth cookies.
// Responsibilities:
//   - HS256 tokens carrying id/username with a configurable expiry.
//   - Auth cookie set/clear with production-aware Secure/SameSite.
//   - Token lookup from "Authorization: Bearer" or the auth cookie.
//   - Anonymous guest cookie so guest games have a stable owner.
//
// Environment variables (ConfigFromEnv):
//   JWT_SECRET        signing key (default "dev_secret_change_me")
//   JWT_EXPIRES_DAYS  token lifetime in days (default 14)
//   COOKIE_NAME       auth cookie name (default "decoder_token")
//   APP_ENV           "production" enables Secure + SameSite=None cookies

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// AnonCookieName holds the guest identifier.
const AnonCookieName = "decoder_anon"

// Config carries token and cookie settings.
type Config struct {
	Secret      []byte
	ExpiresDays int
	CookieName  string
	Production  bool
}

// ConfigFromEnv reads the auth settings from the environment.
func ConfigFromEnv() Config {
	days := 14
	if v := os.Getenv("JWT_EXPIRES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return Config{
		Secret:      []byte(getEnv("JWT_SECRET", "dev_secret_change_me")),
		ExpiresDays: days,
		CookieName:  getEnv("COOKIE_NAME", "decoder_token"),
		Production:  os.Getenv("APP_ENV") == "production",
	}
}

// Claims are the decoded token contents.
type Claims struct {
	ID       string
	Username string
}

// Sign creates an HS256 JWT with id/username; returns the token and its expiry.
func (c Config) Sign(id, username string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(time.Duration(c.ExpiresDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       id,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	})
	ss, err := t.SignedString(c.Secret)
	return ss, exp, err
}

// Parse validates tok and returns its claims.
func (c Config) Parse(tok string) (Claims, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return c.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return Claims{}, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	if id == "" || username == "" {
		return Claims{}, ErrInvalidToken
	}
	return Claims{ID: id, Username: username}, nil
}

func (c Config) sameSite() http.SameSite {
	if c.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// SetCookie writes the auth token cookie.
func (c Config) SetCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: c.sameSite(),
		Expires:  exp,
	})
}

// ClearCookie deletes the auth token cookie.
func (c Config) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: c.sameSite(),
		MaxAge:   -1,
	})
}

// BearerOrCookie extracts a bearer token from Authorization header or auth cookie.
func (c Config) BearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if ck, err := r.Cookie(c.CookieName); err == nil {
		return ck.Value
	}
	return ""
}

// EnsureAnonID returns the guest cookie value, setting a new one when absent.
func (c Config) EnsureAnonID(w http.ResponseWriter, r *http.Request) string {
	if ck, err := r.Cookie(AnonCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     AnonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: c.sameSite(),
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// NewID creates a 22-char URL-safe, crypto-random identifier (no padding).
func NewID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
