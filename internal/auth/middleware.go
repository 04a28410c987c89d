package auth

import (
	"context"
	"net/http"
)

type ctxUserKey struct{}

// WithUser returns ctx carrying c.
func WithUser(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, c)
}

// FromContext returns the authenticated user, or nil for guests.
func FromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(ctxUserKey{}).(*Claims)
	return c
}

// lookup resolves the request token to a user that still exists.
func (c Config) lookup(r *http.Request, users *Users) (*Claims, error) {
	tok := c.BearerOrCookie(r)
	if tok == "" {
		return nil, ErrInvalidToken
	}
	cl, err := c.Parse(tok)
	if err != nil {
		return nil, err
	}
	if _, err := users.ByID(r.Context(), cl.ID); err != nil {
		return nil, ErrInvalidToken
	}
	return &cl, nil
}

// RequireAuth enforces a valid JWT and injects the user into the request context.
func RequireAuth(c Config, users *Users) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c.BearerOrCookie(r) == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			cl, err := c.lookup(r, users)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), cl)))
		})
	}
}

// OptionalAuth decorates requests with the user when a valid JWT is present.
// It never 401s; used for routes where guests are allowed.
func OptionalAuth(c Config, users *Users) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cl, err := c.lookup(r, users); err == nil {
				r = r.WithContext(WithUser(r.Context(), cl))
			}
			next.ServeHTTP(w, r)
		})
	}
}
