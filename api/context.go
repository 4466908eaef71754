package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/auth"
)

// QueryTimeout bounds every database round trip made on behalf of a request
const QueryTimeout = 10 * time.Second

type userInfoKey struct{}

// WithQueryTimeout derives the context handlers pass to the database. A
// request deadline that is already closer than QueryTimeout still wins.
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

// WithUser stores the authenticated user on the context
func WithUser(ctx context.Context, user auth.Info) context.Context {
	return context.WithValue(ctx, userInfoKey{}, user)
}

// UserFromContext returns the authenticated user, or nil outside Middleware
func UserFromContext(ctx context.Context) auth.Info {
	user, _ := ctx.Value(userInfoKey{}).(auth.Info)
	return user
}

// UserID returns the id of the authenticated user making the request
func UserID(r *http.Request) string {
	user := UserFromContext(r.Context())
	if user == nil {
		return ""
	}
	return user.ID()
}
