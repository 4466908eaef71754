package api

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error": "Request timeout", "message": "The request took too long to process"}`

// TimeoutMiddleware adds request timeout to prevent long-running requests.
// The handler's context is cancelled at the deadline and the client gets a
// 503 with a JSON body. A non-positive timeout disables the middleware.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}
