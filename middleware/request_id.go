package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/godruoyi/go-snowflake"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDHeaderMiddleware propagates the caller's request id or assigns a
// snowflake one, and echoes it back in the response.
func RequestIDHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = strconv.FormatUint(snowflake.ID(), 10)
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
