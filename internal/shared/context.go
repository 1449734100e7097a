package shared

import (
	"context"
	"net/http"
	"strconv"

	"github.com/groenwerk/groenwerk/internal/platform/httpx"
)

type contextKey string

const eigenaarKey contextKey = "eigenaar"

// EigenaarHeader carries the acting user's identifier. Authentication itself
// lives in the gateway; this service only needs the resolved identity.
const EigenaarHeader = "X-Gebruiker-ID"

// EigenaarContext extracts the acting user from the request header and stores
// it on the context. Requests without a parseable identity pass through with
// no owner set; handlers that require one use VereisEigenaar.
func EigenaarContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(EigenaarHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				r = r.WithContext(context.WithValue(r.Context(), eigenaarKey, id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// EigenaarID returns the acting user's id, if any.
func EigenaarID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(eigenaarKey).(int64)
	return id, ok
}

// VereisEigenaar rejects requests that carry no acting user.
func VereisEigenaar(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := EigenaarID(r.Context()); !ok {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
