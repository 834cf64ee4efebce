package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/interfaces/rest"
)

func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler := http.TimeoutHandler(
				next,
				timeout,
				rest.EmptyResponse(),
			)

			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
