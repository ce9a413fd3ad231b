package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const headerAllowOrigin = "Access-Control-Allow-Origin"

// CORS returns a middleware that lets browsers on any origin read responses.
// The go-chi/cors handler skips requests without an Origin header and methods
// outside AllowedMethods, so the wildcard is set up front for every response.
func CORS() func(http.Handler) http.Handler {
	handler := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
			"traceparent",
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
	return func(next http.Handler) http.Handler {
		wrapped := handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(headerAllowOrigin, "*")
			wrapped.ServeHTTP(w, r)
		})
	}
}
