package middleware

import "net/http"

// Cross-Origin-Resource-Policy values.
const (
	ResourcePolicySameOrigin  = "same-origin"
	ResourcePolicyCrossOrigin = "cross-origin"
)

// Security returns middleware that sets OWASP REST security headers on all responses.
//
// resourcePolicy is the Cross-Origin-Resource-Policy value. The API uses
// ResourcePolicyCrossOrigin because the frontend reads it from another origin;
// the frontend page itself uses ResourcePolicySameOrigin.
//
// Headers set:
//   - Cache-Control: no-store
//   - Content-Security-Policy: frame-ancestors 'none'
//   - Cross-Origin-Opener-Policy: same-origin
//   - Cross-Origin-Resource-Policy: resourcePolicy
//   - Permissions-Policy: disables browser features nothing here needs
//   - Referrer-Policy: strict-origin-when-cross-origin
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
func Security(resourcePolicy string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Cache-Control", "no-store")
			h.Set("Content-Security-Policy", "frame-ancestors 'none'")
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Resource-Policy", resourcePolicy)
			h.Set(
				"Permissions-Policy",
				"accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
			)
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	}
}
