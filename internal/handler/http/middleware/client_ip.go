package middleware

import (
	"net"
	"net/http"

	"github.com/codezenith/hrms-backend-go/internal/domain/audit"
)

// ClientIP records the caller's address for audit entries. Run it after
// chi's RealIP so proxy headers are already applied to RemoteAddr.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		next.ServeHTTP(w, r.WithContext(audit.WithIPAddress(r.Context(), ip)))
	})
}
