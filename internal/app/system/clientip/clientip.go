// internal/app/system/clientip/clientip.go
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest extracts the client IP address from the request.
// It honours X-Forwarded-For (first hop) and X-Real-IP before falling back
// to RemoteAddr with the port stripped.
func FromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return host
}
