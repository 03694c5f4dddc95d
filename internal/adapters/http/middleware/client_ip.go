// Package middleware provides the application's HTTP middlewares.
package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP derives the rate-limiting identifier from proxy headers, falling
// back to the socket address.
func ClientIP(r *http.Request) string {
	xForwardedFor := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xForwardedFor != "" {
		parts := strings.Split(xForwardedFor, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	if xRealIP != "" {
		return xRealIP
	}

	cfConnectingIP := strings.TrimSpace(r.Header.Get("CF-Connecting-IP"))
	if cfConnectingIP != "" {
		return cfConnectingIP
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		if addr := strings.TrimSpace(r.RemoteAddr); addr != "" {
			return addr
		}
		return "unknown"
	}

	return host
}
