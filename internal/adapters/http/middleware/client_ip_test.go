package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for wins",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.4"},
			remoteAddr: "192.0.2.1:5000",
			want:       "203.0.113.7",
		},
		{
			name:       "first hop of a forwarded chain",
			headers:    map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1, 10.0.0.2"},
			remoteAddr: "192.0.2.1:5000",
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip before cloudflare",
			headers:    map[string]string{"X-Real-IP": "198.51.100.4", "CF-Connecting-IP": "203.0.113.7"},
			remoteAddr: "192.0.2.1:5000",
			want:       "198.51.100.4",
		},
		{
			name:       "cloudflare header",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.7"},
			remoteAddr: "192.0.2.1:5000",
			want:       "203.0.113.7",
		},
		{
			name:       "socket address fallback",
			remoteAddr: "192.0.2.1:5000",
			want:       "192.0.2.1",
		},
		{
			name:       "socket address without port",
			remoteAddr: "192.0.2.1",
			want:       "192.0.2.1",
		},
		{
			name: "nothing available",
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/contact", nil)
			req.RemoteAddr = tt.remoteAddr
			for name, value := range tt.headers {
				req.Header.Set(name, value)
			}

			if got := ClientIP(req); got != tt.want {
				t.Fatalf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
