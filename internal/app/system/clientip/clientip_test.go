package clientip

import (
	"net/http/httptest"
	"testing"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded single", "203.0.113.7", "", "10.0.0.1:5555", "203.0.113.7"},
		{"forwarded chain", " 203.0.113.7 , 10.0.0.2", "", "10.0.0.1:5555", "203.0.113.7"},
		{"forwarded empty first hop", " , 10.0.0.2", "198.51.100.4", "10.0.0.1:5555", "198.51.100.4"},
		{"real ip", "", "198.51.100.4", "10.0.0.1:5555", "198.51.100.4"},
		{"remote addr", "", "", "10.0.0.1:5555", "10.0.0.1"},
		{"remote addr without port", "", "", "10.0.0.1", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/hello", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			if got := FromRequest(req); got != tt.want {
				t.Errorf("FromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}
