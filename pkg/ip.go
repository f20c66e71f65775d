package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the best guess of the caller's IP, preferring proxy headers set by nginx.
func ClientIP(r *http.Request) string {
	if realIp := r.Header.Get("X-Real-Ip"); realIp != "" {
		return realIp
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// first one is the original client
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
