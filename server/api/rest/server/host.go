package server

import (
	"net/http"
	"strings"
)

// PublicHost is the scheme and host users reach the web application on, e.g. "https://app.example".
// When empty it is derived from each request.
type PublicHost string

func (h PublicHost) String() string {
	return string(h)
}

// requestBaseURL returns the scheme and host the request was addressed to, honouring
// X-Forwarded-Proto and X-Forwarded-Host when running behind a proxy.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return scheme + "://" + host
}

// publicBaseURL returns the configured public host, or the request's base URL if none is configured.
func publicBaseURL(publicHost PublicHost, r *http.Request) string {
	if publicHost != "" {
		return strings.TrimRight(publicHost.String(), "/")
	}
	return requestBaseURL(r)
}
