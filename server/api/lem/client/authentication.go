package client

import (
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
)

const apiKeyHeader = "X-API-Key"

// Authenticator enables the API client to make authenticated API requests
// using pluggable authentication methods.
type Authenticator interface {
	AuthenticateRequest(h http.Header) (http.Header, error)
	// AuthenticateClient is called after an HTTP client is set up for the API. Allows the authenticator to set
	// properties (e.g. certificates or CAs) for authenticating the TLS connection.
	AuthenticateClient(client *retryablehttp.Client) (*retryablehttp.Client, error)
}

// APIKeyAuthenticator authenticates API client requests using an API key header.
type APIKeyAuthenticator struct {
	apiKey models.APIKey
	logger.Log
}

func NewAPIKeyAuthenticator(apiKey models.APIKey, logFactory logger.LogFactory) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{
		apiKey: apiKey,
		Log:    logFactory("APIKeyAuthenticator"),
	}
}

func (a *APIKeyAuthenticator) AuthenticateClient(client *retryablehttp.Client) (*retryablehttp.Client, error) {
	return client, nil
}

func (a *APIKeyAuthenticator) AuthenticateRequest(h http.Header) (http.Header, error) {
	if a.apiKey == "" {
		a.Warn("No API key configured; request will be sent unauthenticated")
		return h, nil
	}
	h.Set(apiKeyHeader, a.apiKey.Value())
	return h, nil
}
