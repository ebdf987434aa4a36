package lemtest

import (
	"time"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/client"
)

// ClientConfig returns an API client config pointing at the fake server, with retries disabled.
func (s *Server) ClientConfig() client.APIClientConfig {
	config := client.DefaultAPIClientConfig(models.EnvironmentTest)
	config.Endpoint = s.URL
	config.RetryMax = 0
	config.RetryWaitMin = time.Millisecond
	config.RetryWaitMax = time.Millisecond * 10
	config.Timeout = time.Second * 10
	return config
}
