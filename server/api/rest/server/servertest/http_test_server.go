package servertest

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/server/api/rest/server"
)

func HTTPTestServerFactory() server.HTTPServerFactory {
	return func(handler http.Handler, config server.HTTPServerConfig, log logger.Log) (server.APIServer, error) {
		return NewHTTPTestServer(handler, config, log)
	}
}

// HTTPTestServer is an HTTP test server that can serve onboarding API requests.
// The HTTPTestServer is created using the Go httptest package, and will run on a random port.
type HTTPTestServer struct {
	testServer *httptest.Server
	config     server.HTTPServerConfig
	log        logger.Log
}

func NewHTTPTestServer(
	handler http.Handler,
	config server.HTTPServerConfig,
	log logger.Log,
) (*HTTPTestServer, error) {
	return &HTTPTestServer{
		testServer: httptest.NewUnstartedServer(handler),
		config:     config,
		log:        log,
	}, nil
}

// Start starts listening on a random local port.
func (s *HTTPTestServer) Start() {
	s.testServer.Start()
	s.log.Infof("HTTP listening on URL %s", s.GetServerURL())
}

// Stop shuts down the test server, blocking until all outstanding requests have completed.
func (s *HTTPTestServer) Stop(ctx context.Context) error {
	s.testServer.Close()
	return nil
}

func (s *HTTPTestServer) GetServerURL() string {
	return s.testServer.URL
}

func (s *HTTPTestServer) GetHTTPServer() *http.Server {
	return s.testServer.Config
}
