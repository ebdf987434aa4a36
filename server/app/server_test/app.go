package server_test

import (
	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/server/api/rest/server"
	"github.com/onboarding-platform/onboarding/server/services"
)

type TestServer struct {
	LegalEntityService services.LegalEntityService
	LogFactory         logger.LogFactory
	AppAPIServer       *server.AppAPIServer
}

func NewTestServer(
	legalEntityService services.LegalEntityService,
	logFactory logger.LogFactory,
	appAPIServer *server.AppAPIServer,
) *TestServer {
	return &TestServer{
		LegalEntityService: legalEntityService,
		LogFactory:         logFactory,
		AppAPIServer:       appAPIServer,
	}
}
