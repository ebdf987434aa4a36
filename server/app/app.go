package app

import (
	"github.com/onboarding-platform/onboarding/server/api/rest/server"
	"github.com/onboarding-platform/onboarding/server/services"
)

type Server struct {
	LegalEntityService services.LegalEntityService
	AppAPIServer       *server.AppAPIServer
}

func NewServer(
	legalEntityService services.LegalEntityService,
	appAPIServer *server.AppAPIServer,
) *Server {
	return &Server{
		LegalEntityService: legalEntityService,
		AppAPIServer:       appAPIServer,
	}
}
