//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/server/api/lem/client"
	"github.com/onboarding-platform/onboarding/server/api/rest/server"
	"github.com/onboarding-platform/onboarding/server/services"
	"github.com/onboarding-platform/onboarding/server/services/legal_entity"
)

func New(config *ServerConfig) (*Server, func(), error) {
	panic(wire.Build(
		NewServer,

		// Services
		legal_entity.NewLegalEntityService,
		wire.Bind(new(services.LegalEntityService), new(*legal_entity.LegalEntityService)),
		client.MakeAPIClientFactory,

		// APIs
		server.NewSignupAPI,
		server.NewLegalEntityAPI,
		server.NewRootAPI,

		// HTTP Servers
		server.NewAppAPIServer,
		server.NewAppAPIRouter,
		server.RealHTTPServerFactory,

		logger.NewLogRegistry,
		logger.MakeLogrusLogFactoryStdOut,
		wire.FieldsOf(new(*ServerConfig), "AppAPIConfig", "PublicHost", "CORSAllowedOrigins", "LegalEntityConfig", "LEMClientConfig", "LogLevels"),
	))
}
