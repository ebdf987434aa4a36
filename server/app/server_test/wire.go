//go:build wireinject
// +build wireinject

package server_test

import (
	"github.com/google/wire"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/server/api/lem/client"
	rest_server "github.com/onboarding-platform/onboarding/server/api/rest/server"
	"github.com/onboarding-platform/onboarding/server/api/rest/server/servertest"
	"github.com/onboarding-platform/onboarding/server/app"
	"github.com/onboarding-platform/onboarding/server/services"
	"github.com/onboarding-platform/onboarding/server/services/legal_entity"
)

func New(config *app.ServerConfig) (*TestServer, func(), error) {
	panic(wire.Build(
		NewTestServer,

		// Services
		legal_entity.NewLegalEntityService,
		wire.Bind(new(services.LegalEntityService), new(*legal_entity.LegalEntityService)),
		client.MakeAPIClientFactory,

		// APIs
		rest_server.NewSignupAPI,
		rest_server.NewLegalEntityAPI,
		rest_server.NewRootAPI,

		// HTTP Servers
		rest_server.NewAppAPIServer,
		rest_server.NewAppAPIRouter,
		servertest.HTTPTestServerFactory,

		logger.NewLogRegistry,
		logger.MakeLogrusLogFactoryStdOut,
		wire.FieldsOf(new(*app.ServerConfig), "AppAPIConfig", "PublicHost", "CORSAllowedOrigins", "LegalEntityConfig", "LEMClientConfig", "LogLevels"),
	))
}
