package server_test

import (
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/lemtest"
	"github.com/onboarding-platform/onboarding/server/api/rest/server"
	"github.com/onboarding-platform/onboarding/server/app"
	"github.com/onboarding-platform/onboarding/server/services/legal_entity"
)

// TestConfig returns a server config that talks to the fake Legal Entity Management API server.
func TestConfig(lemServer *lemtest.Server) *app.ServerConfig {
	return &app.ServerConfig{
		AppAPIConfig: server.AppAPIServerConfig{
			HTTPServerConfig: server.HTTPServerConfig{
				Address: "", // Test is expected to use httptest server which picks its own address
			},
		},
		LegalEntityConfig: legal_entity.LegalEntityServiceConfig{
			APIKey:       lemtest.TestAPIKey,
			Environment:  models.EnvironmentTest,
			ThemeID:      "ONBT-test",
			ErrorMapping: legal_entity.ErrorMappingCollapse,
		},
		LEMClientConfig: lemServer.ClientConfig(),
		LogLevels:       "*=error",
	}
}
