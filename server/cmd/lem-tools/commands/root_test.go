package commands

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/onboarding-platform/onboarding/common/gerror"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/lemtest"
)

func TestMakeLegalEntityService(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("NoAPIKey", func(t *testing.T) {
		viper.Reset()
		_, err := MakeLegalEntityService()
		require.Error(t, err)
	})

	t.Run("InvalidEnvironment", func(t *testing.T) {
		viper.Reset()
		viper.Set("api_key", lemtest.TestAPIKey)
		viper.Set("environment", "staging")
		_, err := MakeLegalEntityService()
		require.Error(t, err)
	})

	t.Run("ReadsSettings", func(t *testing.T) {
		lem := lemtest.NewServer(lemtest.TestAPIKey)
		defer lem.Close()
		id := models.LegalEntityID("LE00000042")
		lem.AddLegalEntity(&models.LegalEntity{
			ID:   id,
			Type: models.LegalEntityTypeOrganization,
			Organization: &models.Organization{
				LegalName:         "Analytical Engines Ltd",
				RegisteredAddress: models.Address{Country: "GB"},
			},
		})

		viper.Reset()
		viper.Set("api_key", lemtest.TestAPIKey)
		viper.Set("environment", models.EnvironmentTest.String())
		viper.Set("endpoint", lem.URL)
		viper.Set("retry_max", 0)
		service, err := MakeLegalEntityService()
		require.NoError(t, err)

		legalEntity, err := service.Get(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, "Analytical Engines Ltd", legalEntity.DisplayName())

		_, err = service.Get(context.Background(), "LE-missing")
		require.Error(t, err)
		require.True(t, gerror.IsNotFound(err), "remote errors are preserved for the command line")
	})
}
