package legal_entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onboarding-platform/onboarding/common/models"
)

func setSignupFlags(t *testing.T, firstName, lastName, legalName, countryCode string) {
	saved := legalEntityCmdConfig
	t.Cleanup(func() { legalEntityCmdConfig = saved })
	legalEntityCmdConfig.firstName = firstName
	legalEntityCmdConfig.lastName = lastName
	legalEntityCmdConfig.legalName = legalName
	legalEntityCmdConfig.countryCode = countryCode
}

func TestSignupFromFlags(t *testing.T) {
	t.Run("Individual", func(t *testing.T) {
		setSignupFlags(t, "Ada", "Lovelace", "", "GB")
		signup, err := signupFromFlags("individual")
		require.NoError(t, err)
		require.Equal(t, &models.IndividualSignup{FirstName: "Ada", LastName: "Lovelace", CountryCode: "GB"}, signup)
	})

	t.Run("SoleProprietorship", func(t *testing.T) {
		setSignupFlags(t, "Ada", "Lovelace", "", "GB")
		signup, err := signupFromFlags("sole-proprietorship")
		require.NoError(t, err)
		require.Equal(t, &models.SoleProprietorshipSignup{FirstName: "Ada", LastName: "Lovelace", CountryCode: "GB"}, signup)
	})

	t.Run("Organisation", func(t *testing.T) {
		setSignupFlags(t, "", "", "Analytical Engines Ltd", "GB")
		signup, err := signupFromFlags("organisation")
		require.NoError(t, err)
		require.Equal(t, &models.OrganisationSignup{LegalName: "Analytical Engines Ltd", CountryCode: "GB"}, signup)
	})

	t.Run("MissingFlags", func(t *testing.T) {
		setSignupFlags(t, "Ada", "", "", "GB")
		_, err := signupFromFlags("individual")
		require.Error(t, err)

		setSignupFlags(t, "", "", "", "GB")
		_, err = signupFromFlags("organisation")
		require.Error(t, err)

		setSignupFlags(t, "", "", "Analytical Engines Ltd", "")
		_, err = signupFromFlags("organisation")
		require.Error(t, err)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		setSignupFlags(t, "Ada", "Lovelace", "", "GB")
		_, err := signupFromFlags("partnership")
		require.Error(t, err)
	})
}
