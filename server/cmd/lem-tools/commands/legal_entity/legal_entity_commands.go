package legal_entity

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/cli"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands"
	"github.com/onboarding-platform/onboarding/server/services"
)

func init() {
	legalEntityCreateCmd.PersistentFlags().StringVar(
		&legalEntityCmdConfig.firstName,
		"first-name",
		"",
		"The first name of the individual or sole proprietor")
	legalEntityCreateCmd.PersistentFlags().StringVar(
		&legalEntityCmdConfig.lastName,
		"last-name",
		"",
		"The last name of the individual or sole proprietor")
	legalEntityCreateCmd.PersistentFlags().StringVar(
		&legalEntityCmdConfig.legalName,
		"legal-name",
		"",
		"The legal name of the organisation")
	legalEntityCreateCmd.PersistentFlags().StringVar(
		&legalEntityCmdConfig.countryCode,
		"country",
		"",
		"The two-letter ISO country code of the residential or registered address")

	commands.RootCmd.AddCommand(legalEntityRootCmd)
	legalEntityRootCmd.AddCommand(legalEntityGetCmd)
	legalEntityRootCmd.AddCommand(legalEntityCreateCmd)
}

var legalEntityCmdConfig = struct {
	firstName   string
	lastName    string
	legalName   string
	countryCode string
	service     services.LegalEntityService
}{}

var legalEntityRootCmd = &cobra.Command{
	Use:   "legal-entity get|create",
	Short: "Read or create legal entities in the Legal Entity Management API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		service, err := commands.MakeLegalEntityService()
		if err != nil {
			return err
		}
		legalEntityCmdConfig.service = service
		return nil
	},
}

var legalEntityGetCmd = &cobra.Command{
	Use:          "get legal-entity-id",
	Short:        "Reads the legal entity with the specified id and prints it as JSON.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		legalEntity, err := legalEntityCmdConfig.service.Get(context.Background(), models.LegalEntityID(args[0]))
		if err != nil {
			return fmt.Errorf("error reading legal entity %q: %w", args[0], err)
		}
		return cli.PrintJSON(os.Stdout, legalEntity)
	},
}

var legalEntityCreateCmd = &cobra.Command{
	Use:          "create individual|sole-proprietorship|organisation",
	Short:        "Creates a legal entity for a signup of the specified kind and prints it as JSON.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		signup, err := signupFromFlags(args[0])
		if err != nil {
			return err
		}
		legalEntity, err := legalEntityCmdConfig.service.Create(context.Background(), signup)
		if err != nil {
			return fmt.Errorf("error creating legal entity: %w", err)
		}
		return cli.PrintJSON(os.Stdout, legalEntity)
	},
}

func signupFromFlags(kind string) (models.Signup, error) {
	c := legalEntityCmdConfig
	if c.countryCode == "" {
		return nil, fmt.Errorf("error --country must be specified")
	}
	switch kind {
	case "individual", "sole-proprietorship":
		if c.firstName == "" || c.lastName == "" {
			return nil, fmt.Errorf("error --first-name and --last-name must be specified for a %s", kind)
		}
		if kind == "individual" {
			return &models.IndividualSignup{FirstName: c.firstName, LastName: c.lastName, CountryCode: c.countryCode}, nil
		}
		return &models.SoleProprietorshipSignup{FirstName: c.firstName, LastName: c.lastName, CountryCode: c.countryCode}, nil
	case "organisation":
		if c.legalName == "" {
			return nil, fmt.Errorf("error --legal-name must be specified for an organisation")
		}
		return &models.OrganisationSignup{LegalName: c.legalName, CountryCode: c.countryCode}, nil
	default:
		return nil, fmt.Errorf("error unknown signup kind %q (expected individual|sole-proprietorship|organisation)", kind)
	}
}
