package onboarding_link

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/cli"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands"
)

var onboardingLinkCmdConfig = struct {
	host string
}{}

func init() {
	onboardingLinkCmd.Flags().StringVar(
		&onboardingLinkCmdConfig.host,
		"host",
		"http://localhost:8080",
		"The base URL of the application the user is returned to after onboarding")

	commands.RootCmd.AddCommand(onboardingLinkCmd)
}

var onboardingLinkCmd = &cobra.Command{
	Use:          "onboarding-link legal-entity-id",
	Short:        "Generates a hosted onboarding link for a legal entity and prints it as JSON.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := commands.MakeLegalEntityService()
		if err != nil {
			return err
		}
		link, ok := service.GetOnboardingLink(context.Background(), models.LegalEntityID(args[0]), onboardingLinkCmdConfig.host)
		if !ok {
			return fmt.Errorf("error no onboarding link could be generated for legal entity %q", args[0])
		}
		return cli.PrintJSON(os.Stdout, link)
	},
}
