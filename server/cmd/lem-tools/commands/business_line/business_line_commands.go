package business_line

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/cli"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands"
)

func init() {
	commands.RootCmd.AddCommand(businessLineRootCmd)
	businessLineRootCmd.AddCommand(businessLineCreateCmd)
}

var businessLineRootCmd = &cobra.Command{
	Use:   "business-line create",
	Short: "Perform operations on business lines in the Legal Entity Management API.",
}

var businessLineCreateCmd = &cobra.Command{
	Use:          "create legal-entity-id",
	Short:        "Creates the standard payment-processing business line for a legal entity and prints it as JSON.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := commands.MakeLegalEntityService()
		if err != nil {
			return err
		}
		businessLine, err := service.CreateBusinessLine(context.Background(), models.LegalEntityID(args[0]))
		if err != nil {
			return fmt.Errorf("error creating business line for legal entity %q: %w", args[0], err)
		}
		return cli.PrintJSON(os.Stdout, businessLine)
	},
}
