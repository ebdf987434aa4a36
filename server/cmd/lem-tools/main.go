package main

import (
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands"
	_ "github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands/business_line"
	_ "github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands/legal_entity"
	_ "github.com/onboarding-platform/onboarding/server/cmd/lem-tools/commands/onboarding_link"
)

func main() {
	commands.Execute()
}
