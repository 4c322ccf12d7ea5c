package e2e

import (
	"github.com/cucumber/godog"

	"rolodex/e2e/steps/birthdays"
	"rolodex/e2e/steps/contacts"
)

// RegisterSteps registers all step definitions from the per-area packages.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	contacts.RegisterSteps(ctx, tc)
	birthdays.RegisterSteps(ctx, tc)
}
