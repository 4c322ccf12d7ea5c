package birthdays

import (
	"time"

	"github.com/cucumber/godog"
)

// TestContext is the slice of the suite context these steps need.
type TestContext interface {
	QueueInput(lines ...string)
}

// RegisterSteps registers birthday-related step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &birthdaySteps{tc: tc}

	ctx.Step(`^I queue a birthday for "([^"]*)" (\d+) days from now$`, steps.queueBirthdayDaysFromNow)
	ctx.Step(`^I queue a birthday for "([^"]*)" of "([^"]*)"$`, steps.queueBirthday)
}

type birthdaySteps struct {
	tc TestContext
}

func (s *birthdaySteps) queueBirthdayDaysFromNow(name string, days int) error {
	date := time.Now().AddDate(0, 0, days).Format("02.01.2006")
	s.tc.QueueInput("add-birthday", name, date)
	return nil
}

func (s *birthdaySteps) queueBirthday(name, date string) error {
	s.tc.QueueInput("add-birthday", name, date)
	return nil
}
