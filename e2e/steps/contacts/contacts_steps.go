package contacts

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext is the slice of the suite context these steps need.
type TestContext interface {
	QueueInput(lines ...string)
	RunSession() error
	Output() string
}

// RegisterSteps registers contact-management step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &contactSteps{tc: tc}

	ctx.Step(`^an empty address book$`, steps.emptyAddressBook)
	ctx.Step(`^I enter the commands:$`, steps.enterCommands)
	ctx.Step(`^I queue the command "([^"]*)"$`, steps.queueCommand)
	ctx.Step(`^I queue adding contact "([^"]*)" with phone "([^"]*)"$`, steps.queueAddContact)
	ctx.Step(`^I run an assistant session$`, steps.runSession)
	ctx.Step(`^the output contains "([^"]*)"$`, steps.outputContains)
	ctx.Step(`^the output does not contain "([^"]*)"$`, steps.outputDoesNotContain)
}

type contactSteps struct {
	tc TestContext
}

func (s *contactSteps) emptyAddressBook() error {
	// Every scenario already starts with a fresh snapshot file.
	return nil
}

func (s *contactSteps) enterCommands(doc *godog.DocString) error {
	for _, line := range strings.Split(strings.TrimSpace(doc.Content), "\n") {
		s.tc.QueueInput(line)
	}
	return nil
}

func (s *contactSteps) queueCommand(command string) error {
	s.tc.QueueInput(command)
	return nil
}

func (s *contactSteps) queueAddContact(name, phone string) error {
	s.tc.QueueInput("add", name, phone)
	return nil
}

func (s *contactSteps) runSession() error {
	return s.tc.RunSession()
}

func (s *contactSteps) outputContains(text string) error {
	if !strings.Contains(s.tc.Output(), text) {
		return fmt.Errorf("output does not contain %q:\n%s", text, s.tc.Output())
	}
	return nil
}

func (s *contactSteps) outputDoesNotContain(text string) error {
	if strings.Contains(s.tc.Output(), text) {
		return fmt.Errorf("output unexpectedly contains %q:\n%s", text, s.tc.Output())
	}
	return nil
}
