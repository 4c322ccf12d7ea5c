package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	dErrors "rolodex/pkg/domain-errors"
)

// command binds a REPL verb to its handler and its help line.
type command struct {
	name        string
	description string
	run         func(*Handler) (string, error)
}

// commands lists every dispatchable verb in help order. close and exit
// terminate the loop itself, so they are documented separately at the end
// of the help output.
func commands() []command {
	return []command{
		{"add", "Add a new contact", (*Handler).add},
		{"change", "Change an existing contact's phone", (*Handler).change},
		{"phone", "Show phone number of a contact", (*Handler).phone},
		{"all", "Show all contacts", (*Handler).all},
		{"add-birthday", "Add birthday to a contact", (*Handler).addBirthday},
		{"show-birthday", "Show birthday of a contact", (*Handler).showBirthday},
		{"birthdays", "Show upcoming birthdays", (*Handler).birthdays},
		{"remove-phone", "Remove a phone from a contact", (*Handler).removePhone},
		{"delete", "Delete a contact", (*Handler).deleteContact},
		{"hello", "Greet the bot", (*Handler).hello},
		{"help", "Show available commands", (*Handler).help},
	}
}

func (h *Handler) help() (string, error) {
	lines := []string{"Available commands:"}
	for _, cmd := range commands() {
		lines = append(lines, fmt.Sprintf("- %s: %s", cmd.name, cmd.description))
	}
	lines = append(lines, "- close or exit: Exit the program")
	return strings.Join(lines, "\n"), nil
}

// Run drives the prompt loop until the user exits, input ends, or ctx is
// canceled. Command words are trimmed and lower-cased; everything after
// that is the handlers' business.
func (h *Handler) Run(ctx context.Context) error {
	byName := make(map[string]func(*Handler) (string, error))
	for _, cmd := range commands() {
		byName[cmd.name] = cmd.run
	}

	h.console.Print("Welcome to the assistant bot!")
	for {
		select {
		case <-ctx.Done():
			h.console.Print("Good bye!")
			return nil
		default:
		}

		line, err := h.console.ReadLine("Enter a command: ")
		if err != nil {
			// End of input behaves like exit so a piped session still
			// finishes with a saved book.
			h.console.Print("Good bye!")
			return nil
		}

		verb := strings.ToLower(strings.TrimSpace(line))
		if verb == "close" || verb == "exit" {
			h.console.Print("Good bye!")
			return nil
		}

		run, ok := byName[verb]
		if !ok {
			h.console.Print("Invalid command.")
			continue
		}

		out, err := run(h)
		if err != nil {
			if errors.Is(err, io.EOF) {
				h.console.Print("Good bye!")
				return nil
			}
			h.console.PrintError(h.errorMessage(err))
			continue
		}
		if out != "" {
			h.console.Print(out)
		}
		h.log.Debug("command handled", zap.String("command", verb))
	}
}

// errorMessage centralizes error translation for the terminal. Keeping it
// here ensures every handler's failures read the same way. Expected
// failures carry a user-ready message; anything else is logged in full
// and replaced with a generic line.
func (h *Handler) errorMessage(err error) string {
	if dErrors.HasCode(err, dErrors.CodeValidation) ||
		dErrors.HasCode(err, dErrors.CodeNotFound) ||
		dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.MessageOf(err)
	}
	h.log.Error("command failed", zap.Error(err))
	return "An error occurred. Please try again."
}
