package cli

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"rolodex/internal/book"
	"rolodex/internal/domain"
	dErrors "rolodex/pkg/domain-errors"
)

// Handler runs one assistant command per call. It should delegate to the
// book and domain packages without embedding business logic so terminal
// concerns remain isolated.
//
// Every handler returns the success message to print; failures come back
// as coded errors and are rendered centrally by the REPL loop.
type Handler struct {
	book    *book.Book
	console Console
	log     *zap.Logger
	now     func() time.Time
}

func NewHandler(b *book.Book, console Console, log *zap.Logger) *Handler {
	return &Handler{
		book:    b,
		console: console,
		log:     log,
		now:     time.Now,
	}
}

func (h *Handler) hello() (string, error) {
	return "How can I help you?", nil
}

// add appends a phone to an existing contact, or creates the contact when
// the name is new. The policy of "existing contact gains a phone" lives
// here: the book itself only knows how to insert and replace.
func (h *Handler) add() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}
	number, err := h.console.ReadLine("Enter phone: ")
	if err != nil {
		return "", err
	}

	if contact, ok := h.book.Find(name); ok {
		if err := contact.AddPhone(number); err != nil {
			return "", err
		}
		return "Phone added.", nil
	}

	contact, err := domain.NewContact(name)
	if err != nil {
		return "", err
	}
	// An invalid phone must abort before the contact enters the book.
	if err := contact.AddPhone(number); err != nil {
		return "", err
	}
	h.book.Add(contact)
	return "Contact added.", nil
}

func (h *Handler) change() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}
	oldNumber, err := h.console.ReadLine("Enter old phone: ")
	if err != nil {
		return "", err
	}
	newNumber, err := h.console.ReadLine("Enter new phone: ")
	if err != nil {
		return "", err
	}

	contact, ok := h.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	if err := contact.EditPhone(oldNumber, newNumber); err != nil {
		return "", err
	}
	return "Phone updated.", nil
}

func (h *Handler) phone() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}

	contact, ok := h.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	return contact.PhoneNumbers(), nil
}

func (h *Handler) all() (string, error) {
	lines := make([]string, 0, h.book.Len())
	for _, contact := range h.book.Contacts() {
		lines = append(lines, contact.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) addBirthday() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}
	birthday, err := h.console.ReadLine("Enter birthday (DD.MM.YYYY): ")
	if err != nil {
		return "", err
	}

	contact, ok := h.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	if err := contact.AddBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (h *Handler) showBirthday() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}

	contact, ok := h.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	if contact.Birthday.IsZero() {
		return fmt.Sprintf("%s has no birthday set.", name), nil
	}
	return fmt.Sprintf("%s's birthday: %s", name, contact.Birthday), nil
}

func (h *Handler) birthdays() (string, error) {
	greetings := h.book.UpcomingBirthdays(h.now())
	if len(greetings) == 0 {
		return "No upcoming birthdays in the next week.", nil
	}

	lines := make([]string, 0, len(greetings))
	for _, g := range greetings {
		lines = append(lines, fmt.Sprintf("%s: %s", g.Name, g.CongratulationDate.Format("2006.01.02")))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) deleteContact() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}

	if _, ok := h.book.Find(name); !ok {
		return "", contactNotFound(name)
	}
	h.book.Delete(name)
	return "Contact deleted.", nil
}

// removePhone drops every copy of the entered number. A number the
// contact does not have is accepted silently, mirroring the domain's
// no-op semantics.
func (h *Handler) removePhone() (string, error) {
	name, err := h.console.ReadLine("Enter name: ")
	if err != nil {
		return "", err
	}
	number, err := h.console.ReadLine("Enter phone: ")
	if err != nil {
		return "", err
	}

	contact, ok := h.book.Find(name)
	if !ok {
		return "", contactNotFound(name)
	}
	contact.RemovePhone(number)
	return "Phone removed.", nil
}

func contactNotFound(name string) error {
	return dErrors.Newf(dErrors.CodeNotFound, "Contact '%s' not found.", name)
}
