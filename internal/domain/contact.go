package domain

import (
	"fmt"
	"strings"

	dErrors "rolodex/pkg/domain-errors"
)

// Contact is the aggregate root for one person in the address book.
//
// Invariants:
//   - Name is non-empty and acts as the contact's identity
//   - Every phone held by the contact parsed as a valid ten-digit number
//   - Phones keep insertion order; duplicates are allowed
//   - Birthday is either unset or a valid calendar date
//
// All mutating operations validate their input before touching state, so a
// failed call leaves the contact exactly as it was.
type Contact struct {
	Name     string
	Phones   []Phone
	Birthday Birthday
}

func NewContact(name string) (*Contact, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "contact name cannot be empty")
	}
	return &Contact{Name: name}, nil
}

// AddPhone parses number and appends it to the contact's phones.
// Adding a number the contact already has is allowed and stores it again.
func (c *Contact) AddPhone(number string) error {
	phone, err := ParsePhone(number)
	if err != nil {
		return err
	}
	c.Phones = append(c.Phones, phone)
	return nil
}

// RemovePhone deletes every stored phone equal to number. Removing a
// number the contact does not have is a no-op.
func (c *Contact) RemovePhone(number string) {
	kept := c.Phones[:0]
	for _, p := range c.Phones {
		if p.String() != number {
			kept = append(kept, p)
		}
	}
	c.Phones = kept
}

// EditPhone replaces the first stored phone equal to oldNumber with
// newNumber. The replacement is validated before the lookup, so an
// invalid newNumber never mutates the contact.
func (c *Contact) EditPhone(oldNumber, newNumber string) error {
	phone, err := ParsePhone(newNumber)
	if err != nil {
		return err
	}
	for i, p := range c.Phones {
		if p.String() == oldNumber {
			c.Phones[i] = phone
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "phone number not found")
}

// FindPhone returns the first stored phone equal to number.
func (c *Contact) FindPhone(number string) (Phone, bool) {
	for _, p := range c.Phones {
		if p.String() == number {
			return p, true
		}
	}
	return "", false
}

// AddBirthday parses date and sets it as the contact's birthday,
// replacing any previously set one.
func (c *Contact) AddBirthday(date string) error {
	birthday, err := ParseBirthday(date)
	if err != nil {
		return err
	}
	c.Birthday = birthday
	return nil
}

// PhoneNumbers returns the contact's phones joined by "; " in stored order.
func (c *Contact) PhoneNumbers() string {
	numbers := make([]string, len(c.Phones))
	for i, p := range c.Phones {
		numbers[i] = p.String()
	}
	return strings.Join(numbers, "; ")
}

// String renders the contact's one-line display form.
func (c *Contact) String() string {
	return fmt.Sprintf("Contact name: %s, phone: %s", c.Name, c.PhoneNumbers())
}
