package domain

import (
	"github.com/asaskevich/govalidator"

	dErrors "rolodex/pkg/domain-errors"
)

// Phone is a contact phone number, valid at construction.
// This is a domain primitive that enforces validity at parse time.
type Phone string

// ParsePhone validates and returns a Phone.
// A valid number is exactly ten ASCII digits; nothing is normalized or
// stripped, the digits are stored as given.
func ParsePhone(number string) (Phone, error) {
	if !govalidator.StringLength(number, "10", "10") || !govalidator.IsNumeric(number) {
		return "", dErrors.New(dErrors.CodeValidation, "invalid phone number: must be exactly 10 digits")
	}
	return Phone(number), nil
}

// ValidPhone reports whether number would parse as a Phone.
func ValidPhone(number string) bool {
	_, err := ParsePhone(number)
	return err == nil
}

// String returns the digits exactly as they were parsed.
func (p Phone) String() string {
	return string(p)
}
