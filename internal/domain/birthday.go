package domain

import (
	"time"

	dErrors "rolodex/pkg/domain-errors"
)

// BirthdayLayout is the only accepted birthday input format: zero-padded
// day, dot, zero-padded month, dot, four-digit year.
const BirthdayLayout = "02.01.2006"

// Birthday is a calendar date with no time or zone component.
// The zero value means "not set".
type Birthday struct {
	date time.Time
}

// ParseBirthday validates and returns a Birthday.
// time.Parse alone accepts unpadded fields ("1.6.2020"), so the parsed
// date is formatted back and compared to the input to enforce the exact
// DD.MM.YYYY shape. Impossible dates (31.02.2020) fail the parse itself.
func ParseBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil || t.Format(BirthdayLayout) != value {
		return Birthday{}, dErrors.New(dErrors.CodeValidation, "invalid birthday: use DD.MM.YYYY")
	}
	return Birthday{date: t}, nil
}

// String formats the birthday as DD.MM.YYYY. Parsing the result yields an
// equal Birthday.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// Date returns the birthday as a midnight-UTC time.
func (b Birthday) Date() time.Time {
	return b.date
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool {
	return b.date.IsZero()
}

// Next returns the first occurrence of the birthday's month and day on or
// after today. Clock and zone are discarded from today first, so only
// calendar dates are compared. A 29 February birthday lands on 1 March in
// non-leap years through time.Date normalization.
func (b Birthday) Next(today time.Time) time.Time {
	t := DateOf(today)
	occurrence := time.Date(t.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if occurrence.Before(t) {
		occurrence = time.Date(t.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occurrence
}

// DateOf truncates t to its calendar date at midnight UTC. All date
// arithmetic in this package runs on such values, which keeps day counts
// immune to zones and DST.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
