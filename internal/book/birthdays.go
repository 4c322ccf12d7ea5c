package book

import (
	"time"

	"rolodex/internal/domain"
)

// upcomingWindowDays is how far ahead, in days, the birthday reminder
// looks. Today counts as day zero.
const upcomingWindowDays = 7

// Greeting says when to congratulate one contact.
type Greeting struct {
	Name               string
	CongratulationDate time.Time
}

// UpcomingBirthdays returns a greeting for every contact whose next
// birthday falls within the upcoming window, in book order. Birthdays on
// a weekend are congratulated the following Monday, even when that pushes
// the congratulation past the window itself.
//
// today may carry any clock or zone; only its calendar date is used.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	day := domain.DateOf(today)

	var greetings []Greeting
	for _, c := range b.contacts {
		if c.Birthday.IsZero() {
			continue
		}
		next := c.Birthday.Next(day)
		if daysBetween(day, next) > upcomingWindowDays {
			continue
		}
		greetings = append(greetings, Greeting{
			Name:               c.Name,
			CongratulationDate: nextWorkday(next),
		})
	}
	return greetings
}

// daysBetween counts calendar days from a to b. Both must be midnight-UTC
// dates, which makes the division exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// nextWorkday shifts weekend dates to the following Monday and leaves
// weekdays untouched.
func nextWorkday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}
