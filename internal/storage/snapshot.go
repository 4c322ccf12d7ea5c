package storage

import (
	"fmt"

	"rolodex/internal/book"
	"rolodex/internal/domain"
	dErrors "rolodex/pkg/domain-errors"
)

// contactRecord is the serialized form of one contact. An array of records
// is the snapshot; array order is book order.
type contactRecord struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

func snapshotOf(b *book.Book) []contactRecord {
	records := make([]contactRecord, 0, b.Len())
	for _, c := range b.Contacts() {
		rec := contactRecord{Name: c.Name, Phones: make([]string, 0, len(c.Phones))}
		for _, p := range c.Phones {
			rec.Phones = append(rec.Phones, p.String())
		}
		if !c.Birthday.IsZero() {
			rec.Birthday = c.Birthday.String()
		}
		records = append(records, rec)
	}
	return records
}

// restore rebuilds a book from records, running every field through its
// domain constructor. A snapshot edited or produced outside this program
// cannot smuggle invalid state past the domain.
func restore(records []contactRecord) (*book.Book, error) {
	b := book.New()
	for _, rec := range records {
		contact, err := restoreContact(rec)
		if err != nil {
			return nil, err
		}
		b.Add(contact)
	}
	return b, nil
}

func restoreContact(rec contactRecord) (*domain.Contact, error) {
	contact, err := domain.NewContact(rec.Name)
	if err != nil {
		return nil, invalidRecord(rec, err)
	}
	for _, number := range rec.Phones {
		if err := contact.AddPhone(number); err != nil {
			return nil, invalidRecord(rec, err)
		}
	}
	if rec.Birthday != "" {
		if err := contact.AddBirthday(rec.Birthday); err != nil {
			return nil, invalidRecord(rec, err)
		}
	}
	return contact, nil
}

func invalidRecord(rec contactRecord, err error) error {
	return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("snapshot record %q is invalid", rec.Name))
}
