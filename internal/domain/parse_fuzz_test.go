//go:build go1.18

package domain

import (
	"testing"
)

// FuzzParsePhone tests that parsing never panics on arbitrary input and
// that accepted numbers round-trip unchanged.
func FuzzParsePhone(f *testing.F) {
	f.Add("")
	f.Add("1234567890")
	f.Add("0000000000")
	f.Add("123456789")
	f.Add("12345678901")
	f.Add("12345abcde")
	f.Add("+1234567890")
	f.Add("123456789٠")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		phone, err := ParsePhone(input)
		if err != nil {
			return
		}

		// Accepted numbers are stored verbatim
		if phone.String() != input {
			t.Errorf("accepted phone %q stored as %q", input, phone)
		}

		// Accepted numbers are exactly ten bytes of ASCII digits
		if len(input) != 10 {
			t.Errorf("accepted phone %q has length %d", input, len(input))
		}
		for i := 0; i < len(input); i++ {
			if input[i] < '0' || input[i] > '9' {
				t.Errorf("accepted phone %q contains non-digit byte %q", input, input[i])
			}
		}
	})
}

// FuzzParseBirthday tests that parsing never panics and that accepted
// dates survive a format/parse round trip.
func FuzzParseBirthday(f *testing.F) {
	f.Add("")
	f.Add("24.03.2001")
	f.Add("29.02.2020")
	f.Add("29.02.2021")
	f.Add("1.6.2020")
	f.Add("31.02.2020")
	f.Add("24-03-2001")
	f.Add("24.03.2001\x00")

	f.Fuzz(func(t *testing.T, input string) {
		b, err := ParseBirthday(input)
		if err != nil {
			return
		}

		// Formatting must reproduce the exact accepted input
		if b.String() != input {
			t.Errorf("accepted birthday %q formats as %q", input, b.String())
		}

		roundTrip, err2 := ParseBirthday(b.String())
		if err2 != nil {
			t.Errorf("accepted birthday %q failed round-trip: %v", input, err2)
		}
		if roundTrip != b {
			t.Error("round-trip changed birthday value")
		}
	})
}
