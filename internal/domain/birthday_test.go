package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rolodex/pkg/domain-errors"
)

func TestParseBirthday_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"regular date", "24.03.2001", false},
		{"leap day in leap year", "29.02.2020", false},
		{"start of century", "01.01.1900", false},
		{"single digit fields padded", "05.09.1999", false},

		{"empty string", "", true},
		{"unpadded day and month", "1.6.2020", true},
		{"unpadded day only", "1.06.2020", true},
		{"impossible day", "31.02.2020", true},
		{"leap day in non-leap year", "29.02.2021", true},
		{"day zero", "00.01.2000", true},
		{"month zero", "15.00.2000", true},
		{"month thirteen", "15.13.2000", true},
		{"dashes instead of dots", "24-03-2001", true},
		{"iso order", "2001.03.24", true},
		{"two-digit year", "24.03.01", true},
		{"trailing garbage", "24.03.2001x", true},
		{"words", "yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBirthday(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, b.String(), "formatting must reproduce the input exactly")
			assert.False(t, b.IsZero())
		})
	}
}

func TestBirthday_ZeroValue(t *testing.T) {
	var b Birthday
	assert.True(t, b.IsZero())
}

func TestBirthday_Date(t *testing.T) {
	b, err := ParseBirthday("24.03.2001")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2001, time.March, 24, 0, 0, 0, 0, time.UTC), b.Date())
}

func TestBirthday_Next(t *testing.T) {
	parse := func(t *testing.T, s string) Birthday {
		t.Helper()
		b, err := ParseBirthday(s)
		require.NoError(t, err)
		return b
	}
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("upcoming this year", func(t *testing.T) {
		b := parse(t, "01.06.2020")
		assert.Equal(t, date(2025, time.June, 1), b.Next(date(2025, time.May, 30)))
	})

	t.Run("already passed rolls to next year", func(t *testing.T) {
		b := parse(t, "15.01.2000")
		assert.Equal(t, date(2026, time.January, 15), b.Next(date(2025, time.May, 30)))
	})

	t.Run("today counts as this year", func(t *testing.T) {
		b := parse(t, "30.05.1990")
		assert.Equal(t, date(2025, time.May, 30), b.Next(date(2025, time.May, 30)))
	})

	t.Run("clock and zone are ignored", func(t *testing.T) {
		b := parse(t, "01.06.2020")
		kyiv := time.FixedZone("EEST", 3*60*60)
		lateEvening := time.Date(2025, time.May, 30, 23, 59, 59, 0, kyiv)
		assert.Equal(t, date(2025, time.June, 1), b.Next(lateEvening))
	})

	t.Run("leap day in a leap year", func(t *testing.T) {
		b := parse(t, "29.02.2020")
		assert.Equal(t, date(2028, time.February, 29), b.Next(date(2028, time.January, 15)))
	})

	t.Run("leap day normalizes to march first otherwise", func(t *testing.T) {
		b := parse(t, "29.02.2020")
		assert.Equal(t, date(2025, time.March, 1), b.Next(date(2025, time.January, 15)))
	})
}

func TestDateOf(t *testing.T) {
	kyiv := time.FixedZone("EEST", 3*60*60)
	in := time.Date(2025, time.May, 30, 23, 59, 59, 123, kyiv)
	assert.Equal(t, time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC), DateOf(in))
}
