//go:build unit

package guest_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIDNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase with padding", input: "  a1234567 ", want: "A1234567"},
		{name: "interior whitespace", input: "0791 9701 2345", want: "079197012345"},
		{name: "already normalized", input: "A1234567", want: "A1234567"},
		{name: "empty", input: "", want: ""},
		{name: "tabs and newlines", input: "\tB7654321\n", want: "B7654321"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guest.NormalizeIDNumber(tc.input))
		})
	}
}

func TestNormalizeIDNumberIdempotent(t *testing.T) {
	inputs := []string{"  a1234567 ", "0791 9701 2345", "B 765 4321"}
	for _, in := range inputs {
		once := guest.NormalizeIDNumber(in)
		assert.Equal(t, once, guest.NormalizeIDNumber(once))
	}
}

func TestNewIdentity(t *testing.T) {
	cases := []struct {
		name   string
		idType guest.IDType
		number string
		errIs  error
	}{
		{name: "valid national id", idType: guest.IDTypeNationalID, number: "079197012345"},
		{name: "national id with spaces", idType: guest.IDTypeNationalID, number: "0791 9701 2345"},
		{name: "national id too short", idType: guest.IDTypeNationalID, number: "07919701234", errIs: guest.ErrInvalidNationalID},
		{name: "national id too long", idType: guest.IDTypeNationalID, number: "0791970123456", errIs: guest.ErrInvalidNationalID},
		{name: "national id with letters", idType: guest.IDTypeNationalID, number: "07919701234A", errIs: guest.ErrInvalidNationalID},
		{name: "valid passport", idType: guest.IDTypePassport, number: "C1234567"},
		{name: "passport lowercased input", idType: guest.IDTypePassport, number: "c1234567"},
		{name: "passport missing letter", idType: guest.IDTypePassport, number: "12345678", errIs: guest.ErrInvalidPassport},
		{name: "passport two letters", idType: guest.IDTypePassport, number: "CC123456", errIs: guest.ErrInvalidPassport},
		{name: "passport too many digits", idType: guest.IDTypePassport, number: "C12345678", errIs: guest.ErrInvalidPassport},
		{name: "empty number", idType: guest.IDTypePassport, number: "   ", errIs: guest.ErrEmptyIDNumber},
		{name: "unknown document type", idType: guest.IDType("driver-license"), number: "C1234567", errIs: guest.ErrInvalidIDType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := guest.NewIdentity(tc.idType, tc.number)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.idType, identity.Type())
			assert.Equal(t, guest.NormalizeIDNumber(tc.number), identity.Number())
		})
	}
}

func TestIdentityMatches(t *testing.T) {
	identity, err := guest.NewIdentity(guest.IDTypePassport, "A1234567")
	require.NoError(t, err)

	assert.True(t, identity.Matches("A1234567"))
	assert.True(t, identity.Matches("  a1234567 "))
	assert.True(t, identity.Matches("a 123 4567"))
	assert.False(t, identity.Matches("A1234568"))
	assert.False(t, identity.Matches(""))
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "local format", input: "0912345678"},
		{name: "international format", input: "+84912345678"},
		{name: "empty", input: "", errIs: guest.ErrEmptyPhone},
		{name: "letters rejected", input: "09123abc78", errIs: guest.ErrPhoneNotNumeric},
		{name: "too short", input: "091234567", errIs: guest.ErrInvalidPhone},
		{name: "too long", input: "09123456789", errIs: guest.ErrInvalidPhone},
		{name: "wrong prefix", input: "1912345678", errIs: guest.ErrInvalidPhone},
		{name: "plus in the middle", input: "091+345678", errIs: guest.ErrPhoneNotNumeric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := guest.NewPhone(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewEmail(t *testing.T) {
	t.Run("empty email is valid", func(t *testing.T) {
		email, err := guest.NewEmail("")
		require.NoError(t, err)
		assert.True(t, email.IsEmpty())
	})

	t.Run("valid email", func(t *testing.T) {
		email, err := guest.NewEmail("guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", email.Value())
	})

	t.Run("invalid formats", func(t *testing.T) {
		for _, input := range []string{"no-at-sign", "no@tld", "two words@example.com", "@example.com"} {
			_, err := guest.NewEmail(input)
			assert.ErrorIs(t, err, guest.ErrInvalidEmail, input)
		}
	})
}

func TestNewBirthDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		dob   time.Time
		errIs error
	}{
		{name: "adult", dob: time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "exactly 18 today", dob: time.Date(2007, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "18 tomorrow", dob: time.Date(2007, 6, 16, 0, 0, 0, 0, time.UTC), errIs: guest.ErrGuestUnderage},
		{name: "missing", dob: time.Time{}, errIs: guest.ErrMissingBirthDate},
		{name: "before 1900", dob: time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC), errIs: guest.ErrBirthYearOutOfRange},
		{name: "in the future", dob: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), errIs: guest.ErrBirthYearOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := guest.NewBirthDate(tc.dob, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 18, guest.AgeAt(time.Date(2007, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 17, guest.AgeAt(time.Date(2007, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 35, guest.AgeAt(time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC), now))
}
