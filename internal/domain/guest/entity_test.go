//go:build unit

package guest_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestParams struct {
	fullName string
	phone    string
	email    string
	dob      time.Time
	idType   guest.IDType
	idNumber string
}

func validParams() guestParams {
	return guestParams{
		fullName: "Nguyen Van A",
		phone:    "0912345678",
		email:    "a.nguyen@example.com",
		dob:      time.Date(1992, 5, 20, 0, 0, 0, 0, time.UTC),
		idType:   guest.IDTypeNationalID,
		idNumber: "079192012345",
	}
}

func TestNewGuest(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		p := validParams()
		g, err := guest.NewGuest(p.fullName, p.phone, p.email, p.dob, p.idType, p.idNumber, now)
		require.NoError(t, err)
		require.NotNil(t, g)

		assert.Equal(t, "Nguyen Van A", g.FullName())
		assert.Equal(t, "0912345678", g.Phone().Value())
		assert.Equal(t, "a.nguyen@example.com", g.Email().Value())
		assert.Equal(t, "079192012345", g.Identity().Number())
	})

	t.Run("email is optional", func(t *testing.T) {
		p := validParams()
		g, err := guest.NewGuest(p.fullName, p.phone, "", p.dob, p.idType, p.idNumber, now)
		require.NoError(t, err)
		assert.True(t, g.Email().IsEmpty())
	})

	cases := []struct {
		name   string
		mutate func(*guestParams)
		errIs  error
	}{
		{
			name:   "empty full name",
			mutate: func(p *guestParams) { p.fullName = "   " },
			errIs:  guest.ErrEmptyFullName,
		},
		{
			name:   "invalid phone",
			mutate: func(p *guestParams) { p.phone = "12345" },
			errIs:  guest.ErrInvalidPhone,
		},
		{
			name:   "invalid email",
			mutate: func(p *guestParams) { p.email = "not-an-email" },
			errIs:  guest.ErrInvalidEmail,
		},
		{
			name:   "missing date of birth",
			mutate: func(p *guestParams) { p.dob = time.Time{} },
			errIs:  guest.ErrMissingBirthDate,
		},
		{
			name:   "underage guest",
			mutate: func(p *guestParams) { p.dob = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC) },
			errIs:  guest.ErrGuestUnderage,
		},
		{
			name:   "bad document number",
			mutate: func(p *guestParams) { p.idNumber = "123" },
			errIs:  guest.ErrInvalidNationalID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			_, err := guest.NewGuest(p.fullName, p.phone, p.email, p.dob, p.idType, p.idNumber, now)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
