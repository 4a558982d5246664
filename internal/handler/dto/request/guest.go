package request

import (
	"time"

	"hotel-front-desk/internal/domain/guest"
)

type FindGuestQuery struct {
	IDType   string `form:"idType" binding:"required"`
	IDNumber string `form:"idNumber" binding:"required"`
}

type CreateGuestRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Dob      string `json:"dob" binding:"required"`
	IDType   string `json:"idType" binding:"required"`
	IDNumber string `json:"idNumber" binding:"required"`
}

// ToDomain validates the profile against directory rules. Dob arrives as a
// date-only string from the form.
func (r CreateGuestRequest) ToDomain(now time.Time) (*guest.Guest, error) {
	dob, err := time.Parse("2006-01-02", r.Dob)
	if err != nil {
		return nil, guest.ErrMissingBirthDate
	}
	return guest.NewGuest(r.FullName, r.Phone, r.Email, dob, guest.IDType(r.IDType), r.IDNumber, now)
}
