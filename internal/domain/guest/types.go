package guest

import "errors"

var (
	ErrInvalidIDType       = errors.New("invalid identity document type")
	ErrEmptyIDNumber       = errors.New("identity document number is required")
	ErrInvalidNationalID   = errors.New("national id must be exactly 12 digits")
	ErrInvalidPassport     = errors.New("passport must be 1 uppercase letter followed by 7 digits")
	ErrEmptyFullName       = errors.New("full name is required")
	ErrEmptyPhone          = errors.New("phone number is required")
	ErrPhoneNotNumeric     = errors.New("phone number may only contain digits")
	ErrInvalidPhone        = errors.New("phone number format is invalid")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrMissingBirthDate    = errors.New("date of birth is required")
	ErrBirthYearOutOfRange = errors.New("birth year is out of range")
	ErrGuestUnderage       = errors.New("guest must be at least 18 years old")
)

// IDType is the kind of identity document a guest registers with.
type IDType string

const (
	IDTypeNationalID IDType = "national-id"
	IDTypePassport   IDType = "passport"
)

func (t IDType) String() string {
	return string(t)
}

func (t IDType) IsValid() bool {
	switch t {
	case IDTypeNationalID, IDTypePassport:
		return true
	default:
		return false
	}
}

func NewIDType(s string) (IDType, error) {
	t := IDType(s)
	if !t.IsValid() {
		return "", ErrInvalidIDType
	}
	return t, nil
}
