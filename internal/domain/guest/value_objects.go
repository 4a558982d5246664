package guest

import (
	"regexp"
	"strings"
	"time"
)

var (
	nationalIDRegex = regexp.MustCompile(`^\d{12}$`)
	passportRegex   = regexp.MustCompile(`^[A-Z]\d{7}$`)
	phoneCharsRegex = regexp.MustCompile(`^(\+)?[0-9]+$`)
	phoneRegex      = regexp.MustCompile(`^(0[0-9]{9}|\+84[0-9]{9})$`)
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	MinBirthYear = 1900
	MinGuestAge  = 18
)

// NormalizeIDNumber strips all whitespace and upper-cases the input so that
// directory lookups match regardless of how the number was typed.
func NormalizeIDNumber(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// Identity is a format-validated identity document reference. The stored
// number is always normalized.
type Identity struct {
	idType IDType
	number string
}

func NewIdentity(idType IDType, number string) (Identity, error) {
	if !idType.IsValid() {
		return Identity{}, ErrInvalidIDType
	}

	normalized := NormalizeIDNumber(number)
	if normalized == "" {
		return Identity{}, ErrEmptyIDNumber
	}

	switch idType {
	case IDTypeNationalID:
		if !nationalIDRegex.MatchString(normalized) {
			return Identity{}, ErrInvalidNationalID
		}
	case IDTypePassport:
		if !passportRegex.MatchString(normalized) {
			return Identity{}, ErrInvalidPassport
		}
	}

	return Identity{idType: idType, number: normalized}, nil
}

func (i Identity) Type() IDType   { return i.idType }
func (i Identity) Number() string { return i.number }

// Matches reports whether a raw directory value refers to this identity
// after normalization.
func (i Identity) Matches(rawNumber string) bool {
	return i.number != "" && NormalizeIDNumber(rawNumber) == i.number
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, ErrEmptyPhone
	}
	if !phoneCharsRegex.MatchString(s) {
		return Phone{}, ErrPhoneNotNumeric
	}
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

// Email is optional on a guest profile; the empty string is valid.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, nil
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }
func (e Email) IsEmpty() bool { return e.value == "" }

type BirthDate struct {
	value time.Time
}

func NewBirthDate(value time.Time, now time.Time) (BirthDate, error) {
	if value.IsZero() {
		return BirthDate{}, ErrMissingBirthDate
	}
	if value.Year() < MinBirthYear || value.Year() > now.Year() {
		return BirthDate{}, ErrBirthYearOutOfRange
	}
	if AgeAt(value, now) < MinGuestAge {
		return BirthDate{}, ErrGuestUnderage
	}
	return BirthDate{value: value}, nil
}

func (b BirthDate) Value() time.Time { return b.value }

// AgeAt computes whole years between dob and now, counting the birthday
// itself as completed.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
