package guest

import (
	"strings"
	"time"
)

// Guest is a profile about to be registered in the external guest directory.
// Registered guests are referenced by id only; this entity exists to validate
// the creation path when identity resolution finds no account.
type Guest struct {
	fullName  string
	phone     Phone
	email     Email
	birthDate BirthDate
	identity  Identity
}

func NewGuest(fullName, phone, email string, dob time.Time, idType IDType, idNumber string, now time.Time) (*Guest, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}

	phoneVO, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	birthDateVO, err := NewBirthDate(dob, now)
	if err != nil {
		return nil, err
	}

	identity, err := NewIdentity(idType, idNumber)
	if err != nil {
		return nil, err
	}

	return &Guest{
		fullName:  fullName,
		phone:     phoneVO,
		email:     emailVO,
		birthDate: birthDateVO,
		identity:  identity,
	}, nil
}

func (g *Guest) FullName() string     { return g.fullName }
func (g *Guest) Phone() Phone         { return g.phone }
func (g *Guest) Email() Email         { return g.email }
func (g *Guest) BirthDate() BirthDate { return g.birthDate }
func (g *Guest) Identity() Identity   { return g.identity }
