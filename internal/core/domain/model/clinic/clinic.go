// Package clinic provides the Clinic aggregate. Clinics place dose
// orders and receive status emails at their registered address.
package clinic

import (
	"errors"

	"radiopharm/internal/pkg/errs"
)

var (
	// ErrClinicIsNotConstructed is returned when a Clinic instance was not
	// created through NewClinic or RestoreClinic.
	ErrClinicIsNotConstructed = errors.New("Clinic must be created via NewClinic or RestoreClinic")

	// ErrClinicIDAlreadyAssigned is returned when AssignID is called on a
	// clinic that already carries a persistent identity.
	ErrClinicIDAlreadyAssigned = errors.New("clinic id is already assigned")
)

// Clinic is the aggregate root for an ordering clinic.
type Clinic struct {
	id    int64
	name  string
	email string

	isConstructed bool
}

// NewClinic creates a Clinic with the given name and notification email.
func NewClinic(name, email string) (*Clinic, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("clinic name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("clinic email")
	}

	return &Clinic{
		name:          name,
		email:         email,
		isConstructed: true,
	}, nil
}

// RestoreClinic reconstructs a Clinic from persistence.
func RestoreClinic(id int64, name, email string) (*Clinic, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("clinic id")
	}

	c, err := NewClinic(name, email)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Clinic was created through a constructor.
func (c *Clinic) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClinicIsNotConstructed
	}
	return nil
}

// ID returns the clinic's persistent identity, or 0 before first persistence.
func (c *Clinic) ID() int64 {
	return c.id
}

// Name returns the clinic's display name.
func (c *Clinic) Name() string {
	return c.name
}

// Email returns the address status emails are sent to.
func (c *Clinic) Email() string {
	return c.email
}

// AssignID sets the store-assigned identity. It may be called once,
// by the repository, after the initial insert.
func (c *Clinic) AssignID(id int64) error {
	if c.id != 0 {
		return ErrClinicIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("clinic id")
	}

	c.id = id
	return nil
}
