// Package reactor provides the Reactor aggregate, the production unit
// that owns reactor cycles. Reactors are referenced by name when orders
// are placed and by id from their cycles.
package reactor

import (
	"errors"

	"radiopharm/internal/pkg/errs"
)

var (
	// ErrReactorIsNotConstructed is returned when a Reactor instance was not
	// created through NewReactor or RestoreReactor.
	ErrReactorIsNotConstructed = errors.New("Reactor must be created via NewReactor or RestoreReactor")

	// ErrReactorIDAlreadyAssigned is returned when AssignID is called on a
	// reactor that already carries a persistent identity.
	ErrReactorIDAlreadyAssigned = errors.New("reactor id is already assigned")
)

// Reactor is the aggregate root for a production unit. Identity is a
// 64-bit integer assigned by the store on first persistence; the name
// is unique and used by order placement to resolve the reactor.
type Reactor struct {
	id   int64
	name string

	isConstructed bool
}

// NewReactor creates a Reactor with the given unique name. The id is
// assigned by the repository when the reactor is first persisted.
func NewReactor(name string) (*Reactor, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("reactor name")
	}

	return &Reactor{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreReactor reconstructs a Reactor from persistence.
func RestoreReactor(id int64, name string) (*Reactor, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("reactor id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("reactor name")
	}

	return &Reactor{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Reactor was created through a constructor.
func (r *Reactor) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReactorIsNotConstructed
	}
	return nil
}

// ID returns the reactor's persistent identity, or 0 before first persistence.
func (r *Reactor) ID() int64 {
	return r.id
}

// Name returns the reactor's unique name.
func (r *Reactor) Name() string {
	return r.name
}

// AssignID sets the store-assigned identity. It may be called once,
// by the repository, after the initial insert.
func (r *Reactor) AssignID(id int64) error {
	if r.id != 0 {
		return ErrReactorIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("reactor id")
	}

	r.id = id
	return nil
}
