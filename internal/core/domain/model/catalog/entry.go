package catalog

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Kind selects one of the reference tables packages and history records point at.
type Kind int

const (
	KindUnknown Kind = iota
	KindPackageType
	KindPackageStatus
	KindFacility
)

func getKindNames() map[Kind]string {
	return map[Kind]string{
		KindUnknown:       "unknown",
		KindPackageType:   "package type",
		KindPackageStatus: "package status",
		KindFacility:      "facility",
	}
}

func (k Kind) String() string {
	if name, ok := getKindNames()[k]; ok {
		return name
	}
	return getKindNames()[KindUnknown]
}

func (k Kind) Validate() error {
	switch k {
	case KindPackageType, KindPackageStatus, KindFacility:
		return nil
	case KindUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("catalog kind", fmt.Errorf("%d is not a valid kind", k))
	}
}

// HasAddress reports whether entries of this kind carry an address.
func (k Kind) HasAddress() bool {
	return k == KindFacility
}

// Entry is a row of a reference table: a package type, a package status or a facility.
// Types and statuses have a label only; facilities also have an address.
type Entry struct {
	id      int64
	kind    Kind
	name    string
	address string

	isConstructed bool
}

// NewEntry creates an entry that has not been stored yet. address is required for
// facilities and must be empty otherwise.
func NewEntry(kind Kind, name, address string) (*Entry, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	e := &Entry{kind: kind, isConstructed: true}
	if err := errors.Join(e.setName(name), e.setAddress(address)); err != nil {
		return nil, err
	}
	return e, nil
}

func RestoreEntry(id int64, kind Kind, name, address string) (*Entry, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	e, err := NewEntry(kind, name, address)
	if err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() int64 {
	return e.id
}

func (e *Entry) Kind() Kind {
	return e.kind
}

// Name is the label of a type or status, or the name of a facility.
func (e *Entry) Name() string {
	return e.name
}

func (e *Entry) Address() string {
	return e.address
}

// Rename changes the label and, for facilities, the address when it is non-nil.
func (e *Entry) Rename(name *string, address *string) error {
	if name == nil && address == nil {
		return errs.NewValueIsRequiredError("at least one of name, address")
	}
	next := *e
	var errsList []error
	if name != nil {
		errsList = append(errsList, next.setName(*name))
	}
	if address != nil {
		errsList = append(errsList, next.setAddress(*address))
	}
	if err := errors.Join(errsList...); err != nil {
		return err
	}
	*e = next
	return nil
}

func (e *Entry) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *Entry) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if e.kind.HasAddress() && address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if !e.kind.HasAddress() && address != "" {
		return errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("a %s has no address", e.kind))
	}
	e.address = address
	return nil
}
