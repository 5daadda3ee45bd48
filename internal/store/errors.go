package store

import (
	"errors"
	"fmt"
)

var (
	ErrDanglingReference = errors.New("dangling reference")
	ErrDuplicateID       = errors.New("duplicate id")
)

// DanglingReferenceError reports a foreign id that does not resolve.
// Entity/ID name the referencing record, Field/Ref the unresolved link.
type DanglingReferenceError struct {
	Entity string
	ID     uint
	Field  string
	Ref    uint
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s %d: %s %d does not exist", e.Entity, e.ID, e.Field, e.Ref)
}

func (e *DanglingReferenceError) Unwrap() error {
	return ErrDanglingReference
}

// DuplicateIDError reports an id that appears twice in one snapshot
// collection.
type DuplicateIDError struct {
	Entity string
	ID     uint
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s %d appears more than once", e.Entity, e.ID)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}
