package models

import "encoding/json"

// Nullable distinguishes an absent patch field from an explicit JSON null.
// Set is true whenever the field appeared in the payload.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func cloneUint(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func applyNullable(dst **uint, n Nullable[uint]) {
	if n.Set {
		*dst = cloneUint(n.Value)
	}
}
