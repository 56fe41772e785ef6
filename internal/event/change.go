package event

import "github.com/shopspring/decimal"

// Change carries the value of one mutable field before a write and, when
// the write touched the field, its value after. A nil New means the field
// was not part of the update. Old is always populated so handlers can
// reverse prior effects without reloading the aggregate.
type Change[T any] struct {
	Old T  `json:"old"`
	New *T `json:"new,omitempty"`
}

// Unchanged returns a Change recording only the current value.
func Unchanged[T any](old T) Change[T] {
	return Change[T]{Old: old}
}

// Changed returns a Change from old to new.
func Changed[T any](old, new T) Change[T] {
	return Change[T]{Old: old, New: &new}
}

// Touched reports whether the update carried a value for this field,
// regardless of whether it differs from Old.
func (c Change[T]) Touched() bool {
	return c.New != nil
}

// Effective returns the new value when the field was touched, the old
// value otherwise.
func (c Change[T]) Effective() T {
	if c.New != nil {
		return *c.New
	}
	return c.Old
}

// Differs reports whether the update carried a value different from Old.
// For decimal fields use DiffersAmount, which compares by numeric value.
func Differs[T comparable](c Change[T]) bool {
	return c.New != nil && *c.New != c.Old
}

// DiffersAmount is Differs for decimal fields. decimal.Decimal cannot be
// compared with ==; two representations of the same number would read as
// a change.
func DiffersAmount(c Change[decimal.Decimal]) bool {
	return c.New != nil && !c.New.Equal(c.Old)
}
