package catalog

import "github.com/shopspring/decimal"

// Field is an optional value with an explicit presence marker, so that an
// empty string or a zero can be told apart from "not supplied".
type Field[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Get returns the value and whether it was supplied.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Set
}

// Patch lists the mutable product fields for a partial update. Absent fields
// keep their stored value.
type Patch struct {
	Name        Field[string]
	Description Field[string]
	Category    Field[string]
	Quantity    Field[int]
	Price       Field[decimal.Decimal]
	Location    Field[string]
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Category.Set &&
		!p.Quantity.Set && !p.Price.Set && !p.Location.Set
}
