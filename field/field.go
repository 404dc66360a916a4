// Package field defines the arithmetic capability lookup tables require from
// a prime field, decoupling table construction from any concrete curve.
//
// Concrete implementations wrap gnark-crypto scalar-field elements; see the
// per-curve subpackages. They are generated from a single template by
// field/internal/generator.
package field

import "fmt"

// An Element of a prime-order scalar field.
//
// Element is a type constraint: implementations must be strictly comparable
// value types with a canonical internal representation, so that == agrees
// with Equal and elements can key hash indexes. The zero value of an
// implementation is the additive identity; zero.AddUint64(v) is the canonical
// embedding of the small non-negative integer v, and zero.AddUint64(1) the
// multiplicative identity.
type Element[E any] interface {
	comparable
	Add(y E) E          // Add x+y
	Neg() E             // Neg -x
	Mul(y E) E          // Mul x*y
	Equal(y E) bool     // Equal reports whether x = y
	IsZero() bool       // IsZero reports whether x = 0
	Cmp(y E) int        // Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, in canonical (regular) form.
	AddUint64(y uint64) E // AddUint64 x+y. It's the canonical way to create a new element with value y.
	Uint64() uint64     // Uint64 returns the numerical value of x. It panics if x does not fit a uint64.
	IsUint64() bool     // IsUint64 reports whether the numerical value of x fits a uint64.
	fmt.Stringer
}
