package lookup

import (
	"fmt"

	"github.com/consensys/plookup/field"
	"github.com/consensys/plookup/internal/utils"
	"github.com/consensys/plookup/logger"
)

// SelectorXor returns the selector value tagging XOR rows: the additive
// inverse of one.
func SelectorXor[E field.Element[E]]() E {
	var zero E
	return zero.AddUint64(1).Neg()
}

// SelectorAdd returns the selector value tagging addition rows: the additive
// identity.
func SelectorAdd[E field.Element[E]]() E {
	var zero E
	return zero
}

// tableKey identifies a row up to its result wire.
type tableKey[E field.Element[E]] struct {
	a, b, d E
}

// Table is an ordered collection of 4-wide rows (operand1, operand2, result,
// selector), one row per valid instance of a supported operation. Each
// operation family carries a distinct selector value in the fourth column, so
// that (operand1, operand2, selector) determines the result across the whole
// table and Lookup is well-defined.
//
// Rows are kept in insertion order; a hash index keyed on (operand1,
// operand2, selector) backs Lookup, since row counts grow quadratically with
// the enumerated range width. A table is built once, possibly composing
// several operation families through successive bulk insertions, and treated
// as immutable afterwards.
type Table[E field.Element[E]] struct {
	rows  [][4]E
	index map[tableKey[E]]E
}

// NewTable returns an empty table.
func NewTable[E field.Element[E]]() *Table[E] {
	return &Table[E]{index: make(map[tableKey[E]]E)}
}

// XorTable returns a table holding all XOR rows over [min, max].
func XorTable[E field.Element[E]](min, max uint64) *Table[E] {
	t := NewTable[E]()
	t.InsertMultiXor(min, max)
	return t
}

// AddTable returns a table holding all addition rows over [min, max].
func AddTable[E field.Element[E]](min, max uint64) *Table[E] {
	t := NewTable[E]()
	t.InsertMultiAdd(min, max)
	return t
}

// Len returns the number of rows.
func (t *Table[E]) Len() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table[E]) Row(i int) [4]E {
	return t.rows[i]
}

// Column returns column j (0 ≤ j ≤ 3) as a MultiSet; the read path for the
// polynomial-encoding stage.
func (t *Table[E]) Column(j int) MultiSet[E] {
	col := make(MultiSet[E], len(t.rows))
	for i := range t.rows {
		col[i] = t.rows[i][j]
	}
	return col
}

// InsertRow appends the row (a, b, c, d). A second row with identical
// (a, b, d) but a differing c is rejected with ErrTableConflict; exact
// duplicate rows are permitted, tables being multisets downstream.
func (t *Table[E]) InsertRow(a, b, c, d E) error {
	if prev, ok := t.index[tableKey[E]{a, b, d}]; ok && !prev.Equal(c) {
		return fmt.Errorf("row (%s, %s, _, %s): %w", a, b, d, ErrTableConflict)
	}
	t.insertRow(a, b, c, d)
	return nil
}

// insertRow appends a row known not to conflict: the bulk insertors enumerate
// each (a, b) once per family and families carry distinct selectors.
func (t *Table[E]) insertRow(a, b, c, d E) {
	if t.index == nil {
		t.index = make(map[tableKey[E]]E)
	}
	t.rows = append(t.rows, [4]E{a, b, c, d})
	t.index[tableKey[E]{a, b, d}] = c
}

// InsertMultiXor appends one row (a, b, a xor b, SelectorXor) for every pair
// (a, b) over the inclusive integer interval [min, max], mapped through the
// canonical embedding; (max-min+1)² rows in total. The XOR is computed on the
// embedded integers, not on any field-specific bit representation.
func (t *Table[E]) InsertMultiXor(min, max uint64) {
	var zero E
	d := SelectorXor[E]()
	for i := min; i <= max; i++ {
		for j := min; j <= max; j++ {
			t.insertRow(zero.AddUint64(i), zero.AddUint64(j), zero.AddUint64(i^j), d)
		}
	}
	log := logger.Logger()
	log.Debug().Uint64("min", min).Uint64("max", max).Int("rows", t.Len()).Msg("inserted xor rows")
}

// InsertMultiAdd appends one row (a, b, a+b, SelectorAdd) for every pair
// (a, b) over the inclusive integer interval [min, max], with the result
// computed by field addition; (max-min+1)² rows in total.
func (t *Table[E]) InsertMultiAdd(min, max uint64) {
	var zero E
	d := SelectorAdd[E]()
	for i := min; i <= max; i++ {
		for j := min; j <= max; j++ {
			a, b := zero.AddUint64(i), zero.AddUint64(j)
			t.insertRow(a, b, a.Add(b), d)
		}
	}
	log := logger.Logger()
	log.Debug().Uint64("min", min).Uint64("max", max).Int("rows", t.Len()).Msg("inserted addition rows")
}

// Lookup returns the unique c such that the row (a, b, c, d) is in the table,
// or ErrElementNotFound when no such row exists.
func (t *Table[E]) Lookup(a, b, d E) (E, error) {
	c, ok := t.index[tableKey[E]{a, b, d}]
	if !ok {
		var zero E
		return zero, fmt.Errorf("query (%s, %s, %s): %w", a, b, d, ErrElementNotFound)
	}
	return c, nil
}

// Pad extends the table to n rows by repeating its last row, keeping the four
// columns aligned. Only existing rows are duplicated, so the set of
// permissible values is unchanged. Padding an empty table is a no-op.
func (t *Table[E]) Pad(n int) {
	if len(t.rows) == 0 {
		return
	}
	last := t.rows[len(t.rows)-1]
	for len(t.rows) < n {
		t.rows = append(t.rows, last)
	}
}

// PadToPowerOfTwo extends the table to the next power-of-two row count.
func (t *Table[E]) PadToPowerOfTwo() {
	t.Pad(int(utils.NextPowerOfTwo(uint64(len(t.rows)))))
}
