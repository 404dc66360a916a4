package lookup

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/plookup/debug"
	"github.com/consensys/plookup/field"
)

// WitnessTable accumulates per-gate wire assignments as four parallel
// multisets; row i across the columns is gate i's (left, right, output,
// fourth) assignment. The four columns have equal length at every observable
// point, so row position encodes gate identity.
//
// A WitnessTable is exclusively owned by the synthesis routine building it;
// concurrent mutation is never supported. Independent circuit fragments
// synthesized in parallel must each build a private WitnessTable, see
// BuildFragments and Concat.
type WitnessTable[E field.Element[E]] struct {
	// F1 holds the left wire value of each gate.
	F1 MultiSet[E]
	// F2 holds the right wire value of each gate.
	F2 MultiSet[E]
	// F3 holds the output wire value of each gate.
	F3 MultiSet[E]
	// F4 holds the fourth wire value of each gate.
	F4 MultiSet[E]

	lookupGates bitset.BitSet
}

// NewWitnessTable returns an empty witness table.
func NewWitnessTable[E field.Element[E]]() *WitnessTable[E] {
	return &WitnessTable[E]{}
}

// NbGates returns the number of gates recorded so far.
func (w *WitnessTable[E]) NbGates() int {
	return len(w.F1)
}

// FromWireValues records a gate whose values are not subject to lookup
// validation, appending the four values to the columns in lock-step. It never
// fails. If the values are not members of the lookup table, the proof fails
// when witness and preprocessed tables are concatenated downstream.
func (w *WitnessTable[E]) FromWireValues(left, right, output, fourth E) {
	w.F1.Push(left)
	w.F2.Push(right)
	w.F3.Push(output)
	w.F4.Push(fourth)
	w.assertAligned()
}

// ValueFromTable looks (left, right, fourth) up in t and, on success, records
// the gate (left, right, output, fourth) with the output wire read from the
// table; every row inserted this way is a table member by construction. On a
// miss nothing is appended -- all four columns keep their prior length -- and
// the lookup error is propagated.
func (w *WitnessTable[E]) ValueFromTable(t *Table[E], left, right, fourth E) error {
	output, err := t.Lookup(left, right, fourth)
	if err != nil {
		return err
	}
	w.lookupGates.Set(uint(len(w.F1)))
	w.F1.Push(left)
	w.F2.Push(right)
	w.F3.Push(output)
	w.F4.Push(fourth)
	w.assertAligned()
	return nil
}

// LookupGates returns the set of gate indices recorded through
// ValueFromTable: the witness side of the lookup selector column the
// downstream prover preprocesses.
func (w *WitnessTable[E]) LookupGates() *bitset.BitSet {
	return w.lookupGates.Clone()
}

// Concat appends the gates of the given fragments to w in argument order,
// preserving lookup-gate marks. Fragments built privately by parallel
// synthesis must be combined sequentially through this method. It fails with
// ErrUnalignedLengths, appending nothing, if any fragment has unaligned
// columns.
func (w *WitnessTable[E]) Concat(fragments ...*WitnessTable[E]) error {
	for _, f := range fragments {
		if len(f.F1) != len(f.F2) || len(f.F2) != len(f.F3) || len(f.F3) != len(f.F4) {
			return fmt.Errorf("fragment with columns %d/%d/%d/%d: %w",
				len(f.F1), len(f.F2), len(f.F3), len(f.F4), ErrUnalignedLengths)
		}
	}
	for _, f := range fragments {
		base := uint(len(w.F1))
		w.F1 = append(w.F1, f.F1...)
		w.F2 = append(w.F2, f.F2...)
		w.F3 = append(w.F3, f.F3...)
		w.F4 = append(w.F4, f.F4...)
		for i, ok := f.lookupGates.NextSet(0); ok; i, ok = f.lookupGates.NextSet(i + 1) {
			w.lookupGates.Set(base + i)
		}
	}
	w.assertAligned()
	return nil
}

func (w *WitnessTable[E]) assertAligned() {
	debug.Assert(len(w.F1) == len(w.F2) && len(w.F2) == len(w.F3) && len(w.F3) == len(w.F4),
		"witness columns unaligned")
}
