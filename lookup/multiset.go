package lookup

import (
	"fmt"
	"slices"

	"github.com/consensys/plookup/field"
	"github.com/consensys/plookup/internal/utils"
)

// MultiSet is an append-only ordered sequence of field elements, the shared
// storage unit for both table columns and witness columns. The zero value is
// a valid empty multiset. Insertion order is preserved; elements are never
// removed.
type MultiSet[E field.Element[E]] []E

// Push appends e to the multiset.
func (m *MultiSet[E]) Push(e E) {
	*m = append(*m, e)
}

// Len returns the number of elements, counting multiplicities.
func (m MultiSet[E]) Len() int {
	return len(m)
}

// IsEmpty reports whether the multiset holds no element.
func (m MultiSet[E]) IsEmpty() bool {
	return len(m) == 0
}

// Contains reports whether e occurs in the multiset.
func (m MultiSet[E]) Contains(e E) bool {
	return slices.Contains(m, e)
}

// Position returns the index of the first occurrence of e, or
// ErrElementNotFound when e does not occur.
func (m MultiSet[E]) Position(e E) (int, error) {
	i := slices.Index(m, e)
	if i < 0 {
		return 0, fmt.Errorf("position of %s: %w", e, ErrElementNotFound)
	}
	return i, nil
}

// Sorted returns a copy of the multiset sorted by canonical field order.
func (m MultiSet[E]) Sorted() MultiSet[E] {
	s := slices.Clone(m)
	slices.SortFunc(s, func(a, b E) int { return a.Cmp(b) })
	return s
}

// Pad extends the multiset in place to length n by repeating its last element
// (the zero element when the multiset is empty). Padding never changes the
// set of distinct elements of a non-empty multiset, so multiset-inclusion in
// a table is preserved. No-op when the multiset already has n or more
// elements.
func (m *MultiSet[E]) Pad(n int) {
	if len(*m) >= n {
		return
	}
	var filler E
	if len(*m) > 0 {
		filler = (*m)[len(*m)-1]
	}
	for len(*m) < n {
		*m = append(*m, filler)
	}
}

// PadToPowerOfTwo extends the multiset to the next power-of-two length, the
// domain sizes the downstream polynomial interpolation works over.
func (m *MultiSet[E]) PadToPowerOfTwo() {
	m.Pad(int(utils.NextPowerOfTwo(uint64(len(*m)))))
}

// SortedConcat returns the concatenation of m and t, sorted by order of
// appearance in t: each element of t is emitted in position, immediately
// followed by the copies of it held in m. This is the "s" multiset of the
// plookup identity. It fails with ErrElementNotFound when m holds an element
// that does not occur in t.
func (m MultiSet[E]) SortedConcat(t MultiSet[E]) (MultiSet[E], error) {
	counts := make(map[E]int, len(m))
	for _, e := range m {
		counts[e]++
	}
	s := make(MultiSet[E], 0, len(m)+len(t))
	for _, e := range t {
		s = append(s, e)
		for ; counts[e] > 0; counts[e]-- {
			s = append(s, e)
		}
	}
	if len(s) != len(m)+len(t) {
		for _, e := range m {
			if !t.Contains(e) {
				return nil, fmt.Errorf("element %s: %w", e, ErrElementNotFound)
			}
		}
	}
	return s, nil
}

// HalveAlternating splits the multiset into its even-index and odd-index
// subsequences, the (h1, h2) halves consumed by the plookup identity.
func (m MultiSet[E]) HalveAlternating() (MultiSet[E], MultiSet[E]) {
	evens := make(MultiSet[E], 0, (len(m)+1)/2)
	odds := make(MultiSet[E], 0, len(m)/2)
	for i, e := range m {
		if i%2 == 0 {
			evens = append(evens, e)
		} else {
			odds = append(odds, e)
		}
	}
	return evens, odds
}

// Equal reports order-sensitive sequence equality: same elements at the same
// positions.
func (m MultiSet[E]) Equal(other MultiSet[E]) bool {
	return slices.Equal(m, other)
}

// EqualMultiset reports equality up to reordering, counting multiplicities.
// The soundness argument of the grand-product check needs this notion;
// structural consistency checks typically want Equal instead. Use sites must
// pick one explicitly.
func (m MultiSet[E]) EqualMultiset(other MultiSet[E]) bool {
	if len(m) != len(other) {
		return false
	}
	counts := make(map[E]int, len(m))
	for _, e := range m {
		counts[e]++
	}
	for _, e := range other {
		counts[e]--
		if counts[e] < 0 {
			return false
		}
	}
	return true
}

// Compress aggregates parallel column multisets of equal length into one with
// the random challenge alpha: row i of the result is sum_j alpha^j *
// sets[j][i]. It fails with ErrUnalignedLengths when the columns disagree on
// length.
func Compress[E field.Element[E]](alpha E, sets ...MultiSet[E]) (MultiSet[E], error) {
	if len(sets) == 0 {
		return nil, nil
	}
	n := len(sets[0])
	for _, s := range sets[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("compressing columns of lengths %d and %d: %w", n, len(s), ErrUnalignedLengths)
		}
	}
	var zero E
	res := make(MultiSet[E], n)
	for i := 0; i < n; i++ {
		acc := sets[0][i]
		coeff := zero.AddUint64(1)
		for _, s := range sets[1:] {
			coeff = coeff.Mul(alpha)
			acc = acc.Add(coeff.Mul(s[i]))
		}
		res[i] = acc
	}
	return res, nil
}
