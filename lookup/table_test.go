package lookup

import (
	"testing"

	"github.com/consensys/plookup/field"
	bls12_381 "github.com/consensys/plookup/field/bls12-381"
	"github.com/consensys/plookup/field/bn254"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func testXorTable[E field.Element[E]](t *testing.T) {
	assert := require.New(t)

	tbl := XorTable[E](0, 3)
	assert.Equal(16, tbl.Len())

	d := SelectorXor[E]()
	for a := uint64(0); a <= 3; a++ {
		for b := uint64(0); b <= 3; b++ {
			c, err := tbl.Lookup(embed[E](a), embed[E](b), d)
			assert.NoError(err)
			assert.True(c.Equal(embed[E](a ^ b)))
		}
	}

	// a one-sided range violation is still a miss
	_, err := tbl.Lookup(embed[E](2), embed[E](5), d)
	assert.ErrorIs(err, ErrElementNotFound)
	_, err = tbl.Lookup(embed[E](22), embed[E](1), d)
	assert.ErrorIs(err, ErrElementNotFound)

	// in-range operands under the wrong selector miss as well
	_, err = tbl.Lookup(embed[E](2), embed[E](3), SelectorAdd[E]())
	assert.ErrorIs(err, ErrElementNotFound)
}

func testAddTable[E field.Element[E]](t *testing.T) {
	assert := require.New(t)

	tbl := AddTable[E](2, 3)
	assert.Equal(4, tbl.Len())

	c, err := tbl.Lookup(embed[E](2), embed[E](3), SelectorAdd[E]())
	assert.NoError(err)
	assert.True(c.Equal(embed[E](5)))

	_, err = tbl.Lookup(embed[E](0), embed[E](1), SelectorAdd[E]())
	assert.ErrorIs(err, ErrElementNotFound)
}

func testCompositeTable[E field.Element[E]](t *testing.T) {
	assert := require.New(t)

	tbl := NewTable[E]()
	tbl.InsertMultiXor(0, 4)
	tbl.InsertMultiAdd(2, 3)
	assert.Equal(25+4, tbl.Len())

	// both families answer under their own selector
	c, err := tbl.Lookup(embed[E](3), embed[E](4), SelectorXor[E]())
	assert.NoError(err)
	assert.True(c.Equal(embed[E](7)))

	c, err = tbl.Lookup(embed[E](2), embed[E](3), SelectorAdd[E]())
	assert.NoError(err)
	assert.True(c.Equal(embed[E](5)))

	// out of the family's enumerated range
	_, err = tbl.Lookup(embed[E](4), embed[E](6), SelectorXor[E]())
	assert.ErrorIs(err, ErrElementNotFound)
	_, err = tbl.Lookup(embed[E](22), embed[E](1), SelectorXor[E]())
	assert.ErrorIs(err, ErrElementNotFound)
	_, err = tbl.Lookup(embed[E](0), embed[E](1), SelectorAdd[E]())
	assert.ErrorIs(err, ErrElementNotFound)
}

func testInsertRow[E field.Element[E]](t *testing.T) {
	assert := require.New(t)

	tbl := NewTable[E]()
	d := embed[E](7) // a custom operation family
	assert.NoError(tbl.InsertRow(embed[E](1), embed[E](2), embed[E](3), d))

	// a differing result under an identical key breaks the functional
	// dependency backing Lookup
	err := tbl.InsertRow(embed[E](1), embed[E](2), embed[E](4), d)
	assert.ErrorIs(err, ErrTableConflict)
	assert.Equal(1, tbl.Len())

	// exact duplicates are permitted
	assert.NoError(tbl.InsertRow(embed[E](1), embed[E](2), embed[E](3), d))
	assert.Equal(2, tbl.Len())

	c, err := tbl.Lookup(embed[E](1), embed[E](2), d)
	assert.NoError(err)
	assert.True(c.Equal(embed[E](3)))
}

func testTableColumnsPad[E field.Element[E]](t *testing.T) {
	assert := require.New(t)

	tbl := AddTable[E](0, 1)
	assert.Equal(4, tbl.Len())

	tbl.PadToPowerOfTwo() // already a power of two
	assert.Equal(4, tbl.Len())

	tbl.Pad(7)
	assert.Equal(7, tbl.Len())
	last := tbl.Row(3)
	assert.Equal(last, tbl.Row(6))

	for j := 0; j < 4; j++ {
		assert.Equal(7, tbl.Column(j).Len())
	}
	// column 2 carries the sums, padded with the last row's sum
	assert.True(tbl.Column(2).Equal(multiset[E](0, 1, 1, 2, 2, 2, 2)))

	// padding an empty table is a no-op
	empty := NewTable[E]()
	empty.Pad(8)
	assert.Equal(0, empty.Len())
}

func TestTable(t *testing.T) {
	t.Run("xor/bn254", testXorTable[bn254.Element])
	t.Run("xor/bls12-381", testXorTable[bls12_381.Element])
	t.Run("add/bn254", testAddTable[bn254.Element])
	t.Run("add/bls12-381", testAddTable[bls12_381.Element])
	t.Run("composite/bn254", testCompositeTable[bn254.Element])
	t.Run("composite/bls12-381", testCompositeTable[bls12_381.Element])
	t.Run("insertRow/bn254", testInsertRow[bn254.Element])
	t.Run("insertRow/bls12-381", testInsertRow[bls12_381.Element])
	t.Run("columnsPad/bn254", testTableColumnsPad[bn254.Element])
	t.Run("columnsPad/bls12-381", testTableColumnsPad[bls12_381.Element])
}

func TestXorTableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	const min, max = uint64(0), uint64(15)
	tbl := XorTable[bn254.Element](min, max)
	d := SelectorXor[bn254.Element]()

	properties := gopter.NewProperties(parameters)

	properties.Property("lookup(a, b, xor) = a^b for all in-range pairs", prop.ForAll(
		func(a, b uint64) bool {
			c, err := tbl.Lookup(embed[bn254.Element](a), embed[bn254.Element](b), d)
			return err == nil && c.Equal(embed[bn254.Element](a^b))
		},
		gen.UInt64Range(min, max),
		gen.UInt64Range(min, max),
	))

	properties.Property("lookup misses when either operand is out of range", prop.ForAll(
		func(a, b uint64) bool {
			_, err := tbl.Lookup(embed[bn254.Element](a), embed[bn254.Element](b), d)
			return err != nil
		},
		gen.UInt64Range(max+1, max+1000),
		gen.UInt64Range(min, max+1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
