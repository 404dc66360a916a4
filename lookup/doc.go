/*
Package lookup implements the witness side of a plookup-style argument.

A Table collects every permissible (operand1, operand2, result, selector)
instance of the supported operation families as flat 4-wide rows; the fourth
column tags the operation family so that several families can share one row
format. A WitnessTable accumulates per-gate wire assignments into four
parallel multisets, either unconditionally or validated against a Table, and
keeps the columns aligned row-for-row with gate index at every observable
point.

The completed table and witness columns are read by an external
polynomial-encoding stage which builds the plookup grand-product identity;
that stage, along with commitments, FFTs and transcript management, lives
outside this package.
*/
package lookup
