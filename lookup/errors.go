package lookup

import "errors"

var (
	// ErrElementNotFound signals a lookup miss: the queried element or row is
	// not a member of the table. Callers must treat it as a circuit-authoring
	// defect or invalid input; the table is static once built, so no retry is
	// meaningful.
	ErrElementNotFound = errors.New("element not found in table")

	// ErrTableConflict signals an insertion that would break the functional
	// dependency (operand1, operand2, selector) -> result a table maintains
	// for Lookup to be well-defined.
	ErrTableConflict = errors.New("conflicting result for identical table key")

	// ErrUnalignedLengths signals columns of differing lengths where
	// lock-step alignment is required.
	ErrUnalignedLengths = errors.New("columns have unaligned lengths")
)
