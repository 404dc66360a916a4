// Package plookup provides the witness-side machinery of a plookup-style
// lookup argument for PLONK-family proving systems.
//
// It builds permissible-value tables for supported binary operations under a
// shared 4-wide row format, and accumulates per-gate wire assignments that are
// provably members of those tables. The produced multisets are consumed by an
// external polynomial-encoding stage which builds the plookup grand-product
// identity; polynomial commitments, FFTs, the permutation argument and
// Fiat-Shamir transcripts are independent subsystems and out of scope here.
//
// plookup supports the scalar fields of the following curves:
//   - BN254
//   - BLS12_377
//   - BLS12_381
package plookup

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

var Version = semver.MustParse("0.1.0")

// Curves return the curves whose scalar fields are supported by plookup
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BN254,
		ecc.BLS12_377,
		ecc.BLS12_381,
	}
}
