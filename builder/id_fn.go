// SPDX-License-Identifier: MIT
// File: id_fn.go
// Role: Vertex ID schemes.
//
// Note: core sorts vertex IDs lexicographically, so "10" sorts before "2"
// with DefaultIDFn. Pattern/target numbering in vf2 follows that order.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0,25]; panics otherwise.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// PrefixIDFn returns an IDFn producing prefix+decimal ("v0", "v1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}
