// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"slices"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID. It must be pure: the same
// index always yields the same ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index, e.g. 0→"0", 42→"42". This matches
// the IDs the session allocator hands out.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single uppercase letter, 0→"A" … 25→"Z".
// Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet column names, 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var out []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		out = append(out, byte('A'+i%26))
	}
	slices.Reverse(out)

	return string(out)
}

// SymbolNumberIDFn returns prefix followed by the decimal index, e.g. "v0".
// The returned IDFn panics on a negative index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixedIDs sets the ID scheme to SymbolNumberIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
