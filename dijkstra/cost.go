// SPDX-License-Identifier: MIT

package dijkstra

import (
	"math"
	"strconv"
)

// Cost is a cost-from-start value: either a finite int64 or Unreached.
//
// The zero value is Unreached, so a missing cost-table entry reads as
// infinite. Unreached is an explicit state, not a large placeholder number.
type Cost struct {
	value  int64
	finite bool
}

// Unreached returns the cost of a node no path has reached yet.
func Unreached() Cost { return Cost{} }

// Finite returns the finite cost v.
func Finite(v int64) Cost { return Cost{value: v, finite: true} }

// IsInf reports whether c is Unreached.
func (c Cost) IsInf() bool { return !c.finite }

// Value returns the finite value and true, or 0 and false for Unreached.
func (c Cost) Value() (int64, bool) { return c.value, c.finite }

// Float64 returns the cost with Unreached reported as +Inf.
func (c Cost) Float64() float64 {
	if !c.finite {
		return math.Inf(1)
	}
	return float64(c.value)
}

// Less reports whether c is strictly smaller than o.
// Unreached is greater than every finite cost and not less than itself.
func (c Cost) Less(o Cost) bool {
	switch {
	case !c.finite:
		return false
	case !o.finite:
		return true
	default:
		return c.value < o.value
	}
}

// Add returns c + w. Unreached stays Unreached.
func (c Cost) Add(w int64) Cost {
	if !c.finite {
		return c
	}
	return Finite(c.value + w)
}

// String renders the cost, using "∞" for Unreached.
func (c Cost) String() string {
	if !c.finite {
		return "∞"
	}
	return strconv.FormatInt(c.value, 10)
}
