// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programming error such as a nil
// constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates that no example graph has the requested name.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// ErrBadPreset indicates an embedded example graph that fails validation.
var ErrBadPreset = errors.New("builder: invalid preset")
