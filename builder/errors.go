// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors of the builder package.
// Policy:
//   - Constructors return sentinels wrapped with method context:
//     fmt.Errorf("%s: ...: %w", method, ..., ErrX). Match with errors.Is.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or nil graph.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadSpec indicates a Parse input that names no known shape or has bad arguments.
	ErrBadSpec = errors.New("builder: malformed graph spec")
)
