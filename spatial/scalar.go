// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package spatial provides the fixed-size 3- and 6-dimensional vector and
// matrix math needed for rigid-body dynamics: Plücker spatial vectors,
// spatial transforms, and spatial rigid-body inertias built on top of
// ordinary 3-vectors and 3x3 matrices.
//
// Package spatial is provided as part of the rbd (rigid body dynamics) engine.
package spatial

// Design Notes:
//
// 1) This is a CPU based math library called once per joint per simulation
//    step, not per vertex or per pixel, but the same discipline applies:
//     - avoid instantiating new structures
//     - use pointers to structures
//     - prefer multiply over divide
//
// 2) Wikipedia states: "In linear algebra, real numbers are called scalars...".
//    The default scalar size is float64 to match the numeric precision the
//    forward-dynamics recursion depends on.

import "math"

// Various linear math constants.
const (
	PI   float64 = math.Pi
	PIx2 float64 = PI * 2

	// Epsilon is used to distinguish when a float is close enough to a
	// number for general bookkeeping (shape/degenerate checks).
	Epsilon float64 = 0.000001

	// SingularTolerance is the default threshold below which a per-joint
	// articulated inertia scalar d[i] is treated as singular (see
	// dynamics.ForwardDynamics).
	SingularTolerance float64 = 1e-14
)

// AeqZ (~=) almost-equals returns true if the difference between x and zero
// is so small that it doesn't matter.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// AeqTol is Aeq with an explicit tolerance, used by tests that need
// tighter precision than the package default Epsilon.
func AeqTol(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}
