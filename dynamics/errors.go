// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// errors.go collects the sentinel errors for the five failure kinds spec
// §7 names. Each is wrapped with fmt.Errorf at the call site to attach the
// offending index or value; callers that only care about the kind can
// still errors.Is against the sentinel.

import "errors"

var (
	// ErrInvalidParent is returned by AddBody when parent_id > current N.
	ErrInvalidParent = errors.New("dynamics: invalid parent body id")

	// ErrUndefinedJoint is returned by AddBody or jcalc when a joint's
	// kind is Undefined.
	ErrUndefinedJoint = errors.New("dynamics: undefined joint kind")

	// ErrDimensionMismatch is returned by the forward-dynamics entry
	// points when q, qdot, or tau do not have the expected length.
	ErrDimensionMismatch = errors.New("dynamics: dimension mismatch")

	// ErrSingularArticulatedInertia is returned by ABA's second pass
	// when a per-joint scalar d[i] is too small to divide by, or, before
	// the floating-base third pass, when the articulated inertia IA[0]
	// is not invertible.
	ErrSingularArticulatedInertia = errors.New("dynamics: singular articulated inertia")

	// ErrNonFiniteResult is returned when the computed qddot contains a
	// NaN or Inf, surfacing what would otherwise be a silent bad answer.
	ErrNonFiniteResult = errors.New("dynamics: non-finite result")
)
