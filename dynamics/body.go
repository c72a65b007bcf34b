// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// body.go describes the per-body mass properties that Model stores per
// node: a mass, a center-of-mass offset, and a diagonal inertia about that
// center of mass, all expressed in the body's own reference frame (spec
// §3.2). AddBody assembles these into the 6x6 spatial rigid-body inertia
// the articulated body algorithm actually operates on.

import "github.com/gazed/rbd/spatial"

// Body is the mass-property description of one rigid body in the tree.
// Mass may be zero: a zero-mass Body with zero Inertia attached through a
// Fixed joint is an idiom for carrying a pure frame offset (e.g. the
// trailing segments of a wrist) without contributing any inertia.
// SpatialRigidBodyInertia naturally produces the zero matrix for such a
// Body (a zero-mass Body with nonzero Inertia keeps that rotational
// inertia in its angular quadrant), so the
// body's own mass properties need no special case; it's the Fixed
// joint's zero degrees of freedom that ABA handles separately (see
// passTwoBody/passThreeBody in aba.go).
type Body struct {
	Mass    float64
	Com     spatial.V3
	Inertia spatial.V3 // diagonal principal inertia at Com.
}

// NewBody builds a Body from its mass, center of mass, and diagonal
// principal inertia at that center of mass.
func NewBody(mass float64, com, inertia spatial.V3) Body {
	return Body{Mass: mass, Com: com, Inertia: inertia}
}

// spatialInertia returns the 6x6 spatial rigid-body inertia of b,
// expressed at the body's own origin (not its center of mass), by
// applying the Steiner parallel-axis transfer once (spec §3.2).
func (b *Body) spatialInertia() *spatial.M6 {
	ic := spatial.M3{Xx: b.Inertia.X, Yy: b.Inertia.Y, Zz: b.Inertia.Z}
	return spatial.SpatialRigidBodyInertia(b.Mass, &b.Com, &ic)
}
