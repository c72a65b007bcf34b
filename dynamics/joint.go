// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// joint.go describes the per-joint kinematics: a joint's kind and axis,
// the motion subspace it derives, and jcalc, the per-step computation that
// turns a joint's current q/qdot into spatial quantities consumed by the
// articulated body algorithm in aba.go.

import (
	"fmt"

	"github.com/gazed/rbd/spatial"
)

// JointKind enumerates the joint types handled by forward dynamics.
// Currently only single degree-of-freedom joints (Revolute, Prismatic)
// and the zero degree-of-freedom Fixed joint are implemented; Undefined
// marks a zero-value Joint that was never configured by the caller.
// FloatingBase is declared but not handled by jcalc, which reports
// ErrUndefinedJoint for it; ForwardDynamicsFloatingBase treats body 0 as
// the free base through Model.SetFloatingBase, not through this kind.
const (
	Undefined JointKind = iota
	Revolute
	Prismatic
	Fixed
	FloatingBase
)

// JointKind is a joint's degree-of-freedom family. See the kind constants.
type JointKind int

// Joint describes one body's connection to its parent: a kind plus, for
// Revolute and Prismatic, the unit axis the single degree of freedom acts
// along. mJointAxis is the derived motion subspace S (spec §3.3): the
// spatial vector (axis; 0) for Revolute, (0; axis) for Prismatic, and the
// zero spatial vector for Fixed.
type Joint struct {
	Kind JointKind
	Axis spatial.V3

	mJointAxis spatial.V6
}

// NewJoint builds a Joint of the given kind and axis, computing its
// motion subspace. axis is ignored for Fixed and FloatingBase joints.
func NewJoint(kind JointKind, axis spatial.V3) Joint {
	j := Joint{Kind: kind, Axis: axis}
	switch kind {
	case Revolute:
		j.mJointAxis = spatial.V6{Ang: axis}
	case Prismatic:
		j.mJointAxis = spatial.V6{Lin: axis}
	}
	return j
}

// axisV3 returns the unit vector (1,0,0), (0,1,0) or (0,0,1).
func axisV3(x, y, z float64) spatial.V3 { return spatial.V3{X: x, Y: y, Z: z} }

// RevoluteX builds a revolute joint rotating about the local x axis.
func RevoluteX() Joint { return NewJoint(Revolute, axisV3(1, 0, 0)) }

// RevoluteY builds a revolute joint rotating about the local y axis.
func RevoluteY() Joint { return NewJoint(Revolute, axisV3(0, 1, 0)) }

// RevoluteZ builds a revolute joint rotating about the local z axis.
func RevoluteZ() Joint { return NewJoint(Revolute, axisV3(0, 0, 1)) }

// PrismaticX builds a prismatic joint sliding along the local x axis.
func PrismaticX() Joint { return NewJoint(Prismatic, axisV3(1, 0, 0)) }

// PrismaticY builds a prismatic joint sliding along the local y axis.
func PrismaticY() Joint { return NewJoint(Prismatic, axisV3(0, 1, 0)) }

// PrismaticZ builds a prismatic joint sliding along the local z axis.
func PrismaticZ() Joint { return NewJoint(Prismatic, axisV3(0, 0, 1)) }

// NewFixedJoint builds a joint with no degrees of freedom: X_J is always
// the identity and the motion subspace is the zero spatial vector.
func NewFixedJoint() Joint { return Joint{Kind: Fixed} }

// jcalc computes, for joint j at scalar state (q, qdot), the joint
// transform X_J, the motion subspace S, the joint velocity v_J = S*qdot,
// and the velocity-product bias term c (spec §4.2). c is always zero here:
// every joint kind implemented is axis-aligned with a constant subspace,
// so the velocity-product of the subspace with itself vanishes.
func jcalc(j *Joint, q, qdot float64) (xJ *spatial.M6, s, vJ, c *spatial.V6, err error) {
	c = &spatial.V6{}
	switch j.Kind {
	case Revolute:
		xJ = spatial.Xrot(rotationAbout(&j.Axis, q))
		s = &j.mJointAxis
		vJ = &spatial.V6{}
		vJ.Scale(s, qdot)
		return xJ, s, vJ, c, nil
	case Prismatic:
		var d spatial.V3
		d.Scale(&j.Axis, q)
		xJ = spatial.Xtrans(&d)
		s = &j.mJointAxis
		vJ = &spatial.V6{}
		vJ.Scale(s, qdot)
		return xJ, s, vJ, c, nil
	case Fixed:
		xJ = spatial.NewM6I()
		s = &spatial.V6{}
		vJ = &spatial.V6{}
		return xJ, s, vJ, c, nil
	default:
		return nil, nil, nil, nil, fmt.Errorf("jcalc: joint kind %v: %w", j.Kind, ErrUndefinedJoint)
	}
}

// rotationAbout returns the 3x3 rotation matrix for angle ang about unit
// axis a, using the general axis-angle constructor: a joint's axis need
// not be one of the cardinal directions.
func rotationAbout(a *spatial.V3, ang float64) *spatial.M3 {
	m := spatial.NewM3()
	return m.SetAa(a.X, a.Y, a.Z, ang)
}
