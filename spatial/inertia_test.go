// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package spatial

import "testing"

func TestSpatialRigidBodyInertiaAtCom(t *testing.T) {
	// With the reference frame's origin at the center of mass, the
	// parallel-axis correction vanishes: the top-left quadrant is exactly
	// the given rotational inertia, and the mass quadrant is m*I3.
	iC := &M3{Xx: 2, Yy: 3, Zz: 4}
	x := SpatialRigidBodyInertia(5, &V3{}, iC)

	if !x.Aa.Eq(iC) {
		t.Errorf(format, x.Aa, iC)
	}
	want := &M3{}
	want.Set(M3I).Scale(5)
	if !x.Ll.Eq(want) {
		t.Errorf(format, x.Ll, want)
	}
	if !x.Al.Eq(M3Z) || !x.La.Eq(M3Z) {
		t.Error("expected zero off-diagonal quadrants when com is at the origin")
	}
}

func TestSpatialRigidBodyInertiaOffsetCom(t *testing.T) {
	m := 2.0
	com := &V3{1, 0, 0}
	x := SpatialRigidBodyInertia(m, com, M3Z)

	// Al = m*com_x, La = m*com_x^T: a point mass offset along x contributes
	// a rotational inertia about y and z of m*|com|^2 to Aa.
	wantAa := &M3{
		0, 0, 0,
		0, m * com.X * com.X, 0,
		0, 0, m * com.X * com.X,
	}
	if !x.Aa.Aeq(wantAa) {
		t.Errorf(format, x.Aa, wantAa)
	}
}

func TestPointMassInertiaHasNoRotationalInertiaAtCom(t *testing.T) {
	x := PointMassInertia(3, &V3{})
	if !x.Aa.Eq(M3Z) {
		t.Errorf(format, x.Aa, M3Z)
	}
}
