// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package spatial

// SpatialRigidBodyInertia builds the 6x6 spatial inertia of a rigid body
// of mass m, with center of mass com and rotational inertia iC about that
// center of mass (expressed in the body's own reference frame, with the
// reference frame's origin not necessarily at the center of mass).
//
// The block form is the one given in Featherstone's Rigid Body Dynamics
// Algorithms, §2.13:
//
//	[ Ic + m*ĉᵀĉ   m*ĉ ]
//	[ m*ĉᵀ         m*1₃ ]
//
// where ĉ is the skew-symmetric cross-product matrix of com.
func SpatialRigidBodyInertia(m float64, com *V3, iC *M3) *M6 {
	var cx, cxT, cc M3
	cx.SetSkewSym(com)
	cxT.Transpose(&cx)

	x := &M6{}
	cc.Mult(&cxT, &cx)
	cc.Scale(m)
	x.Aa.Add(iC, &cc)

	x.Al.Set(&cx).Scale(m)
	x.La.Set(&cxT).Scale(m)

	x.Ll = *NewM3I()
	x.Ll.Scale(m)
	return x
}

// PointMassInertia builds the spatial inertia of a point mass m located at
// com: a convenience case of SpatialRigidBodyInertia with a zero
// rotational inertia about the center of mass.
func PointMassInertia(m float64, com *V3) *M6 {
	return SpatialRigidBodyInertia(m, com, M3Z)
}
