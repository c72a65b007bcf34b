// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package spatial

// Transform builds and composes Plücker spatial transforms: 6x6 matrices
// of the form
//
//	[  E    0 ]
//	[ -E*rx E ]
//
// where E is a 3x3 rotation and rx is the skew-symmetric matrix of the
// translation r. Such a transform moves spatial motion and force vectors
// between two coordinate frames related by rotation E and a translation r
// from the first frame's origin to the second's, both expressed in the
// first frame.

// Xtrans builds the spatial transform for a pure translation by r: E is
// the identity, so the transform reduces to [I 0; -rx I].
func Xtrans(r *V3) *M6 {
	x := &M6{}
	x.Aa = *NewM3I()
	x.Ll = *NewM3I()
	var rx M3
	rx.SetSkewSym(r)
	x.La.Set(&rx).Scale(-1)
	return x
}

// Xrot builds the spatial transform for a pure rotation given by the
// active rotation matrix e (e.g. from M3.SetAa): translation is zero, so
// both diagonal quadrants are set from e and the off-diagonal quadrants
// are zero. Plücker/RBDL spatial transforms use the passive convention
// E = eᵀ, rotating coordinate frames rather than vectors, so e is
// transposed before being stored.
func Xrot(e *M3) *M6 {
	x := &M6{}
	var et M3
	et.Transpose(e)
	x.Aa.Set(&et)
	x.Ll.Set(&et)
	return x
}

// XrotX builds the spatial transform for a rotation of ang radians about
// the local x axis.
func XrotX(ang float64) *M6 {
	var e M3
	e.SetAa(1, 0, 0, ang)
	return Xrot(&e)
}

// XrotY builds the spatial transform for a rotation of ang radians about
// the local y axis.
func XrotY(ang float64) *M6 {
	var e M3
	e.SetAa(0, 1, 0, ang)
	return Xrot(&e)
}

// XrotZ builds the spatial transform for a rotation of ang radians about
// the local z axis.
func XrotZ(ang float64) *M6 {
	var e M3
	e.SetAa(0, 0, 1, ang)
	return Xrot(&e)
}

// XtransRotZYXEuler builds the fixed joint-to-body transform commonly used
// to describe a body's placement in a model description: a translation by
// pos followed by the Z-Y-X Euler rotation given by rpy (rpy.Z applied
// first about the world z axis, then rpy.Y about y, then rpy.X about x).
// The composition order is significant and is exercised by the package
// tests: Xrot(rpy.Z, z) * Xrot(rpy.Y, y) * Xrot(rpy.X, x) * Xtrans(pos).
func XtransRotZYXEuler(pos, rpy *V3) *M6 {
	xt := Xtrans(pos)
	rx := XrotX(rpy.X)
	ry := XrotY(rpy.Y)
	rz := XrotZ(rpy.Z)
	x := NewM6()
	x.Mult(rx, xt)
	x.Mult(ry, x)
	x.Mult(rz, x)
	return x
}

// InverseTransform returns the inverse of a spatial transform x of the
// canonical Plücker form [A 0; C A] (equal diagonal quadrants, as produced
// by every constructor in this file). For such a matrix the closed-form
// inverse is [Aᵀ 0; -Aᵀ*C*Aᵀ, Aᵀ]; this holds for any C, not just the
// -E*rx special case, since A*Aᵀ = I verifies X*X⁻¹ = I directly.
func InverseTransform(x *M6) *M6 {
	inv := &M6{}
	inv.Aa.Transpose(&x.Aa)
	inv.Ll.Set(&inv.Aa)
	var t M3
	inv.La.Mult(&inv.Aa, t.Mult(&x.La, &inv.Aa))
	inv.La.Scale(-1)
	return inv
}

// crossm returns the spatial cross-product operator for the motion vector
// v=(ω,υ), the standard Featherstone block form [ω× 0; υ× ω×] such that
// crossm(v)*w is the spatial cross product v ×m w used to build the bias
// acceleration term in the first ABA pass.
func crossm(v *V6) *M6 {
	x := &M6{}
	x.Aa.SetSkewSym(&v.Ang)
	x.Ll.Set(&x.Aa)
	x.La.SetSkewSym(&v.Lin)
	return x
}

// crossf returns the spatial cross-product operator for forces dual to v,
// crossf(v) = -crossm(v)ᵀ = [ω× υ×; 0 ω×], used to build the bias force
// term pA[i] in the first ABA pass.
func crossf(v *V6) *M6 {
	x := &M6{}
	x.Aa.SetSkewSym(&v.Ang)
	x.Ll.Set(&x.Aa)
	x.Al.SetSkewSym(&v.Lin)
	return x
}

// CrossMotion returns v ×m w, the spatial cross product of two motion
// vectors (used for v[i] ×m vJ in the velocity-propagation formula).
func CrossMotion(v, w *V6) *V6 {
	result := &V6{}
	return crossm(v).MultVec(result, w)
}

// CrossForce returns v ×f w, the spatial cross product of a motion vector
// v with a force vector w (used to build bias forces).
func CrossForce(v, w *V6) *V6 {
	result := &V6{}
	return crossf(v).MultVec(result, w)
}
