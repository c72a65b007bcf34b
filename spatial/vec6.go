// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package spatial

// Vec6 holds the Plücker spatial vector: a pairing of an angular 3-vector
// with a linear 3-vector. The same layout represents motion vectors
// (angular velocity/acceleration, linear velocity/acceleration) and force
// vectors (moment, force); the two are dual under the spatial dot product.

// V6 is a 6 element spatial vector. Indices 0-2 (Ang) carry the angular
// part, indices 3-5 (Lin) the linear part.
type V6 struct {
	Ang V3 // angular half: omega for motion, moment/torque for force.
	Lin V3 // linear half: velocity for motion, force for force.
}

// NewV6 creates a new, all zero, spatial vector.
func NewV6() *V6 { return &V6{} }

// NewV6S creates a new spatial vector from its angular and linear halves.
func NewV6S(ang, lin V3) *V6 { return &V6{ang, lin} }

// Eq (==) returns true if each element in v has the same value as the
// corresponding element in a.
func (v *V6) Eq(a *V6) bool { return v.Ang.Eq(&a.Ang) && v.Lin.Eq(&a.Lin) }

// Aeq (~=) almost-equals returns true if all the elements in v have
// essentially the same value as the corresponding elements in a.
func (v *V6) Aeq(a *V6) bool { return v.Ang.Aeq(&a.Ang) && v.Lin.Aeq(&a.Lin) }

// Set (=, copy) sets v to have the same values as a. The updated v is returned.
func (v *V6) Set(a *V6) *V6 {
	v.Ang.Set(&a.Ang)
	v.Lin.Set(&a.Lin)
	return v
}

// Add (+) adds spatial vectors a and b storing the result in v.
// Vector v may be used as one or both of the parameters.
func (v *V6) Add(a, b *V6) *V6 {
	v.Ang.Add(&a.Ang, &b.Ang)
	v.Lin.Add(&a.Lin, &b.Lin)
	return v
}

// Sub (-) subtracts b from a storing the result in v.
// Vector v may be used as one or both of the parameters.
func (v *V6) Sub(a, b *V6) *V6 {
	v.Ang.Sub(&a.Ang, &b.Ang)
	v.Lin.Sub(&a.Lin, &b.Lin)
	return v
}

// Scale (*=) updates v to be a scaled by the given scalar value.
func (v *V6) Scale(a *V6, s float64) *V6 {
	v.Ang.Scale(&a.Ang, s)
	v.Lin.Scale(&a.Lin, s)
	return v
}

// Dot returns the spatial scalar product of v with a. For a motion vector
// dotted with a force vector this is the power the force exerts on the
// motion; the formula is the same regardless of which operand is which
// since both halves pair elementwise: v.Ang.Dot(a.Ang) + v.Lin.Dot(a.Lin).
func (v *V6) Dot(a *V6) float64 { return v.Ang.Dot(&a.Ang) + v.Lin.Dot(&a.Lin) }

// Spatial returns the spatial motion vector (0,0,0, gx,gy,gz) for a pure
// linear quantity such as gravity: spec §4.4 pass 3 initialization.
func Spatial(lin *V3) *V6 { return &V6{V3{}, *lin} }
