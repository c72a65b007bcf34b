// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package spatial

// Mat6 holds the 6x6 spatial matrices: Plücker transforms, spatial
// rigid-body inertias, and the articulated-body inertia accumulated by the
// second pass of the articulated body algorithm. Rather than unroll 36
// scalar fields, a spatial matrix is kept as 4 M3 quadrants:
//
//	[ Aa Al ]
//	[ La Ll ]
//
// which mirrors the way the algorithm itself is always described: in terms
// of the angular/linear split, never as a flat 6x6. All the block formulas
// below (Mult, Transpose, MultVec) reduce to exactly the formulas for
// ordinary 2x2 block-matrix algebra with M3 standing in for the scalar.

// M6 is a 6x6 matrix expressed as four 3x3 quadrants.
type M6 struct {
	Aa, Al M3 // angular-angular, angular-linear
	La, Ll M3 // linear-angular, linear-linear
}

// M6Z provides a reference zero matrix that can be used in calculations.
// It should never be changed.
var M6Z = &M6{}

// M6I provides a reference identity matrix that can be used in calculations.
// It should never be changed.
var M6I = &M6{Aa: *NewM3I(), Ll: *NewM3I()}

// Eq (==) returns true if all the elements in matrix m have the same value
// as the corresponding elements in matrix a.
func (m *M6) Eq(a *M6) bool {
	return m.Aa.Eq(&a.Aa) && m.Al.Eq(&a.Al) && m.La.Eq(&a.La) && m.Ll.Eq(&a.Ll)
}

// Aeq (~=) almost-equals returns true if all the elements in matrix m have
// essentially the same value as the corresponding elements in matrix a.
func (m *M6) Aeq(a *M6) bool {
	return m.Aa.Aeq(&a.Aa) && m.Al.Aeq(&a.Al) && m.La.Aeq(&a.La) && m.Ll.Aeq(&a.Ll)
}

// Set (=, copy) sets m to have the same values as a. The updated matrix m
// is returned.
func (m *M6) Set(a *M6) *M6 {
	m.Aa.Set(&a.Aa)
	m.Al.Set(&a.Al)
	m.La.Set(&a.La)
	m.Ll.Set(&a.Ll)
	return m
}

// Add (+) adds matrices a and b storing the results in m.
// It is safe to use the calling matrix m as one or both of the parameters.
func (m *M6) Add(a, b *M6) *M6 {
	m.Aa.Add(&a.Aa, &b.Aa)
	m.Al.Add(&a.Al, &b.Al)
	m.La.Add(&a.La, &b.La)
	m.Ll.Add(&a.Ll, &b.Ll)
	return m
}

// Sub (-) subtracts matrix b from a storing the results in m.
// It is safe to use the calling matrix m as one or both of the parameters.
func (m *M6) Sub(a, b *M6) *M6 {
	m.Aa.Sub(&a.Aa, &b.Aa)
	m.Al.Sub(&a.Al, &b.Al)
	m.La.Sub(&a.La, &b.La)
	m.Ll.Sub(&a.Ll, &b.Ll)
	return m
}

// Scale (*) sets m to matrix a with each element multiplied by the given scalar.
func (m *M6) Scale(a *M6, s float64) *M6 {
	m.Aa.Set(&a.Aa).Scale(s)
	m.Al.Set(&a.Al).Scale(s)
	m.La.Set(&a.La).Scale(s)
	m.Ll.Set(&a.Ll).Scale(s)
	return m
}

// Mult (*) multiplies matrices l and r storing the results in m, using the
// standard 2x2 block-matrix product with M3 quadrants standing in for
// scalars. It is safe to use the calling matrix m as one or both of the
// parameters.
func (m *M6) Mult(l, r *M6) *M6 {
	var t1, t2 M3
	aa := *t1.Mult(&l.Aa, &r.Aa)
	aa.Add(&aa, t2.Mult(&l.Al, &r.La))
	al := *t1.Mult(&l.Aa, &r.Al)
	al.Add(&al, t2.Mult(&l.Al, &r.Ll))
	la := *t1.Mult(&l.La, &r.Aa)
	la.Add(&la, t2.Mult(&l.Ll, &r.La))
	ll := *t1.Mult(&l.La, &r.Al)
	ll.Add(&ll, t2.Mult(&l.Ll, &r.Ll))
	m.Aa, m.Al, m.La, m.Ll = aa, al, la, ll
	return m
}

// Transpose updates m to be the transpose of matrix a: each quadrant is
// itself transposed, and the off-diagonal quadrants swap places.
// The input matrix a is not changed.
func (m *M6) Transpose(a *M6) *M6 {
	var aa, al, la, ll M3
	aa.Transpose(&a.Aa)
	al.Transpose(&a.La)
	la.Transpose(&a.Al)
	ll.Transpose(&a.Ll)
	m.Aa, m.Al, m.La, m.Ll = aa, al, la, ll
	return m
}

// MultVec updates v to be the multiplication of matrix m and spatial
// column vector cv. Vector v may be used as the input vector cv.
func (m *M6) MultVec(v, cv *V6) *V6 {
	var ang, lin, t V3
	ang.Add(ang.MultMv(&m.Aa, &cv.Ang), t.MultMv(&m.Al, &cv.Lin))
	lin.Add(lin.MultMv(&m.La, &cv.Ang), t.MultMv(&m.Ll, &cv.Lin))
	v.Ang, v.Lin = ang, lin
	return v
}

// MultTVec updates v to be the multiplication of the transpose of matrix m
// with spatial column vector cv, without materializing the transpose.
func (m *M6) MultTVec(v, cv *V6) *V6 {
	var ang, lin, t1, t2 V3
	ang.Add(ang.MultvM(&cv.Ang, &m.Aa), t1.MultvM(&cv.Lin, &m.La))
	lin.Add(lin.MultvM(&cv.Ang, &m.Al), t2.MultvM(&cv.Lin, &m.Ll))
	v.Ang, v.Lin = ang, lin
	return v
}

// SetOuter sets m to be the spatial outer product v*vᵀ scaled by s. Used to
// build the rank-1 correction U*Uᵀ/d subtracted from the articulated
// inertia during the second ABA pass.
func (m *M6) SetOuter(v *V6, s float64) *M6 {
	outer3(&m.Aa, &v.Ang, &v.Ang, s)
	outer3(&m.Al, &v.Ang, &v.Lin, s)
	outer3(&m.La, &v.Lin, &v.Ang, s)
	outer3(&m.Ll, &v.Lin, &v.Lin, s)
	return m
}

// outer3 sets m to be the outer product a*bᵀ scaled by s.
func outer3(m *M3, a, b *V3, s float64) *M3 {
	m.Xx, m.Xy, m.Xz = a.X*b.X*s, a.X*b.Y*s, a.X*b.Z*s
	m.Yx, m.Yy, m.Yz = a.Y*b.X*s, a.Y*b.Y*s, a.Y*b.Z*s
	m.Zx, m.Zy, m.Zz = a.Z*b.X*s, a.Z*b.Y*s, a.Z*b.Z*s
	return m
}

// ============================================================================
// convenience functions for allocating matrices. Nothing else should allocate.

// NewM6 creates a new, all zero, 6x6 spatial matrix.
func NewM6() *M6 { return &M6{} }

// NewM6I creates a new 6x6 spatial identity matrix.
func NewM6I() *M6 { return &M6{Aa: *NewM3I(), Ll: *NewM3I()} }
