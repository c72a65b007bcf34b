// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// solve.go is the one place this engine needs a general dense linear
// solve rather than a closed-form spatial-algebra inverse: IA[0], the
// floating base's accumulated articulated-body inertia, is a generic
// dense symmetric 6x6 (not a Plücker transform with the [E 0; C E]
// structure spatial.InverseTransform exploits), so solving IA[0]*a_B=rhs
// for the base acceleration (spec §4.6) is handed to gonum's mat package,
// the dense-numeric backend the spec's §6 "math backend" collaborator
// contract calls for.

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gazed/rbd/spatial"
)

// solve6 solves A*x = b for x, where A is a general 6x6 spatial matrix
// (expected to be symmetric positive semi-definite, as an articulated-body
// inertia is) and b a spatial vector. It reports
// ErrSingularArticulatedInertia if A cannot be inverted.
func solve6(a *spatial.M6, b *spatial.V6) (*spatial.V6, error) {
	dense := mat.NewDense(6, 6, []float64{
		a.Aa.Xx, a.Aa.Xy, a.Aa.Xz, a.Al.Xx, a.Al.Xy, a.Al.Xz,
		a.Aa.Yx, a.Aa.Yy, a.Aa.Yz, a.Al.Yx, a.Al.Yy, a.Al.Yz,
		a.Aa.Zx, a.Aa.Zy, a.Aa.Zz, a.Al.Zx, a.Al.Zy, a.Al.Zz,
		a.La.Xx, a.La.Xy, a.La.Xz, a.Ll.Xx, a.Ll.Xy, a.Ll.Xz,
		a.La.Yx, a.La.Yy, a.La.Yz, a.Ll.Yx, a.Ll.Yy, a.Ll.Yz,
		a.La.Zx, a.La.Zy, a.La.Zz, a.Ll.Zx, a.Ll.Zy, a.Ll.Zz,
	})
	rhs := mat.NewVecDense(6, []float64{b.Ang.X, b.Ang.Y, b.Ang.Z, b.Lin.X, b.Lin.Y, b.Lin.Z})

	var x mat.VecDense
	if err := x.SolveVec(dense, rhs); err != nil {
		return nil, fmt.Errorf("dynamics: solving floating-base articulated inertia: %w (%v)", ErrSingularArticulatedInertia, err)
	}
	return &spatial.V6{
		Ang: spatial.V3{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)},
		Lin: spatial.V3{X: x.AtVec(3), Y: x.AtVec(4), Z: x.AtVec(5)},
	}, nil
}
