// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

import (
	"errors"
	"testing"

	"github.com/gazed/rbd/spatial"
)

func TestNewJointRevoluteSubspace(t *testing.T) {
	j := RevoluteZ()
	want := spatial.V6{Ang: spatial.V3{Z: 1}}
	if !j.mJointAxis.Eq(&want) {
		t.Errorf("got %+v want %+v", j.mJointAxis, want)
	}
}

func TestNewJointPrismaticSubspace(t *testing.T) {
	j := PrismaticX()
	want := spatial.V6{Lin: spatial.V3{X: 1}}
	if !j.mJointAxis.Eq(&want) {
		t.Errorf("got %+v want %+v", j.mJointAxis, want)
	}
}

func TestJcalcFixedIsIdentity(t *testing.T) {
	j := NewFixedJoint()
	xJ, s, vJ, c, err := jcalc(&j, 1.23, 4.56)
	if err != nil {
		t.Fatal(err)
	}
	if !xJ.Eq(spatial.M6I) {
		t.Errorf("fixed joint transform should be identity, got %+v", xJ)
	}
	if !s.Eq(&spatial.V6{}) || !vJ.Eq(&spatial.V6{}) || !c.Eq(&spatial.V6{}) {
		t.Error("fixed joint should contribute no motion subspace, velocity, or bias")
	}
}

func TestJcalcUndefinedErrors(t *testing.T) {
	j := Joint{}
	if _, _, _, _, err := jcalc(&j, 0, 0); !errors.Is(err, ErrUndefinedJoint) {
		t.Errorf("got %v want ErrUndefinedJoint", err)
	}
}

// Jcalc spot-check from spec §8: at q=π/2 the revolute-z joint transform
// is the given 6x6 rotation block, v_J=(0,0,1,0,0,0) at qdot=1, and
// S=(0,0,1,0,0,0).
func TestJcalcRevoluteZSpotCheck(t *testing.T) {
	j := RevoluteZ()
	xJ, s, vJ, _, err := jcalc(&j, spatial.PI/2, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := &spatial.M6{
		Aa: spatial.M3{0, 1, 0, -1, 0, 0, 0, 0, 1},
		Ll: spatial.M3{0, 1, 0, -1, 0, 0, 0, 0, 1},
	}
	if !xJ.Aeq(want) {
		t.Errorf("X_J: got %+v want %+v", xJ, want)
	}

	wantS := &spatial.V6{Ang: spatial.V3{Z: 1}}
	if !s.Eq(wantS) {
		t.Errorf("S: got %+v want %+v", s, wantS)
	}

	wantVJ := &spatial.V6{Ang: spatial.V3{Z: 1}}
	if !vJ.Aeq(wantVJ) {
		t.Errorf("v_J: got %+v want %+v", vJ, wantVJ)
	}
}

func TestJcalcRevoluteZIdentityAtZero(t *testing.T) {
	j := RevoluteZ()
	xJ, _, _, _, err := jcalc(&j, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !aeqTol6(xJ, spatial.M6I, 1e-16) {
		t.Errorf("X_J at q=0 should be identity within 1e-16, got %+v", xJ)
	}
}

func aeqTol6(m, a *spatial.M6, tol float64) bool {
	return aeqTol3(&m.Aa, &a.Aa, tol) && aeqTol3(&m.Al, &a.Al, tol) &&
		aeqTol3(&m.La, &a.La, tol) && aeqTol3(&m.Ll, &a.Ll, tol)
}

func aeqTol3(m, a *spatial.M3, tol float64) bool {
	return spatial.AeqTol(m.Xx, a.Xx, tol) && spatial.AeqTol(m.Xy, a.Xy, tol) && spatial.AeqTol(m.Xz, a.Xz, tol) &&
		spatial.AeqTol(m.Yx, a.Yx, tol) && spatial.AeqTol(m.Yy, a.Yy, tol) && spatial.AeqTol(m.Yz, a.Yz, tol) &&
		spatial.AeqTol(m.Zx, a.Zx, tol) && spatial.AeqTol(m.Zy, a.Zy, tol) && spatial.AeqTol(m.Zz, a.Zz, tol)
}
