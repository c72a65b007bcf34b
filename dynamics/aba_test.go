// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

import (
	"testing"

	"github.com/gazed/rbd/spatial"
)

func gravityModel() *Model {
	m := NewModel()
	m.SetGravity(spatial.V3{Y: -9.81})
	return m
}

func addChainBody(t *testing.T, m *Model, parent int, dx float64, joint Joint, com, inertia spatial.V3) int {
	t.Helper()
	xt := spatial.Xtrans(&spatial.V3{X: dx})
	body := NewBody(1, com, inertia)
	id, err := m.AddBody(parent, xt, joint, body)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

// S1: single body on revolute-z at the origin.
func TestScenarioS1(t *testing.T) {
	m := gravityModel()
	addChainBody(t, m, 0, 0, RevoluteZ(), spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})

	qddot, err := ForwardDynamics(m, []float64{0}, []float64{0}, []float64{0})
	if err != nil {
		t.Fatal(err)
	}
	if qddot[0] != -4.905 {
		t.Errorf("got %v want -4.905", qddot[0])
	}
}

// S2: single body with a non-trivial spatial inertia.
func TestScenarioS2(t *testing.T) {
	m := gravityModel()
	addChainBody(t, m, 0, 0, RevoluteZ(), spatial.V3{X: 1.5, Y: 1, Z: 1}, spatial.V3{X: 1, Y: 2, Z: 3})

	qddot, err := ForwardDynamics(m, []float64{0}, []float64{0}, []float64{0})
	if err != nil {
		t.Fatal(err)
	}
	if !spatial.AeqTol(qddot[0], -2.3544, 1e-14) {
		t.Errorf("got %v want -2.3544", qddot[0])
	}
}

// S3: two-body serial chain, both revolute-z.
func TestScenarioS3(t *testing.T) {
	m := gravityModel()
	com, inertia := spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1}
	a := addChainBody(t, m, 0, 0, RevoluteZ(), com, inertia)
	addChainBody(t, m, a, 1, RevoluteZ(), com, inertia)

	q := []float64{0, 0}
	qddot, err := ForwardDynamics(m, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-5.886, 3.924}
	for i := range want {
		if !spatial.AeqTol(qddot[i], want[i], 1e-14) {
			t.Errorf("qddot[%d]: got %v want %v", i, qddot[i], want[i])
		}
	}
}

// S4: three-body serial chain, each link as in S3.
func TestScenarioS4(t *testing.T) {
	m := gravityModel()
	com, inertia := spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1}
	a := addChainBody(t, m, 0, 0, RevoluteZ(), com, inertia)
	b := addChainBody(t, m, a, 1, RevoluteZ(), com, inertia)
	addChainBody(t, m, b, 1, RevoluteZ(), com, inertia)

	q := []float64{0, 0, 0}
	qddot, err := ForwardDynamics(m, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-6.03692307692308, 3.77307692307692, 1.50923076923077}
	for i := range want {
		if !spatial.AeqTol(qddot[i], want[i], 1e-14) {
			t.Errorf("qddot[%d]: got %v want %v", i, qddot[i], want[i])
		}
	}
}

// S5: two-body 3D chain, body_a revolute-z, body_b revolute-y.
func TestScenarioS5(t *testing.T) {
	m := gravityModel()
	a := addChainBody(t, m, 0, 0, RevoluteZ(), spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})
	addChainBody(t, m, a, 1, RevoluteY(), spatial.V3{Y: 1}, spatial.V3{X: 1, Y: 1, Z: 1})

	q := []float64{0, 0}
	qddot, err := ForwardDynamics(m, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-3.924, 0.0}
	for i := range want {
		if !spatial.AeqTol(qddot[i], want[i], 1e-14) {
			t.Errorf("qddot[%d]: got %v want %v", i, qddot[i], want[i])
		}
	}
}

// S6: tree of 5 bodies, topology from the original TestCalcDynamicSimpleTree3D.
func TestScenarioS6(t *testing.T) {
	m := gravityModel()

	bodyA := NewBody(1, spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})
	a, err := m.AddBody(0, spatial.Xtrans(&spatial.V3{}), RevoluteZ(), bodyA)
	if err != nil {
		t.Fatal(err)
	}

	bodyB1 := NewBody(1, spatial.V3{Y: 1}, spatial.V3{X: 1, Y: 1, Z: 1})
	b1, err := m.AddBody(a, spatial.Xtrans(&spatial.V3{X: 1}), RevoluteY(), bodyB1)
	if err != nil {
		t.Fatal(err)
	}

	bodyC1 := NewBody(1, spatial.V3{Z: 1}, spatial.V3{X: 1, Y: 1, Z: 1})
	if _, err := m.AddBody(b1, spatial.Xtrans(&spatial.V3{Y: 1}), RevoluteX(), bodyC1); err != nil {
		t.Fatal(err)
	}

	bodyB2 := NewBody(1, spatial.V3{Y: 1}, spatial.V3{X: 1, Y: 1, Z: 1})
	b2, err := m.AddBody(a, spatial.Xtrans(&spatial.V3{X: -0.5}), RevoluteY(), bodyB2)
	if err != nil {
		t.Fatal(err)
	}

	bodyC2 := NewBody(1, spatial.V3{Z: 1}, spatial.V3{X: 1, Y: 1, Z: 1})
	if _, err := m.AddBody(b2, spatial.Xtrans(&spatial.V3{Y: -0.5}), RevoluteX(), bodyC2); err != nil {
		t.Fatal(err)
	}

	q := make([]float64, 5)
	qddot, err := ForwardDynamics(m, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		-1.60319066147860, -0.534396887159533, 4.10340466926070,
		0.267198443579767, 5.30579766536965,
	}
	for i := range want {
		if !spatial.AeqTol(qddot[i], want[i], 1e-14) {
			t.Errorf("qddot[%d]: got %v want %v", i, qddot[i], want[i])
		}
	}
}

// S7: floating base with one revolute-z body at (2,0,0), tau=(1,).
func TestScenarioS7(t *testing.T) {
	m := gravityModel()
	m.SetFloatingBase(true)
	if err := m.SetFloatingBody(NewBody(1, spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddBody(0, spatial.Xtrans(&spatial.V3{X: 2}), RevoluteZ(),
		NewBody(1, spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})); err != nil {
		t.Fatal(err)
	}

	xB := spatial.XtransRotZYXEuler(&spatial.V3{}, &spatial.V3{})
	qddot, aB, err := ForwardDynamicsFloatingBase(m, []float64{0}, []float64{0}, []float64{1}, xB, spatial.V6{}, spatial.V6{})
	if err != nil {
		t.Fatal(err)
	}

	var xbInv spatial.M6
	xbInv = *spatial.InverseTransform(xB)
	var aWorld spatial.V6
	xbInv.MultVec(&aWorld, &aB)

	wantAWorld := spatial.V6{Ang: spatial.V3{Z: -1}, Lin: spatial.V3{Y: -8.81}}
	if !aWorld.Aeq(&wantAWorld) {
		t.Errorf("a_world: got %+v want %+v", aWorld, wantAWorld)
	}
	if !spatial.AeqTol(qddot[0], 2.0, 1e-14) {
		t.Errorf("qddot[0]: got %v want 2.0", qddot[0])
	}
}

// Spec §8 invariant 6: floating-base free fall. With no joints, only the
// base, and zero tau/v_B/f_B, a_B in world frame equals (0,0,0, 0,-9.81,0)
// regardless of X_B's rotation.
func TestFloatingBaseFreeFall(t *testing.T) {
	m := gravityModel()
	m.SetFloatingBase(true)
	if err := m.SetFloatingBody(NewBody(1, spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})); err != nil {
		t.Fatal(err)
	}

	for _, rotX := range []float64{0, 0.8, spatial.PI / 3} {
		xB := spatial.XtransRotZYXEuler(&spatial.V3{}, &spatial.V3{X: rotX})
		_, aB, err := ForwardDynamicsFloatingBase(m, nil, nil, nil, xB, spatial.V6{}, spatial.V6{})
		if err != nil {
			t.Fatal(err)
		}
		var xbInv spatial.M6
		xbInv = *spatial.InverseTransform(xB)
		var aWorld spatial.V6
		xbInv.MultVec(&aWorld, &aB)

		want := spatial.V6{Lin: spatial.V3{Y: -9.81}}
		if !aWorld.Aeq(&want) {
			t.Errorf("rotX=%v: a_world got %+v want %+v", rotX, aWorld, want)
		}
	}
}

// Spec §8 invariant 5: two calls with identical inputs yield bit-identical
// qddot.
func TestDeterminism(t *testing.T) {
	build := func() (*Model, int) {
		m := gravityModel()
		com, inertia := spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1}
		a := addChainBody(t, m, 0, 0, RevoluteZ(), com, inertia)
		addChainBody(t, m, a, 1, RevoluteZ(), com, inertia)
		return m, 2
	}

	m1, n := build()
	m2, _ := build()
	q := make([]float64, n)

	out1, err := ForwardDynamics(m1, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := ForwardDynamics(m2, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Errorf("qddot[%d] not bit-identical: %v vs %v", i, out1[i], out2[i])
		}
	}
}

func TestForwardDynamicsDimensionMismatch(t *testing.T) {
	m := gravityModel()
	addChainBody(t, m, 0, 0, RevoluteZ(), spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})

	if _, err := ForwardDynamics(m, []float64{0, 0}, []float64{0}, []float64{0}); err == nil {
		t.Error("expected a dimension mismatch error")
	}
}

// A zero-mass body attached through a Fixed joint (the combination of
// example.cc's zero-mass body_c and ArticulatedFigureTests.cc's
// Fixed-jointed endeffector) should contribute nothing to the chain's
// dynamics: qddot for the driven body must match S1 exactly, and the
// fixed body's own qddot slot is always zero.
func TestFixedJointZeroMassEndEffector(t *testing.T) {
	m := gravityModel()
	trunk := addChainBody(t, m, 0, 0, RevoluteZ(), spatial.V3{X: 1}, spatial.V3{X: 1, Y: 1, Z: 1})

	xt := spatial.Xtrans(&spatial.V3{X: 1})
	endEffector := NewBody(0, spatial.V3{X: 0.5}, spatial.V3{})
	eeID, err := m.AddBody(trunk, xt, NewFixedJoint(), endEffector)
	if err != nil {
		t.Fatal(err)
	}
	if eeID != 2 {
		t.Fatalf("expected end effector id 2, got %d", eeID)
	}

	q := []float64{0, 0}
	qddot, err := ForwardDynamics(m, q, q, q)
	if err != nil {
		t.Fatal(err)
	}
	if !spatial.AeqTol(qddot[0], -4.905, 1e-14) {
		t.Errorf("trunk qddot: got %v want -4.905 (S1 unchanged by a zero-mass fixed attachment)", qddot[0])
	}
	if qddot[1] != 0 {
		t.Errorf("fixed joint qddot: got %v want 0", qddot[1])
	}
}
