// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// aba.go implements Featherstone's Articulated Body Algorithm: the O(N)
// forward-dynamics recursion of spec §4.4 (fixed base) and §4.6 (floating
// base). Both variants share the same three-pass shape; only how body 0
// is seeded and solved differs, so passOneBody/passTwoBody below are
// shared and the two entry points only handle the root specially.

import (
	"fmt"
	"math"

	"github.com/gazed/rbd/spatial"
)

// ForwardDynamics computes joint accelerations qddot for a fixed-base
// model given joint positions q, velocities qdot, and applied torques tau,
// each of length model.N() (spec §4.4, §6). The model's scratch arrays
// (X_lambda, X_base, v, a, c, IA, pA, U, d, u) are left populated with the
// intermediates of this call for inspection (spec §9).
func ForwardDynamics(m *Model, q, qdot, tau []float64) ([]float64, error) {
	n := m.N()
	if len(q) != n || len(qdot) != n || len(tau) != n {
		return nil, fmt.Errorf("dynamics: ForwardDynamics len(q)=%d len(qdot)=%d len(tau)=%d want %d: %w",
			len(q), len(qdot), len(tau), n, ErrDimensionMismatch)
	}
	m.loadState(q, qdot, tau)
	m.xBase[0] = *spatial.NewM6I()

	for i := 1; i <= n; i++ {
		if err := m.passOneBody(i); err != nil {
			return nil, err
		}
	}
	for i := n; i >= 1; i-- {
		if err := m.passTwoBody(i); err != nil {
			return nil, err
		}
	}

	neg := spatial.V3{X: -m.gravity.X, Y: -m.gravity.Y, Z: -m.gravity.Z}
	m.a[0] = *spatial.Spatial(&neg)
	for i := 1; i <= n; i++ {
		m.passThreeBody(i)
	}

	return m.finishQddot(n)
}

// ForwardDynamicsFloatingBase computes joint accelerations qddot and base
// acceleration a_B for a model whose body 0 is a free 6-dof base (spec
// §4.6, §6). q, qdot, tau have length model.N(), the non-base joints; xB
// is the world-to-base transform, vB the base's spatial velocity, and fB
// an external spatial force on the base, all in base frame (spec §9).
func ForwardDynamicsFloatingBase(m *Model, q, qdot, tau []float64, xB *spatial.M6, vB, fB spatial.V6) ([]float64, spatial.V6, error) {
	n := m.N()
	if len(q) != n || len(qdot) != n || len(tau) != n {
		return nil, spatial.V6{}, fmt.Errorf("dynamics: ForwardDynamicsFloatingBase len(q)=%d len(qdot)=%d len(tau)=%d want %d: %w",
			len(q), len(qdot), len(tau), n, ErrDimensionMismatch)
	}
	if !m.floatingBase {
		return nil, spatial.V6{}, fmt.Errorf("dynamics: ForwardDynamicsFloatingBase on a model with floating_base=false: %w", ErrDimensionMismatch)
	}
	m.loadState(q, qdot, tau)
	m.xBase[0] = *xB
	m.v[0] = vB

	for i := 1; i <= n; i++ {
		if err := m.passOneBody(i); err != nil {
			return nil, spatial.V6{}, err
		}
	}

	if m.floatingBody != nil {
		m.ia[0] = m.floatingI
	} else {
		m.ia[0] = spatial.M6{}
	}
	var iaV0 spatial.V6
	m.ia[0].MultVec(&iaV0, &vB)
	m.pa[0] = *spatial.CrossForce(&vB, &iaV0)

	for i := n; i >= 1; i-- {
		if err := m.passTwoBody(i); err != nil {
			return nil, spatial.V6{}, err
		}
	}

	var xbT spatial.M6
	xbT.Transpose(xB)
	var fTerm spatial.V6
	xbT.MultVec(&fTerm, &fB)
	fTerm.Scale(&fTerm, -1)
	m.pa[0].Add(&m.pa[0], &fTerm)

	neg := spatial.V3{X: -m.gravity.X, Y: -m.gravity.Y, Z: -m.gravity.Z}
	gWorld := spatial.Spatial(&neg)
	var gBase spatial.V6
	xB.MultVec(&gBase, gWorld)
	var iaGBase spatial.V6
	m.ia[0].MultVec(&iaGBase, &gBase)

	var rhs spatial.V6
	rhs.Add(&m.pa[0], &iaGBase)
	rhs.Scale(&rhs, -1)

	aB, err := solve6(&m.ia[0], &rhs)
	if err != nil {
		return nil, spatial.V6{}, err
	}
	// Pass 3 uses the same convention as the fixed base: a[0] carries the
	// fictitious -gravity offset, so seed it with a_B + X_B*(-g).
	m.a[0].Add(aB, &gBase)

	for i := 1; i <= n; i++ {
		m.passThreeBody(i)
	}

	qddot, err := m.finishQddot(n)
	if err != nil {
		return nil, spatial.V6{}, err
	}
	return qddot, *aB, nil
}

// loadState copies the caller's q/qdot/tau into the model's 1-indexed
// scratch slices.
func (m *Model) loadState(q, qdot, tau []float64) {
	copy(m.q[1:], q)
	copy(m.qdot[1:], qdot)
	copy(m.tau[1:], tau)
}

// passOneBody performs ABA pass 1 (spec §4.4) for body i: it computes the
// joint transform/subspace/bias via jcalc, the step's X_lambda/X_base,
// the body's spatial velocity v[i] and bias acceleration c[i], and seeds
// IA[i]/pA[i] from the body's own spatial inertia and velocity.
func (m *Model) passOneBody(i int) error {
	joint := &m.joints[i]
	xJ, s, vJ, cJ, err := jcalc(joint, m.q[i], m.qdot[i])
	if err != nil {
		return err
	}
	m.s[i] = *s

	m.xLambda[i].Mult(xJ, &m.xT[i])
	parent := m.lambda[i]
	m.xBase[i].Mult(&m.xLambda[i], &m.xBase[parent])

	m.xLambda[i].MultVec(&m.v[i], &m.v[parent])
	m.v[i].Add(&m.v[i], vJ)

	vxvJ := spatial.CrossMotion(&m.v[i], vJ)
	m.c[i].Add(cJ, vxvJ)

	m.ia[i] = m.inertI[i]

	var iv spatial.V6
	m.inertI[i].MultVec(&iv, &m.v[i])
	biasVel := spatial.CrossForce(&m.v[i], &iv)

	var invXBaseT spatial.M6
	invXBaseT.Transpose(spatial.InverseTransform(&m.xBase[i]))
	var fTerm spatial.V6
	invXBaseT.MultVec(&fTerm, &m.fExt[i])

	m.pa[i].Sub(biasVel, &fTerm)
	return nil
}

// passTwoBody performs ABA pass 2 (spec §4.4) for body i: it computes
// U[i], d[i], u[i], and, unless i's parent is the root placeholder,
// folds body i's articulated inertia and bias force into its parent's.
// A Fixed joint has zero degrees of freedom, so its motion subspace is
// the zero vector, d[i] is identically zero, and there is no rank-1
// term to subtract: the body's articulated inertia and bias force pass
// to the parent unreduced.
func (m *Model) passTwoBody(i int) error {
	joint := &m.joints[i]
	s := &m.s[i]
	m.ia[i].MultVec(&m.u[i], s)
	m.d[i] = s.Dot(&m.u[i])
	m.uu[i] = m.tau[i] - s.Dot(&m.pa[i])

	parent := m.lambda[i]

	if joint.Kind == Fixed {
		if parent == 0 && !m.floatingBase {
			return nil
		}
		var xlT spatial.M6
		xlT.Transpose(&m.xLambda[i])
		var tmp, contrib spatial.M6
		tmp.Mult(&xlT, &m.ia[i])
		contrib.Mult(&tmp, &m.xLambda[i])
		m.ia[parent].Add(&m.ia[parent], &contrib)

		var paContrib spatial.V6
		xlT.MultVec(&paContrib, &m.pa[i])
		m.pa[parent].Add(&m.pa[parent], &paContrib)
		return nil
	}

	if math.Abs(m.d[i]) < spatial.SingularTolerance {
		return fmt.Errorf("dynamics: ABA pass 2 body %d |d|=%g: %w", i, m.d[i], ErrSingularArticulatedInertia)
	}

	if parent == 0 && !m.floatingBase {
		return nil
	}

	var outer spatial.M6
	outer.SetOuter(&m.u[i], 1/m.d[i])
	var ia spatial.M6
	ia.Sub(&m.ia[i], &outer)

	var iaC spatial.V6
	ia.MultVec(&iaC, &m.c[i])
	var scaledU spatial.V6
	scaledU.Scale(&m.u[i], m.uu[i]/m.d[i])
	var pa spatial.V6
	pa.Add(&m.pa[i], &iaC)
	pa.Add(&pa, &scaledU)

	var xlT spatial.M6
	xlT.Transpose(&m.xLambda[i])
	var tmp, contrib spatial.M6
	tmp.Mult(&xlT, &ia)
	contrib.Mult(&tmp, &m.xLambda[i])
	m.ia[parent].Add(&m.ia[parent], &contrib)

	var paContrib spatial.V6
	xlT.MultVec(&paContrib, &pa)
	m.pa[parent].Add(&m.pa[parent], &paContrib)
	return nil
}

// passThreeBody performs ABA pass 3 (spec §4.4) for body i: it propagates
// the parent's acceleration down through X_lambda[i], solves qddot[i],
// and updates a[i]. A Fixed joint has no qddot to solve for: a[i] is
// just the parent's acceleration carried through X_lambda[i] and c[i].
func (m *Model) passThreeBody(i int) {
	parent := m.lambda[i]
	var aPrime spatial.V6
	m.xLambda[i].MultVec(&aPrime, &m.a[parent])
	aPrime.Add(&aPrime, &m.c[i])

	if m.joints[i].Kind == Fixed {
		m.qddot[i] = 0
		m.a[i] = aPrime
		return
	}

	m.qddot[i] = (m.uu[i] - m.u[i].Dot(&aPrime)) / m.d[i]

	var sq spatial.V6
	sq.Scale(&m.s[i], m.qddot[i])
	m.a[i].Add(&aPrime, &sq)
}

// finishQddot copies qddot[1:n+1] out of the model's scratch slice,
// surfacing any NaN/Inf as ErrNonFiniteResult (spec §7) rather than
// returning it silently.
func (m *Model) finishQddot(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 1; i <= n; i++ {
		v := m.qddot[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("dynamics: qddot[%d]=%v: %w", i, v, ErrNonFiniteResult)
		}
		out[i-1] = v
	}
	return out, nil
}

// Jcalc exposes the joint-kinematics computation of spec §4.2/§6 for body
// i of model at the given scalar state, without mutating the model.
func Jcalc(m *Model, i int, q, qdot float64) (xJ *spatial.M6, s, vJ, c *spatial.V6, err error) {
	joint := m.joints[i]
	return jcalc(&joint, q, qdot)
}
