// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// model.go is the kinematic tree: per spec §9's design note, it is kept as
// an arena of parallel slices indexed by body id rather than a
// pointer-linked tree. Body id 0 is a sentinel/root placeholder (spec
// §3.4); AddBody only ever appends, so id order is already the topological
// order the ABA passes in aba.go require.

import (
	"fmt"

	"github.com/gazed/rbd/spatial"
)

// Model holds one kinematic tree plus the per-step scratch state ABA reads
// and writes. All slices are parallel and share length N()+1 outside of a
// call to AddBody (spec §3.4 invariant). A Model is reusable across many
// ForwardDynamics/ForwardDynamicsFloatingBase calls. Those calls do not
// grow the model's slices, but each call allocates its returned qddot
// slice, and the spatial helpers it uses return newly allocated values.
type Model struct {
	lambda []int    // parent body id, lambda[0] undefined.
	joints []Joint  // per-body joint descriptor.
	bodies []Body   // per-body mass properties.
	inertI []spatial.M6 // per-body spatial rigid-body inertia, fixed at AddBody.
	s      []spatial.V6 // per-body motion subspace (constant for 1-dof joints).

	q, qdot, qddot, tau []float64 // scalar joint state, 1-dof joints only.

	xT     []spatial.M6 // constant parent-frame -> joint-frame transform.
	xLambda []spatial.M6 // X_lambda: parent -> this body, this step.
	xBase  []spatial.M6 // X_base: world -> this body, this step.

	v, a, c []spatial.V6 // spatial velocity, acceleration, velocity bias.
	ia      []spatial.M6 // articulated-body inertia (ABA scratch).
	pa      []spatial.V6 // bias force, a spatial force vector (ABA scratch).
	u       []spatial.V6 // U[i]: articulated inertia projected onto S[i].
	d, uu   []float64    // d[i], u[i]: ABA per-joint scalars.
	fExt    []spatial.V6 // externally applied spatial force, body frame.

	gravity spatial.V3

	floatingBase bool
	floatingBody *Body
	floatingI    spatial.M6
}

// NewModel returns an initialized, empty Model: equivalent to calling
// Init on a zero-value Model.
func NewModel() *Model {
	m := &Model{}
	m.Init()
	return m
}

// Init resets the Model to an empty tree: N=0 and every parallel slice
// holds only the body-0 sentinel (spec §3.4, §6).
func (m *Model) Init() {
	m.lambda = []int{0}
	m.joints = []Joint{{}}
	m.bodies = []Body{{}}
	m.inertI = []spatial.M6{{}}
	m.s = []spatial.V6{{}}

	m.q = []float64{0}
	m.qdot = []float64{0}
	m.qddot = []float64{0}
	m.tau = []float64{0}

	m.xT = []spatial.M6{{}}
	m.xLambda = []spatial.M6{{}}
	m.xBase = []spatial.M6{{}}

	m.v = []spatial.V6{{}}
	m.a = []spatial.V6{{}}
	m.c = []spatial.V6{{}}
	m.ia = []spatial.M6{{}}
	m.pa = []spatial.V6{{}}
	m.u = []spatial.V6{{}}
	m.d = []float64{0}
	m.uu = []float64{0}
	m.fExt = []spatial.V6{{}}

	m.floatingBase = false
	m.floatingBody = nil
	m.floatingI = spatial.M6{}
}

// N returns the number of real bodies in the tree (not counting the body-0
// sentinel). For a floating-base model this is the number of non-base
// joints: body 0 is the free base and never consumes a q slot.
func (m *Model) N() int { return len(m.lambda) - 1 }

// SetFloatingBase marks whether body 0 is to be treated as a free 6-dof
// base by ForwardDynamicsFloatingBase (spec §3.4).
func (m *Model) SetFloatingBase(floating bool) { m.floatingBase = floating }

// FloatingBase reports whether the model is configured for a floating base.
func (m *Model) FloatingBase() bool { return m.floatingBase }

// SetGravity sets the constant gravity vector used by the forward-dynamics
// recursions (spec §3.4).
func (m *Model) SetGravity(g spatial.V3) { m.gravity = g }

// Gravity returns the model's gravity vector.
func (m *Model) Gravity() spatial.V3 { return m.gravity }

// SetFloatingBody installs the mass properties of the free base payload.
// It fails if the model was not configured with SetFloatingBase(true).
func (m *Model) SetFloatingBody(body Body) error {
	if !m.floatingBase {
		return fmt.Errorf("dynamics: SetFloatingBody requires floating_base=true: %w", ErrUndefinedJoint)
	}
	m.floatingBody = &body
	m.floatingI = *body.spatialInertia()
	return nil
}

// AddBody appends one node to the tree: parent_id identifies the already-
// present body this one attaches to, xT is the constant transform from the
// parent's frame to this body's joint frame, joint describes the degree
// of freedom connecting it to the parent, and body carries its mass
// properties. AddBody returns the new body's id (spec §4.3).
//
// Every parallel slice grows by exactly one element; all per-step fields
// are zeroed, including f_ext, so a freshly added body starts with no
// residual scratch state from a prior build.
func (m *Model) AddBody(parentID int, xT *spatial.M6, joint Joint, body Body) (int, error) {
	if parentID < 0 || parentID > m.N() {
		return 0, fmt.Errorf("dynamics: AddBody parent %d (tree has %d bodies): %w", parentID, m.N(), ErrInvalidParent)
	}
	if joint.Kind == Undefined {
		return 0, fmt.Errorf("dynamics: AddBody with undefined joint: %w", ErrUndefinedJoint)
	}

	newID := len(m.lambda)
	m.lambda = append(m.lambda, parentID)
	m.joints = append(m.joints, joint)
	m.bodies = append(m.bodies, body)
	m.inertI = append(m.inertI, *body.spatialInertia())
	m.s = append(m.s, joint.mJointAxis)

	m.q = append(m.q, 0)
	m.qdot = append(m.qdot, 0)
	m.qddot = append(m.qddot, 0)
	m.tau = append(m.tau, 0)

	var xt spatial.M6
	if xT != nil {
		xt = *xT
	}
	m.xT = append(m.xT, xt)
	m.xLambda = append(m.xLambda, spatial.M6{})
	m.xBase = append(m.xBase, spatial.M6{})

	m.v = append(m.v, spatial.V6{})
	m.a = append(m.a, spatial.V6{})
	m.c = append(m.c, spatial.V6{})
	m.ia = append(m.ia, spatial.M6{})
	m.pa = append(m.pa, spatial.V6{})
	m.u = append(m.u, spatial.V6{})
	m.d = append(m.d, 0)
	m.uu = append(m.uu, 0)
	m.fExt = append(m.fExt, spatial.V6{})

	return newID, nil
}

// SetExternalForce sets the externally applied spatial force on body id,
// expressed in that body's own frame (spec §3.4, §9).
func (m *Model) SetExternalForce(id int, f spatial.V6) {
	m.fExt[id] = f
}

// Parent returns the parent id of body id (lambda[id]).
func (m *Model) Parent(id int) int { return m.lambda[id] }

// Joint returns the joint descriptor for body id.
func (m *Model) Joint(id int) Joint { return m.joints[id] }

// Body returns the mass-property descriptor for body id.
func (m *Model) Body(id int) Body { return m.bodies[id] }

// Velocity returns the spatial velocity computed for body id by the most
// recent forward-dynamics call (ABA scratch, spec §9).
func (m *Model) Velocity(id int) spatial.V6 { return m.v[id] }

// Acceleration returns the spatial acceleration computed for body id by
// the most recent forward-dynamics call (ABA scratch, spec §9).
func (m *Model) Acceleration(id int) spatial.V6 { return m.a[id] }

// ArticulatedInertia returns IA[id], the articulated-body inertia
// accumulated at body id by the most recent forward-dynamics call.
func (m *Model) ArticulatedInertia(id int) spatial.M6 { return m.ia[id] }

// BiasForce returns pA[id], the bias force accumulated at body id by the
// most recent forward-dynamics call.
func (m *Model) BiasForce(id int) spatial.V6 { return m.pa[id] }
