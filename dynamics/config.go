// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package dynamics

// config.go loads a kinematic tree description from YAML, the way the
// teacher engine loads its asset manifests (vu/assets.go) with
// gopkg.in/yaml.v3. The engine itself never touches a file: BuildModel
// takes an already-decoded ModelDoc and drives the same AddBody calls a
// caller would otherwise write by hand.

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gazed/rbd/spatial"
)

// Vec3Doc is the YAML shape of a 3-vector: [x, y, z].
type Vec3Doc [3]float64

func (v Vec3Doc) v3() spatial.V3 { return spatial.V3{X: v[0], Y: v[1], Z: v[2]} }

// JointDoc is the YAML shape of a joint: kind is one of "revolute",
// "prismatic", or "fixed"; axis is ignored for "fixed".
type JointDoc struct {
	Kind string  `yaml:"kind"`
	Axis Vec3Doc `yaml:"axis"`
}

func (j JointDoc) joint() (Joint, error) {
	switch j.Kind {
	case "revolute":
		return NewJoint(Revolute, j.Axis.v3()), nil
	case "prismatic":
		return NewJoint(Prismatic, j.Axis.v3()), nil
	case "fixed":
		return NewFixedJoint(), nil
	default:
		return Joint{}, fmt.Errorf("dynamics: unknown joint kind %q: %w", j.Kind, ErrUndefinedJoint)
	}
}

// BodyDoc is the YAML shape of a body's mass properties.
type BodyDoc struct {
	Mass    float64 `yaml:"mass"`
	Com     Vec3Doc `yaml:"com"`
	Inertia Vec3Doc `yaml:"inertia"`
}

func (b BodyDoc) body() Body { return NewBody(b.Mass, b.Com.v3(), b.Inertia.v3()) }

// NodeDoc is the YAML shape of one AddBody call: Parent is the body id of
// an already-declared node (node i of Bodies is body id i+1, and 0 means
// the tree root), Pos/Rpy describe the constant
// parent-to-joint-frame transform via XtransRotZYXEuler.
type NodeDoc struct {
	Parent int      `yaml:"parent"`
	Pos    Vec3Doc  `yaml:"pos"`
	Rpy    Vec3Doc  `yaml:"rpy"`
	Joint  JointDoc `yaml:"joint"`
	Body   BodyDoc  `yaml:"body"`
}

// ModelDoc is the YAML shape of a complete kinematic tree description.
type ModelDoc struct {
	Gravity      Vec3Doc   `yaml:"gravity"`
	FloatingBase bool      `yaml:"floating_base"`
	FloatingBody *BodyDoc  `yaml:"floating_body,omitempty"`
	Bodies       []NodeDoc `yaml:"bodies"`
}

// ParseModelDoc decodes a ModelDoc from YAML bytes.
func ParseModelDoc(data []byte) (*ModelDoc, error) {
	doc := &ModelDoc{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("dynamics: parsing model document: %w", err)
	}
	return doc, nil
}

// BuildModel constructs a Model from a decoded ModelDoc, issuing the same
// Init/SetGravity/SetFloatingBase/AddBody calls a caller would make by
// hand (spec §3.5). Node i in doc.Bodies becomes body id i+1; NodeDoc's
// Parent field is a body id directly (0 for the root).
func BuildModel(doc *ModelDoc) (*Model, error) {
	m := NewModel()
	m.SetGravity(doc.Gravity.v3())
	m.SetFloatingBase(doc.FloatingBase)

	if doc.FloatingBody != nil {
		if err := m.SetFloatingBody(doc.FloatingBody.body()); err != nil {
			return nil, err
		}
	}

	for idx, node := range doc.Bodies {
		joint, err := node.Joint.joint()
		if err != nil {
			return nil, fmt.Errorf("dynamics: body %d: %w", idx+1, err)
		}
		xT := spatial.XtransRotZYXEuler(ptr(node.Pos.v3()), ptr(node.Rpy.v3()))
		if _, err := m.AddBody(node.Parent, xT, joint, node.Body.body()); err != nil {
			return nil, fmt.Errorf("dynamics: body %d: %w", idx+1, err)
		}
	}
	return m, nil
}

func ptr[T any](v T) *T { return &v }
