package model

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
)

// Component is the capability set shared by sub-models and connections: the
// assembler dispatches on this interface (plus the optional stage hooks)
// only. Concrete components obtain it by embedding [Base] or [ConnBase].
type Component interface {
	Name() string
	Path() string
	Stage() Stage

	treeNode() *node
}

// Optional stage hooks. A concrete component implements the hooks whose
// stage it contributes to; the assembler discovers them by type assertion.
type (
	// ConnectionsDefiner declares connections between children's attachments.
	// Structure only: no symbolic state may be created or read here.
	ConnectionsDefiner interface {
		DefineConnections(ctx *Context) error
	}

	// ObjectsDefiner creates the component's own bodies, frames and symbols.
	// It may not read any other component's state.
	ObjectsDefiner interface {
		DefineObjects(ctx *Context) error
	}

	// KinematicsDefiner establishes orientations, velocities and positions.
	// It may read any component's objects, which exist tree-wide by then.
	KinematicsDefiner interface {
		DefineKinematics(ctx *Context) error
	}

	// LoadsDefiner creates forces and torques on already-defined bodies.
	LoadsDefiner interface {
		DefineLoads(ctx *Context) error
	}

	// ConstraintsDefiner adds motion constraints beyond what connections
	// contribute.
	ConstraintsDefiner interface {
		DefineConstraints(ctx *Context) error
	}
)

// node carries the tree and lifecycle state shared by both component
// families. The parent reference is used for path computation and cycle
// checks only; ownership always flows parent to child.
type node struct {
	name         string
	parent       *node
	children     []Component
	roles        map[string]Component
	connections  []Component
	attachments  map[string]*Attachment
	attOrder     []string
	requirements []Requirement
	isConn       bool
	claims       []*Attachment
	stage        Stage

	bodies       []*algebra.Body
	loads        []algebra.Load
	kinematics   []algebra.Equation
	nonholonomic []algebra.Equation
}

func (n *node) Name() string { return n.name }
func (n *node) Stage() Stage { return n.stage }

// treeNode gives the assembler access to the embedded node. The name must
// not collide with the embedded field, which would shadow the method.
func (n *node) treeNode() *node { return n }

// Path returns the dot-joined chain of names from the root.
func (n *node) Path() string { return n.path() }

func (n *node) path() string {
	if n.parent == nil {
		return n.name
	}
	return n.parent.path() + "." + n.name
}

func (n *node) root() *node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// AddBody records a body owned by this component.
func (n *node) AddBody(b *algebra.Body) { n.bodies = append(n.bodies, b) }

// AddLoad records a load owned by this component.
func (n *node) AddLoad(l algebra.Load) { n.loads = append(n.loads, l) }

// AddKinematicEquation records a kinematic differential equation.
func (n *node) AddKinematicEquation(eq algebra.Equation) {
	n.kinematics = append(n.kinematics, eq)
}

// AddNonholonomic records a nonholonomic motion constraint.
func (n *node) AddNonholonomic(eq algebra.Equation) {
	n.nonholonomic = append(n.nonholonomic, eq)
}

func (n *node) Bodies() []*algebra.Body { return n.bodies }

func (n *node) Loads() []algebra.Load { return n.loads }

func (n *node) KinematicEquations() []algebra.Equation { return n.kinematics }

func (n *node) NonholonomicEquations() []algebra.Equation { return n.nonholonomic }

// Base is the sub-model family: a named node owning children, declared
// attachments and requirements. Concrete sub-models embed Base and implement
// the stage hooks they need.
type Base struct {
	node
}

// NewBase returns a sub-model node with the given name. The name must be a
// valid identifier; it becomes a segment of symbol-scoping paths.
func NewBase(name string) Base {
	mustValidName(name)
	return Base{node: node{
		name:        name,
		roles:       make(map[string]Component),
		attachments: make(map[string]*Attachment),
	}}
}

// Attach adds child under the given role name. A child belongs to at most
// one parent, sibling names and roles are unique, and attachment may not
// close a cycle; violations fail with ErrStructural before any stage runs.
func (b *Base) Attach(role string, child Component) error {
	if child == nil {
		return fmt.Errorf("%w: attach nil child to %q", ErrStructural, b.path())
	}
	if !validName(role) {
		return fmt.Errorf("%w: invalid role name %q", ErrStructural, role)
	}
	cn := child.treeNode()
	if cn == &b.node {
		return fmt.Errorf("%w: cannot attach %q to itself", ErrStructural, b.path())
	}
	if cn.isConn {
		return fmt.Errorf("%w: %q is a connection; use AddConnection", ErrStructural, cn.name)
	}
	if cn.parent != nil {
		return fmt.Errorf("%w: %q is already attached under %q", ErrStructural, cn.name, cn.parent.path())
	}
	for a := &b.node; a != nil; a = a.parent {
		if a == cn {
			return fmt.Errorf("%w: attaching %q under %q would create a cycle", ErrStructural, cn.name, b.path())
		}
	}
	if _, dup := b.roles[role]; dup {
		return fmt.Errorf("%w: role %q already filled on %q", ErrStructural, role, b.path())
	}
	for _, sib := range b.children {
		if sib.Name() == cn.name {
			return fmt.Errorf("%w: sibling name %q already used under %q", ErrStructural, cn.name, b.path())
		}
	}
	if len(b.requirements) > 0 {
		req, ok := b.requirement(role)
		if !ok {
			return fmt.Errorf("%w: %q declares no role %q", ErrStructural, b.path(), role)
		}
		if req.Check != nil {
			if err := req.Check(child); err != nil {
				return fmt.Errorf("%w: role %q of %q: %v", ErrStructural, role, b.path(), err)
			}
		}
	}
	cn.parent = &b.node
	b.children = append(b.children, child)
	b.roles[role] = child
	return nil
}

// Child returns the child filling a role, or nil.
func (b *Base) Child(role string) Component { return b.roles[role] }

// Children returns the children in attachment order.
func (b *Base) Children() []Component { return b.children }

// Connections returns the connections declared on this node, in declaration
// order.
func (b *Base) Connections() []Component { return b.connections }

// NewAttachment declares a named attachment point. Declaring the same name
// twice returns the existing attachment.
func (b *Base) NewAttachment(name string) *Attachment {
	if a, ok := b.attachments[name]; ok {
		return a
	}
	a := &Attachment{owner: &b.node, name: name}
	b.attachments[name] = a
	b.attOrder = append(b.attOrder, name)
	return a
}

// Attachment returns a declared attachment by name.
func (b *Base) Attachment(name string) (*Attachment, error) {
	a, ok := b.attachments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no attachment %q", ErrStructural, b.path(), name)
	}
	return a, nil
}

// Attachments returns the declared attachments in declaration order.
func (b *Base) Attachments() []*Attachment {
	out := make([]*Attachment, 0, len(b.attOrder))
	for _, name := range b.attOrder {
		out = append(out, b.attachments[name])
	}
	return out
}

// Require declares the child roles this sub-model accepts. Once any
// requirement is declared, Attach only accepts declared roles.
func (b *Base) Require(reqs ...Requirement) {
	b.requirements = append(b.requirements, reqs...)
}

func (b *Base) requirement(role string) (Requirement, bool) {
	for _, r := range b.requirements {
		if r.Role == role {
			return r, true
		}
	}
	return Requirement{}, false
}

// AddConnection registers a connection declared by this node. Every
// attachment the connection claims must belong to a sub-model already in
// this node's tree.
func (b *Base) AddConnection(conn Component) error {
	if conn == nil {
		return fmt.Errorf("%w: register nil connection on %q", ErrStructural, b.path())
	}
	cn := conn.treeNode()
	if !cn.isConn {
		return fmt.Errorf("%w: %q is not a connection", ErrStructural, cn.name)
	}
	if cn.parent != nil {
		return fmt.Errorf("%w: connection %q is already registered under %q",
			ErrStructural, cn.name, cn.parent.path())
	}
	root := b.node.root()
	for _, att := range cn.claims {
		if att.owner.root() != root {
			return fmt.Errorf("%w: connection %q claims attachment %q of %q, which is not in the tree of %q",
				ErrStructural, cn.name, att.name, att.owner.path(), b.path())
		}
	}
	cn.parent = &b.node
	b.connections = append(b.connections, conn)
	return nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func mustValidName(name string) {
	if !validName(name) {
		panic(fmt.Sprintf("model: %q is not a valid component name", name))
	}
}
