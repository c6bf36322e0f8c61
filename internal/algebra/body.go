package algebra

import "fmt"

// Body is a rigid body: a body-fixed frame, a mass center point, a mass and
// a diagonal central inertia about the frame axes.
type Body struct {
	name       string
	frame      *Frame
	masscenter *Point
	mass       Expr
	inertia    [3]Expr // Ixx, Iyy, Izz about frame x, y, z
}

func (b *Body) Name() string       { return b.name }
func (b *Body) Frame() *Frame      { return b.frame }
func (b *Body) Masscenter() *Point { return b.masscenter }
func (b *Body) Mass() Expr         { return b.mass }
func (b *Body) Inertia() [3]Expr   { return b.inertia }

// SetMass sets the body mass symbol or expression.
func (b *Body) SetMass(m Expr) { b.mass = m }

// SetInertia sets the diagonal central inertia about the body frame axes.
func (b *Body) SetInertia(ixx, iyy, izz Expr) {
	b.inertia = [3]Expr{ixx, iyy, izz}
}

func (b *Body) validate() error {
	if b.frame == nil || b.masscenter == nil {
		return fmt.Errorf("algebra: body %q is missing frame or mass center", b.name)
	}
	if b.mass == nil {
		return fmt.Errorf("algebra: body %q has no mass", b.name)
	}
	return nil
}

// Load is a force applied at a point or a torque applied on a frame.
type Load struct {
	name   string
	point  *Point
	frame  *Frame
	force  Vector
	torque Vector
}

// NewForce builds a force load acting at p.
func NewForce(name string, p *Point, v Vector) Load {
	return Load{name: name, point: p, force: v}
}

// NewTorque builds a torque load acting on f.
func NewTorque(name string, f *Frame, v Vector) Load {
	return Load{name: name, frame: f, torque: v}
}

func (l Load) Name() string   { return l.name }
func (l Load) IsTorque() bool { return l.frame != nil }
func (l Load) Point() *Point  { return l.point }
func (l Load) Force() Vector  { return l.force }
func (l Load) Torque() Vector { return l.torque }

// Equation is a symbolic equation LHS = RHS, used for kinematic differential
// equations and motion constraints.
type Equation struct {
	LHS Expr
	RHS Expr
}

func (e Equation) String() string {
	return fmt.Sprintf("%s = %s", e.LHS, e.RHS)
}
