package joints

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterConnection("revolute",
		"Single-axis hinge: one coordinate, one speed, coincident points.")
}

// Axis selects a principal axis of the parent attachment frame.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) of(f *algebra.Frame) algebra.Vector {
	switch a {
	case AxisY:
		return f.Y()
	case AxisZ:
		return f.Z()
	default:
		return f.X()
	}
}

func (a Axis) String() string {
	switch a {
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "x"
	}
}

// Revolute hinges the child attachment to the parent attachment about one
// axis of the parent frame. It contributes one generalized coordinate, one
// generalized speed and the kinematic differential equation relating them,
// and keeps the two attachment points coincident.
type Revolute struct {
	model.ConnBase
	parent, child *model.Attachment
	axis          Axis
	torque        bool
	q, u          *algebra.Symbol
}

// RevoluteOption configures a revolute joint.
type RevoluteOption func(*Revolute)

// WithTorque adds an actuation torque about the joint axis, applied to the
// child frame with its reaction on the parent frame.
func WithTorque() RevoluteOption {
	return func(r *Revolute) { r.torque = true }
}

// NewRevolute builds a revolute joint between two attachments. The axis is
// taken from the parent attachment frame.
func NewRevolute(name string, parent, child *model.Attachment, axis Axis, opts ...RevoluteOption) (*Revolute, error) {
	cb, err := model.NewConn(name, parent, child)
	if err != nil {
		return nil, err
	}
	r := &Revolute{ConnBase: cb, parent: parent, child: child, axis: axis}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Coordinate returns the joint angle symbol, available after kinematics.
func (r *Revolute) Coordinate() *algebra.Symbol { return r.q }

// Speed returns the joint rate symbol, available after kinematics.
func (r *Revolute) Speed() *algebra.Symbol { return r.u }

func (r *Revolute) DefineKinematics(ctx *model.Context) error {
	pf, err := r.parent.Frame()
	if err != nil {
		return err
	}
	cf, err := r.child.Frame()
	if err != nil {
		return err
	}
	pp, err := r.parent.Point()
	if err != nil {
		return err
	}
	cp, err := r.child.Point()
	if err != nil {
		return err
	}

	r.q = ctx.Symbol(r, "q", algebra.Coordinate)
	r.u = ctx.Symbol(r, "u", algebra.Speed)

	ax := r.axis.of(pf)
	if err := cf.Orient(pf, ax, r.q); err != nil {
		return fmt.Errorf("revolute %q: %w", r.Path(), err)
	}
	cf.SetAngularVelocity(pf, ax.Scale(r.u))
	if err := cp.SetPosition(pp, algebra.ZeroVector(pf)); err != nil {
		return fmt.Errorf("revolute %q: %w", r.Path(), err)
	}
	r.AddKinematicEquation(algebra.Equation{LHS: r.q, RHS: r.u})
	return nil
}

func (r *Revolute) DefineLoads(ctx *model.Context) error {
	if !r.torque {
		return nil
	}
	pf, err := r.parent.Frame()
	if err != nil {
		return err
	}
	cf, err := r.child.Frame()
	if err != nil {
		return err
	}
	t := ctx.Symbol(r, "T", algebra.Constant)
	ax := r.axis.of(pf)
	r.AddLoad(algebra.NewTorque(r.Path()+"_act", cf, ax.Scale(t)))
	r.AddLoad(algebra.NewTorque(r.Path()+"_react", pf, ax.Scale(algebra.Neg(t))))
	return nil
}
