package parts

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/joints"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("bicycle", "Bicycle: rear and front frame, two wheels, steer and axle joints.",
		func(name string) (model.Component, error) {
			return NewBicycle(name)
		})
}

// Bicycle composes a rear frame, a front frame and two wheels with a steer
// joint and two axle joints. Without ground the rear frame is fixed in the
// world and only the joints move; with ground the chassis gains planar
// position, yaw and roll freedom and both wheels roll without slip.
type Bicycle struct {
	model.Base
	rear       *RigidRearFrame
	front      *RigidFrontFrame
	rearWheel  WheelModel
	frontWheel WheelModel
	ground     *FlatGround

	steer, rearAxle, frontAxle *joints.Revolute

	yawFrame, rollFrame *algebra.Frame
	trackPoint          *algebra.Point
}

// BicycleOption configures a bicycle.
type BicycleOption func(*Bicycle)

// WithRearWheel swaps the default knife-edge rear wheel.
func WithRearWheel(w WheelModel) BicycleOption {
	return func(b *Bicycle) { b.rearWheel = w }
}

// WithFrontWheel swaps the default knife-edge front wheel.
func WithFrontWheel(w WheelModel) BicycleOption {
	return func(b *Bicycle) { b.frontWheel = w }
}

// WithGround puts the bicycle on a ground plane with rolling tyres instead
// of fixing the rear frame in the world.
func WithGround(g *FlatGround) BicycleOption {
	return func(b *Bicycle) { b.ground = g }
}

// NewBicycle composes a bicycle from its parts.
func NewBicycle(name string, opts ...BicycleOption) (*Bicycle, error) {
	b := &Bicycle{
		Base:  model.NewBase(name),
		rear:  NewRigidRearFrame("rear_frame"),
		front: NewRigidFrontFrame("front_frame"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rearWheel == nil {
		b.rearWheel = NewKnifeEdgeWheel("rear_wheel")
	}
	if b.frontWheel == nil {
		b.frontWheel = NewKnifeEdgeWheel("front_wheel")
	}

	isWheel := func(c model.Component) error {
		if _, ok := c.(WheelModel); !ok {
			return fmt.Errorf("%q does not satisfy the wheel contract", c.Name())
		}
		return nil
	}
	b.Require(
		model.Requirement{Role: "rear_frame", Description: "Rear frame assembly.", Hard: true},
		model.Requirement{Role: "front_frame", Description: "Front fork and handlebar assembly.", Hard: true},
		model.Requirement{Role: "rear_wheel", Description: "Rear wheel.", Hard: true, Check: isWheel},
		model.Requirement{Role: "front_wheel", Description: "Front wheel.", Hard: true, Check: isWheel},
		model.Requirement{Role: "ground", Description: "Optional ground plane for rolling tyres."},
	)

	if err := b.Attach("rear_frame", b.rear); err != nil {
		return nil, err
	}
	if err := b.Attach("front_frame", b.front); err != nil {
		return nil, err
	}
	if err := b.Attach("rear_wheel", b.rearWheel); err != nil {
		return nil, err
	}
	if err := b.Attach("front_wheel", b.frontWheel); err != nil {
		return nil, err
	}
	if b.ground != nil {
		if err := b.Attach("ground", b.ground); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// RearFrame returns the rear frame part.
func (b *Bicycle) RearFrame() *RigidRearFrame { return b.rear }

// FrontFrame returns the front frame part.
func (b *Bicycle) FrontFrame() *RigidFrontFrame { return b.front }

// Saddle returns the rear frame's saddle attachment, for seat connections.
func (b *Bicycle) Saddle() *model.Attachment { return b.rear.Saddle() }

// Steer returns the steer joint, available after the connections stage.
func (b *Bicycle) Steer() *joints.Revolute { return b.steer }

func (b *Bicycle) DefineConnections(*model.Context) error {
	var err error
	b.steer, err = joints.NewRevolute("steer", b.rear.SteerHead(), b.front.SteerHead(), joints.AxisZ)
	if err != nil {
		return err
	}
	if err := b.AddConnection(b.steer); err != nil {
		return err
	}
	b.rearAxle, err = joints.NewRevolute("rear_axle", b.rear.RearHub(), b.rearWheel.Hub(), joints.AxisY)
	if err != nil {
		return err
	}
	if err := b.AddConnection(b.rearAxle); err != nil {
		return err
	}
	b.frontAxle, err = joints.NewRevolute("front_axle", b.front.FrontHub(), b.frontWheel.Hub(), joints.AxisY)
	if err != nil {
		return err
	}
	if err := b.AddConnection(b.frontAxle); err != nil {
		return err
	}

	if b.ground == nil {
		return nil
	}
	rt, err := joints.NewNonHolonomicTyre("rear_tyre",
		b.ground.Contact("rear"), b.rearWheel.Tread(), b.ground, b.rearWheel)
	if err != nil {
		return err
	}
	if err := b.AddConnection(rt); err != nil {
		return err
	}
	ft, err := joints.NewNonHolonomicTyre("front_tyre",
		b.ground.Contact("front"), b.frontWheel.Tread(), b.ground, b.frontWheel)
	if err != nil {
		return err
	}
	return b.AddConnection(ft)
}

func (b *Bicycle) DefineKinematics(ctx *model.Context) error {
	if b.ground == nil {
		return b.fixInWorld(ctx)
	}
	return b.placeOnGround(ctx)
}

// fixInWorld anchors the rear frame rigidly: only the joints move.
func (b *Bicycle) fixInWorld(ctx *model.Context) error {
	n := ctx.World()
	if err := b.rear.Body().Frame().Weld(n); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}
	hub, err := b.rear.RearHub().Point()
	if err != nil {
		return err
	}
	if err := hub.SetPosition(ctx.Origin(), algebra.ZeroVector(n)); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}
	return nil
}

// placeOnGround gives the chassis planar position, yaw and roll freedom,
// carrying the rear hub one wheel radius above a tracking point on the
// ground plane.
func (b *Bicycle) placeOnGround(ctx *model.Context) error {
	n := ctx.World()

	qx := ctx.Symbol(b, "qx", algebra.Coordinate)
	qy := ctx.Symbol(b, "qy", algebra.Coordinate)
	qyaw := ctx.Symbol(b, "qyaw", algebra.Coordinate)
	qroll := ctx.Symbol(b, "qroll", algebra.Coordinate)
	ux := ctx.Symbol(b, "ux", algebra.Speed)
	uy := ctx.Symbol(b, "uy", algebra.Speed)
	uyaw := ctx.Symbol(b, "uyaw", algebra.Speed)
	uroll := ctx.Symbol(b, "uroll", algebra.Speed)

	b.yawFrame = ctx.Engine.NewFrame(b.Path() + "_yaw")
	if err := b.yawFrame.Orient(n, n.Z(), qyaw); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}
	b.yawFrame.SetAngularVelocity(n, n.Z().Scale(uyaw))

	b.rollFrame = ctx.Engine.NewFrame(b.Path() + "_roll")
	if err := b.rollFrame.Orient(b.yawFrame, b.yawFrame.X(), qroll); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}
	b.rollFrame.SetAngularVelocity(b.yawFrame, b.yawFrame.X().Scale(uroll))

	if err := b.rear.Body().Frame().Weld(b.rollFrame); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}

	b.trackPoint = ctx.Engine.NewPoint(b.Path() + "_track")
	track, err := n.X().Scale(qx).Add(n.Y().Scale(qy))
	if err != nil {
		return err
	}
	if err := b.trackPoint.SetPosition(ctx.Origin(), track); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}
	trackVel, err := n.X().Scale(ux).Add(n.Y().Scale(uy))
	if err != nil {
		return err
	}
	b.trackPoint.SetVelocity(n, trackVel)

	hub, err := b.rear.RearHub().Point()
	if err != nil {
		return err
	}
	lift := b.rollFrame.Z().Scale(b.rearWheel.Radius())
	if err := hub.SetPosition(b.trackPoint, lift); err != nil {
		return fmt.Errorf("bicycle %q: %w", b.Path(), err)
	}

	for _, qu := range [][2]*algebra.Symbol{
		{qx, ux}, {qy, uy}, {qyaw, uyaw}, {qroll, uroll},
	} {
		b.AddKinematicEquation(algebra.Equation{LHS: qu[0], RHS: qu[1]})
	}
	return nil
}

func (b *Bicycle) DefineLoads(ctx *model.Context) error {
	g := ctx.Symbol(b, "g", algebra.Constant)
	n := ctx.World()
	for _, body := range []*algebra.Body{
		b.rear.Body(), b.front.Body(), b.rearWheel.Body(), b.frontWheel.Body(),
	} {
		weight := n.Z().Scale(algebra.Neg(algebra.Mul(body.Mass(), g)))
		b.AddLoad(algebra.NewForce(body.Name()+"_gravity", body.Masscenter(), weight))
	}
	return nil
}
