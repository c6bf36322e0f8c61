package parts

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("rigid_rear_frame", "Rigid rear frame with rear hub, saddle and steer head.",
		func(name string) (model.Component, error) {
			return NewRigidRearFrame(name), nil
		})
	model.RegisterModel("rigid_front_frame", "Rigid front frame (fork and handlebar) with steer head and front hub.",
		func(name string) (model.Component, error) {
			return NewRigidFrontFrame(name), nil
		})
}

// RigidRearFrame is the rear assembly of a bicycle as one rigid body. Its
// anchor is the rear hub attachment; the steer head attachment carries a
// frame tilted about the body y axis by the steer axis tilt.
type RigidRearFrame struct {
	model.Base
	body       *algebra.Body
	steerFrame *algebra.Frame

	rearHub, saddle, steerHead *model.Attachment

	// geometry, generated at the objects stage
	lam, l1, l2, d1, d2, hs *algebra.Symbol
}

// NewRigidRearFrame returns a rigid rear frame.
func NewRigidRearFrame(name string) *RigidRearFrame {
	f := &RigidRearFrame{Base: model.NewBase(name)}
	f.rearHub = f.NewAttachment("rear_hub")
	f.saddle = f.NewAttachment("saddle")
	f.steerHead = f.NewAttachment("steer_head")
	return f
}

func (f *RigidRearFrame) Body() *algebra.Body          { return f.body }
func (f *RigidRearFrame) RearHub() *model.Attachment   { return f.rearHub }
func (f *RigidRearFrame) Saddle() *model.Attachment    { return f.saddle }
func (f *RigidRearFrame) SteerHead() *model.Attachment { return f.steerHead }

func (f *RigidRearFrame) DefineObjects(ctx *model.Context) error {
	f.lam = ctx.Symbol(f, "lam", algebra.Constant)
	f.l1 = ctx.Symbol(f, "l1", algebra.Constant)
	f.l2 = ctx.Symbol(f, "l2", algebra.Constant)
	f.d1 = ctx.Symbol(f, "d1", algebra.Constant)
	f.d2 = ctx.Symbol(f, "d2", algebra.Constant)
	f.hs = ctx.Symbol(f, "hs", algebra.Constant)

	f.body = ctx.Engine.NewBody(f.Path())
	f.body.SetMass(ctx.Symbol(f, "m", algebra.Constant))
	f.body.SetInertia(
		ctx.Symbol(f, "ixx", algebra.Constant),
		ctx.Symbol(f, "iyy", algebra.Constant),
		ctx.Symbol(f, "izz", algebra.Constant),
	)
	f.AddBody(f.body)
	f.steerFrame = ctx.Engine.NewFrame(f.Path() + "_steer")

	if err := f.rearHub.Bind(ctx.Engine.NewPoint(f.Path()+"_rear_hub"), f.body.Frame()); err != nil {
		return err
	}
	if err := f.saddle.Bind(ctx.Engine.NewPoint(f.Path()+"_saddle"), f.body.Frame()); err != nil {
		return err
	}
	return f.steerHead.Bind(ctx.Engine.NewPoint(f.Path()+"_steer_head"), f.steerFrame)
}

func (f *RigidRearFrame) DefineKinematics(ctx *model.Context) error {
	bf := f.body.Frame()
	if err := f.steerFrame.Orient(bf, bf.Y(), f.lam); err != nil {
		return fmt.Errorf("rear frame %q: %w", f.Path(), err)
	}

	hub, err := f.rearHub.Point()
	if err != nil {
		return err
	}
	mcOff, err := bf.X().Scale(f.l1).Add(bf.Z().Scale(f.l2))
	if err != nil {
		return err
	}
	if err := f.body.Masscenter().SetPosition(hub, mcOff); err != nil {
		return fmt.Errorf("rear frame %q: %w", f.Path(), err)
	}

	head, err := f.steerHead.Point()
	if err != nil {
		return err
	}
	headOff, err := bf.X().Scale(f.d1).Add(bf.Z().Scale(f.d2))
	if err != nil {
		return err
	}
	if err := head.SetPosition(f.body.Masscenter(), headOff); err != nil {
		return fmt.Errorf("rear frame %q: %w", f.Path(), err)
	}

	sp, err := f.saddle.Point()
	if err != nil {
		return err
	}
	if err := sp.SetPosition(f.body.Masscenter(), bf.Z().Scale(f.hs)); err != nil {
		return fmt.Errorf("rear frame %q: %w", f.Path(), err)
	}
	return nil
}

// RigidFrontFrame is the fork and handlebar assembly as one rigid body. Its
// anchor is the steer head attachment, which exposes the body frame so a
// steer joint can rotate the whole assembly.
type RigidFrontFrame struct {
	model.Base
	body *algebra.Body

	steerHead, frontHub *model.Attachment

	e1, e2, f1, f2 *algebra.Symbol
}

// NewRigidFrontFrame returns a rigid front frame.
func NewRigidFrontFrame(name string) *RigidFrontFrame {
	f := &RigidFrontFrame{Base: model.NewBase(name)}
	f.steerHead = f.NewAttachment("steer_head")
	f.frontHub = f.NewAttachment("front_hub")
	return f
}

func (f *RigidFrontFrame) Body() *algebra.Body          { return f.body }
func (f *RigidFrontFrame) SteerHead() *model.Attachment { return f.steerHead }
func (f *RigidFrontFrame) FrontHub() *model.Attachment  { return f.frontHub }

func (f *RigidFrontFrame) DefineObjects(ctx *model.Context) error {
	f.e1 = ctx.Symbol(f, "e1", algebra.Constant)
	f.e2 = ctx.Symbol(f, "e2", algebra.Constant)
	f.f1 = ctx.Symbol(f, "f1", algebra.Constant)
	f.f2 = ctx.Symbol(f, "f2", algebra.Constant)

	f.body = ctx.Engine.NewBody(f.Path())
	f.body.SetMass(ctx.Symbol(f, "m", algebra.Constant))
	f.body.SetInertia(
		ctx.Symbol(f, "ixx", algebra.Constant),
		ctx.Symbol(f, "iyy", algebra.Constant),
		ctx.Symbol(f, "izz", algebra.Constant),
	)
	f.AddBody(f.body)

	if err := f.steerHead.Bind(ctx.Engine.NewPoint(f.Path()+"_steer_head"), f.body.Frame()); err != nil {
		return err
	}
	return f.frontHub.Bind(ctx.Engine.NewPoint(f.Path()+"_front_hub"), f.body.Frame())
}

func (f *RigidFrontFrame) DefineKinematics(ctx *model.Context) error {
	bf := f.body.Frame()
	head, err := f.steerHead.Point()
	if err != nil {
		return err
	}
	mcOff, err := bf.X().Scale(f.e1).Add(bf.Z().Scale(f.e2))
	if err != nil {
		return err
	}
	if err := f.body.Masscenter().SetPosition(head, mcOff); err != nil {
		return fmt.Errorf("front frame %q: %w", f.Path(), err)
	}

	hub, err := f.frontHub.Point()
	if err != nil {
		return err
	}
	hubOff, err := bf.X().Scale(f.f1).Add(bf.Z().Scale(f.f2))
	if err != nil {
		return err
	}
	if err := hub.SetPosition(f.body.Masscenter(), hubOff); err != nil {
		return fmt.Errorf("front frame %q: %w", f.Path(), err)
	}
	return nil
}
