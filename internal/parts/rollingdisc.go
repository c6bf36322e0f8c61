package parts

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/joints"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("rolling_disc", "Knife-edge disc rolling without slip on flat ground.",
		func(name string) (model.Component, error) {
			return NewRollingDisc(name)
		})
}

// RollingDisc is the classic benchmark composite: a knife-edge wheel on flat
// ground, free to move in the plane, yaw, roll and spin, with a nonholonomic
// tyre enforcing rolling without slip. Five coordinates, five speeds, two
// velocity constraints.
type RollingDisc struct {
	model.Base
	disc   *KnifeEdgeWheel
	ground *FlatGround
	tyre   *joints.NonHolonomicTyre

	yawFrame, rollFrame *algebra.Frame
	groundPoint         *algebra.Point
}

// NewRollingDisc returns a rolling disc over flat ground.
func NewRollingDisc(name string) (*RollingDisc, error) {
	d := &RollingDisc{
		Base:   model.NewBase(name),
		disc:   NewKnifeEdgeWheel("disc"),
		ground: NewFlatGround("ground"),
	}
	if err := d.Attach("disc", d.disc); err != nil {
		return nil, err
	}
	if err := d.Attach("ground", d.ground); err != nil {
		return nil, err
	}
	return d, nil
}

// Disc returns the wheel part.
func (d *RollingDisc) Disc() *KnifeEdgeWheel { return d.disc }

// Ground returns the ground part.
func (d *RollingDisc) Ground() *FlatGround { return d.ground }

func (d *RollingDisc) DefineConnections(*model.Context) error {
	tyre, err := joints.NewNonHolonomicTyre("tyre",
		d.ground.Contact("disc"), d.disc.Tread(), d.ground, d.disc)
	if err != nil {
		return err
	}
	d.tyre = tyre
	return d.AddConnection(tyre)
}

func (d *RollingDisc) DefineKinematics(ctx *model.Context) error {
	n := ctx.World()

	qx := ctx.Symbol(d, "qx", algebra.Coordinate)
	qy := ctx.Symbol(d, "qy", algebra.Coordinate)
	qyaw := ctx.Symbol(d, "qyaw", algebra.Coordinate)
	qroll := ctx.Symbol(d, "qroll", algebra.Coordinate)
	qspin := ctx.Symbol(d, "qspin", algebra.Coordinate)
	ux := ctx.Symbol(d, "ux", algebra.Speed)
	uy := ctx.Symbol(d, "uy", algebra.Speed)
	uyaw := ctx.Symbol(d, "uyaw", algebra.Speed)
	uroll := ctx.Symbol(d, "uroll", algebra.Speed)
	uspin := ctx.Symbol(d, "uspin", algebra.Speed)

	// Orientation chain world -> yaw -> roll -> disc.
	d.yawFrame = ctx.Engine.NewFrame(d.Path() + "_yaw")
	if err := d.yawFrame.Orient(n, n.Z(), qyaw); err != nil {
		return fmt.Errorf("rolling disc %q: %w", d.Path(), err)
	}
	d.yawFrame.SetAngularVelocity(n, n.Z().Scale(uyaw))

	d.rollFrame = ctx.Engine.NewFrame(d.Path() + "_roll")
	if err := d.rollFrame.Orient(d.yawFrame, d.yawFrame.X(), qroll); err != nil {
		return fmt.Errorf("rolling disc %q: %w", d.Path(), err)
	}
	d.rollFrame.SetAngularVelocity(d.yawFrame, d.yawFrame.X().Scale(uroll))

	df := d.disc.Body().Frame()
	if err := df.Orient(d.rollFrame, d.rollFrame.Y(), qspin); err != nil {
		return fmt.Errorf("rolling disc %q: %w", d.Path(), err)
	}
	df.SetAngularVelocity(d.rollFrame, d.rollFrame.Y().Scale(uspin))

	// Ground-plane tracking point under the disc, moving with the in-plane
	// coordinates; the hub sits one radius above it along the tilted vertical.
	d.groundPoint = ctx.Engine.NewPoint(d.Path() + "_track")
	track, err := n.X().Scale(qx).Add(n.Y().Scale(qy))
	if err != nil {
		return err
	}
	if err := d.groundPoint.SetPosition(ctx.Origin(), track); err != nil {
		return fmt.Errorf("rolling disc %q: %w", d.Path(), err)
	}
	trackVel, err := n.X().Scale(ux).Add(n.Y().Scale(uy))
	if err != nil {
		return err
	}
	d.groundPoint.SetVelocity(n, trackVel)

	lift := d.rollFrame.Z().Scale(d.disc.Radius())
	if err := d.disc.Body().Masscenter().SetPosition(d.groundPoint, lift); err != nil {
		return fmt.Errorf("rolling disc %q: %w", d.Path(), err)
	}

	for _, qu := range [][2]*algebra.Symbol{
		{qx, ux}, {qy, uy}, {qyaw, uyaw}, {qroll, uroll}, {qspin, uspin},
	} {
		d.AddKinematicEquation(algebra.Equation{LHS: qu[0], RHS: qu[1]})
	}
	return nil
}

func (d *RollingDisc) DefineLoads(ctx *model.Context) error {
	g := ctx.Symbol(d, "g", algebra.Constant)
	weight := ctx.World().Z().Scale(algebra.Neg(algebra.Mul(d.disc.Body().Mass(), g)))
	d.AddLoad(algebra.NewForce(d.Path()+"_gravity", d.disc.Body().Masscenter(), weight))
	return nil
}
