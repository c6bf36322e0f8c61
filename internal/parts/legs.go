package parts

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("two_pin_stick_leg", "Rider leg as thigh, shank and foot linked by knee and ankle pins.",
		func(name string) (model.Component, error) {
			return NewTwoPinStickLeg(name), nil
		})
}

// TwoPinStickLeg models a rider leg as three rigid segments. The thigh hangs
// from the hip attachment, the shank follows through a knee pin and the foot
// through an ankle pin, both hinged about the thigh-side lateral axis. The
// pedal attachment at the toe is where a drivetrain picks the leg up.
//
// The leg contributes the knee and ankle angles as generalized coordinates;
// anchoring the hip is the enclosing model's job.
type TwoPinStickLeg struct {
	model.Base
	thigh, shank, foot *algebra.Body
	hip, pedal         *model.Attachment

	lt, ltc *algebra.Symbol
	ls, lsc *algebra.Symbol
	lf, lfc *algebra.Symbol

	kneeQ, kneeU   *algebra.Symbol
	ankleQ, ankleU *algebra.Symbol
}

// NewTwoPinStickLeg returns a two-pin stick leg.
func NewTwoPinStickLeg(name string) *TwoPinStickLeg {
	l := &TwoPinStickLeg{Base: model.NewBase(name)}
	l.hip = l.NewAttachment("hip")
	l.pedal = l.NewAttachment("pedal")
	return l
}

func (l *TwoPinStickLeg) Thigh() *algebra.Body { return l.thigh }
func (l *TwoPinStickLeg) Shank() *algebra.Body { return l.shank }
func (l *TwoPinStickLeg) Foot() *algebra.Body  { return l.foot }

// Hip returns the attachment at the hip joint, the leg's anchor.
func (l *TwoPinStickLeg) Hip() *model.Attachment { return l.hip }

// Pedal returns the attachment at the toe.
func (l *TwoPinStickLeg) Pedal() *model.Attachment { return l.pedal }

// KneeCoordinate returns the knee flexion angle, available after kinematics.
func (l *TwoPinStickLeg) KneeCoordinate() *algebra.Symbol { return l.kneeQ }

// AnkleCoordinate returns the ankle flexion angle, available after
// kinematics.
func (l *TwoPinStickLeg) AnkleCoordinate() *algebra.Symbol { return l.ankleQ }

func (l *TwoPinStickLeg) segment(ctx *model.Context, name string) *algebra.Body {
	b := ctx.Engine.NewBody(l.Path() + "_" + name)
	b.SetMass(ctx.Symbol(l, name+"_m", algebra.Constant))
	b.SetInertia(
		ctx.Symbol(l, name+"_ixx", algebra.Constant),
		ctx.Symbol(l, name+"_iyy", algebra.Constant),
		ctx.Symbol(l, name+"_izz", algebra.Constant),
	)
	l.AddBody(b)
	return b
}

func (l *TwoPinStickLeg) DefineObjects(ctx *model.Context) error {
	// Segment lengths and the mass center offsets measured from the
	// proximal joint of each segment.
	l.lt = ctx.Symbol(l, "lt", algebra.Constant)
	l.ltc = ctx.Symbol(l, "ltc", algebra.Constant)
	l.ls = ctx.Symbol(l, "ls", algebra.Constant)
	l.lsc = ctx.Symbol(l, "lsc", algebra.Constant)
	l.lf = ctx.Symbol(l, "lf", algebra.Constant)
	l.lfc = ctx.Symbol(l, "lfc", algebra.Constant)

	l.thigh = l.segment(ctx, "thigh")
	l.shank = l.segment(ctx, "shank")
	l.foot = l.segment(ctx, "foot")

	if err := l.hip.Bind(ctx.Engine.NewPoint(l.Path()+"_hip"), l.thigh.Frame()); err != nil {
		return err
	}
	return l.pedal.Bind(ctx.Engine.NewPoint(l.Path()+"_toe"), l.foot.Frame())
}

func (l *TwoPinStickLeg) DefineKinematics(ctx *model.Context) error {
	hp, err := l.hip.Point()
	if err != nil {
		return err
	}
	pp, err := l.pedal.Point()
	if err != nil {
		return err
	}

	l.kneeQ = ctx.Symbol(l, "knee_q", algebra.Coordinate)
	l.kneeU = ctx.Symbol(l, "knee_u", algebra.Speed)
	l.ankleQ = ctx.Symbol(l, "ankle_q", algebra.Coordinate)
	l.ankleU = ctx.Symbol(l, "ankle_u", algebra.Speed)

	tf := l.thigh.Frame()
	sf := l.shank.Frame()
	ff := l.foot.Frame()

	// Thigh hangs from the hip along its z axis; the knee pin sits at the
	// far end.
	if err := l.thigh.Masscenter().SetPosition(hp, tf.Z().Scale(l.ltc)); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}
	knee := ctx.Engine.NewPoint(l.Path() + "_knee")
	reach := algebra.Add(l.lt, algebra.Neg(l.ltc))
	if err := knee.SetPosition(l.thigh.Masscenter(), tf.Z().Scale(reach)); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}

	if err := sf.Orient(tf, tf.Y(), l.kneeQ); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}
	sf.SetAngularVelocity(tf, tf.Y().Scale(l.kneeU))
	if err := l.shank.Masscenter().SetPosition(knee, sf.Z().Scale(l.lsc)); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}
	ankle := ctx.Engine.NewPoint(l.Path() + "_ankle")
	reach = algebra.Add(l.ls, algebra.Neg(l.lsc))
	if err := ankle.SetPosition(l.shank.Masscenter(), sf.Z().Scale(reach)); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}

	// The foot runs forward from the ankle along its x axis, toe at the
	// pedal attachment.
	if err := ff.Orient(sf, sf.Y(), l.ankleQ); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}
	ff.SetAngularVelocity(sf, sf.Y().Scale(l.ankleU))
	if err := l.foot.Masscenter().SetPosition(ankle, ff.X().Scale(l.lfc)); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}
	reach = algebra.Add(l.lf, algebra.Neg(l.lfc))
	if err := pp.SetPosition(l.foot.Masscenter(), ff.X().Scale(reach)); err != nil {
		return fmt.Errorf("leg %q: %w", l.Path(), err)
	}

	l.AddKinematicEquation(algebra.Equation{LHS: l.kneeQ, RHS: l.kneeU})
	l.AddKinematicEquation(algebra.Equation{LHS: l.ankleQ, RHS: l.ankleU})
	return nil
}
