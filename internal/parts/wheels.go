package parts

import (
	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("knife_edge_wheel", "Axisymmetric wheel with a zero-width contact edge.",
		func(name string) (model.Component, error) {
			return NewKnifeEdgeWheel(name), nil
		})
	model.RegisterModel("toroidal_wheel", "Axisymmetric wheel with a toroidal tyre surface.",
		func(name string) (model.Component, error) {
			return NewToroidalWheel(name), nil
		})
}

// WheelModel is the contract a composite expects from a wheel part: a hub
// attachment for the axle joint, a tread attachment for the tyre, the wheel
// radius and the contact geometry.
type WheelModel interface {
	model.Component
	Body() *algebra.Body
	Hub() *model.Attachment
	Tread() *model.Attachment
	Radius() *algebra.Symbol
	ContactVector(normal algebra.Vector) (algebra.Vector, error)
}

// KnifeEdgeWheel is an idealized zero-width wheel: an axisymmetric body
// spinning about its y axis, touching the ground on a knife edge one radius
// below the hub.
type KnifeEdgeWheel struct {
	model.Base
	body       *algebra.Body
	hub, tread *model.Attachment
	r          *algebra.Symbol
}

// NewKnifeEdgeWheel returns a knife-edge wheel.
func NewKnifeEdgeWheel(name string) *KnifeEdgeWheel {
	w := &KnifeEdgeWheel{Base: model.NewBase(name)}
	w.hub = w.NewAttachment("hub")
	w.tread = w.NewAttachment("tread")
	return w
}

func (w *KnifeEdgeWheel) Body() *algebra.Body      { return w.body }
func (w *KnifeEdgeWheel) Hub() *model.Attachment   { return w.hub }
func (w *KnifeEdgeWheel) Tread() *model.Attachment { return w.tread }

// Radius returns the wheel radius symbol, available after the objects stage.
func (w *KnifeEdgeWheel) Radius() *algebra.Symbol { return w.r }

// RotationAxis returns the spin axis in the wheel frame.
func (w *KnifeEdgeWheel) RotationAxis() algebra.Vector { return w.body.Frame().Y() }

// ContactVector returns the vector from the hub to the contact point for an
// upward ground normal.
func (w *KnifeEdgeWheel) ContactVector(normal algebra.Vector) (algebra.Vector, error) {
	return normal.Scale(algebra.Neg(w.r)), nil
}

func (w *KnifeEdgeWheel) DefineObjects(ctx *model.Context) error {
	w.r = ctx.Symbol(w, "r", algebra.Constant)
	w.body = ctx.Engine.NewBody(w.Path())
	w.body.SetMass(ctx.Symbol(w, "m", algebra.Constant))
	// Axisymmetric: equal transverse inertias about x and z.
	ixx := ctx.Symbol(w, "ixx", algebra.Constant)
	w.body.SetInertia(ixx, ctx.Symbol(w, "iyy", algebra.Constant), ixx)
	w.AddBody(w.body)
	for _, att := range w.Attachments() {
		if err := att.Bind(w.body.Masscenter(), w.body.Frame()); err != nil {
			return err
		}
	}
	return nil
}

// ToroidalWheel is a wheel with a torus-shaped tyre surface: the contact
// point sits the crown radius plus the tube radius below the hub.
type ToroidalWheel struct {
	model.Base
	body       *algebra.Body
	hub, tread *model.Attachment
	r, tr      *algebra.Symbol
}

// NewToroidalWheel returns a toroidal wheel.
func NewToroidalWheel(name string) *ToroidalWheel {
	w := &ToroidalWheel{Base: model.NewBase(name)}
	w.hub = w.NewAttachment("hub")
	w.tread = w.NewAttachment("tread")
	return w
}

func (w *ToroidalWheel) Body() *algebra.Body      { return w.body }
func (w *ToroidalWheel) Hub() *model.Attachment   { return w.hub }
func (w *ToroidalWheel) Tread() *model.Attachment { return w.tread }

// Radius returns the crown radius symbol, available after the objects stage.
func (w *ToroidalWheel) Radius() *algebra.Symbol { return w.r }

// TubeRadius returns the tube radius symbol, available after the objects
// stage.
func (w *ToroidalWheel) TubeRadius() *algebra.Symbol { return w.tr }

// RotationAxis returns the spin axis in the wheel frame.
func (w *ToroidalWheel) RotationAxis() algebra.Vector { return w.body.Frame().Y() }

// ContactVector returns the vector from the hub to the contact point for an
// upward ground normal.
func (w *ToroidalWheel) ContactVector(normal algebra.Vector) (algebra.Vector, error) {
	return normal.Scale(algebra.Neg(algebra.Add(w.r, w.tr))), nil
}

func (w *ToroidalWheel) DefineObjects(ctx *model.Context) error {
	w.r = ctx.Symbol(w, "r", algebra.Constant)
	w.tr = ctx.Symbol(w, "tr", algebra.Constant)
	w.body = ctx.Engine.NewBody(w.Path())
	w.body.SetMass(ctx.Symbol(w, "m", algebra.Constant))
	ixx := ctx.Symbol(w, "ixx", algebra.Constant)
	w.body.SetInertia(ixx, ctx.Symbol(w, "iyy", algebra.Constant), ixx)
	w.AddBody(w.body)
	for _, att := range w.Attachments() {
		if err := att.Bind(w.body.Masscenter(), w.body.Frame()); err != nil {
			return err
		}
	}
	return nil
}
