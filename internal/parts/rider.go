package parts

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("rider_torso", "Lumped rider upper body mounted on the saddle.",
		func(name string) (model.Component, error) {
			return NewRiderTorso(name), nil
		})
}

// RiderTorso lumps the rider's upper body into one rigid segment. Its anchor
// is the seat attachment; the mass center sits a symbolic torso height above
// the seat.
type RiderTorso struct {
	model.Base
	body *algebra.Body
	seat *model.Attachment
	h    *algebra.Symbol
}

// NewRiderTorso returns a lumped rider torso.
func NewRiderTorso(name string) *RiderTorso {
	r := &RiderTorso{Base: model.NewBase(name)}
	r.seat = r.NewAttachment("seat")
	return r
}

func (r *RiderTorso) Body() *algebra.Body     { return r.body }
func (r *RiderTorso) Seat() *model.Attachment { return r.seat }

func (r *RiderTorso) DefineObjects(ctx *model.Context) error {
	r.h = ctx.Symbol(r, "h", algebra.Constant)
	r.body = ctx.Engine.NewBody(r.Path())
	r.body.SetMass(ctx.Symbol(r, "m", algebra.Constant))
	r.body.SetInertia(
		ctx.Symbol(r, "ixx", algebra.Constant),
		ctx.Symbol(r, "iyy", algebra.Constant),
		ctx.Symbol(r, "izz", algebra.Constant),
	)
	r.AddBody(r.body)
	return r.seat.Bind(ctx.Engine.NewPoint(r.Path()+"_seat"), r.body.Frame())
}

func (r *RiderTorso) DefineKinematics(ctx *model.Context) error {
	sp, err := r.seat.Point()
	if err != nil {
		return err
	}
	bf := r.body.Frame()
	if err := r.body.Masscenter().SetPosition(sp, bf.Z().Scale(r.h)); err != nil {
		return fmt.Errorf("rider torso %q: %w", r.Path(), err)
	}
	return nil
}
