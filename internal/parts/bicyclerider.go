package parts

import (
	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/joints"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("bicycle_rider", "Bicycle with a lumped rider torso on the saddle.",
		func(name string) (model.Component, error) {
			b, err := NewBicycle("bicycle")
			if err != nil {
				return nil, err
			}
			return NewBicycleRider(name, b, NewRiderTorso("rider"))
		})
}

// BicycleRider mounts a rider torso on a bicycle saddle through a fixed
// seat. The rider's weight is added here; everything else comes from the
// children.
type BicycleRider struct {
	model.Base
	bicycle *Bicycle
	rider   *RiderTorso
	seat    *joints.FixedSeat
}

// NewBicycleRider composes a bicycle and a rider torso.
func NewBicycleRider(name string, bicycle *Bicycle, rider *RiderTorso) (*BicycleRider, error) {
	br := &BicycleRider{Base: model.NewBase(name), bicycle: bicycle, rider: rider}
	if err := br.Attach("bicycle", bicycle); err != nil {
		return nil, err
	}
	if err := br.Attach("rider", rider); err != nil {
		return nil, err
	}
	return br, nil
}

// Bicycle returns the bicycle part.
func (br *BicycleRider) Bicycle() *Bicycle { return br.bicycle }

// Rider returns the rider part.
func (br *BicycleRider) Rider() *RiderTorso { return br.rider }

func (br *BicycleRider) DefineConnections(*model.Context) error {
	seat, err := joints.NewFixedSeat("seat", br.bicycle.Saddle(), br.rider.Seat())
	if err != nil {
		return err
	}
	br.seat = seat
	return br.AddConnection(seat)
}

func (br *BicycleRider) DefineLoads(ctx *model.Context) error {
	g := ctx.Symbol(br, "g", algebra.Constant)
	body := br.rider.Body()
	weight := ctx.World().Z().Scale(algebra.Neg(algebra.Mul(body.Mass(), g)))
	br.AddLoad(algebra.NewForce(body.Name()+"_gravity", body.Masscenter(), weight))
	return nil
}
