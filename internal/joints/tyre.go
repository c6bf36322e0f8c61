package joints

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterConnection("nonholonomic_tyre",
		"Idealized tyre: wheel-ground contact point rolling without slip.")
}

// Ground is what a tyre needs from the ground sub-model: the upward surface
// normal and the two in-plane directions, readable once the ground finished
// its kinematics.
type Ground interface {
	Normal() (algebra.Vector, error)
	InPlane() ([2]algebra.Vector, error)
}

// Wheel is what a tyre needs from the wheel sub-model: the vector from the
// hub to the contact point for a given upward ground normal.
type Wheel interface {
	ContactVector(normal algebra.Vector) (algebra.Vector, error)
}

// NonHolonomicTyre couples a wheel hub to a ground plane through an idealized
// contact point that rolls without slipping. The contact point is placed
// during kinematics; the no-slip conditions are contributed as nonholonomic
// velocity constraints along the in-plane ground directions during the
// constraints stage.
type NonHolonomicTyre struct {
	model.ConnBase
	plane, hub *model.Attachment
	ground     Ground
	wheel      Wheel
	contact    *algebra.Point
}

// NewNonHolonomicTyre builds a rolling contact between a ground plane
// attachment and a wheel hub attachment.
func NewNonHolonomicTyre(name string, plane, hub *model.Attachment, g Ground, w Wheel) (*NonHolonomicTyre, error) {
	if g == nil || w == nil {
		return nil, fmt.Errorf("%w: tyre %q needs both a ground and a wheel",
			model.ErrStructural, name)
	}
	cb, err := model.NewConn(name, plane, hub)
	if err != nil {
		return nil, err
	}
	return &NonHolonomicTyre{ConnBase: cb, plane: plane, hub: hub, ground: g, wheel: w}, nil
}

// Contact returns the contact point, available after kinematics.
func (t *NonHolonomicTyre) Contact() *algebra.Point { return t.contact }

func (t *NonHolonomicTyre) DefineKinematics(ctx *model.Context) error {
	hp, err := t.hub.Point()
	if err != nil {
		return err
	}
	hf, err := t.hub.Frame()
	if err != nil {
		return err
	}
	n, err := t.ground.Normal()
	if err != nil {
		return err
	}
	cv, err := t.wheel.ContactVector(n)
	if err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}
	t.contact = ctx.Engine.NewPoint(t.Path() + "_contact")
	if err := t.contact.SetPosition(hp, cv); err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}

	// The contact moves as a material point of the wheel: v = v_hub + w x r.
	// The offset is fixed in the ground frame, so the velocity carrying the
	// wheel's spin must be set explicitly.
	world := ctx.World()
	vh, err := hp.VelocityIn(world)
	if err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}
	w, err := hf.AngularVelocityIn(world)
	if err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}
	wxr, err := w.Cross(cv)
	if err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}
	v, err := vh.Add(wxr)
	if err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}
	t.contact.SetVelocity(world, v)
	return nil
}

func (t *NonHolonomicTyre) DefineConstraints(ctx *model.Context) error {
	v, err := t.contact.VelocityIn(ctx.World())
	if err != nil {
		return fmt.Errorf("tyre %q: %w", t.Path(), err)
	}
	axes, err := t.ground.InPlane()
	if err != nil {
		return err
	}
	for _, ax := range axes {
		d, err := v.Dot(ax)
		if err != nil {
			return fmt.Errorf("tyre %q: %w", t.Path(), err)
		}
		// A contact that cannot move along an axis contributes nothing.
		if algebra.IsZero(d) {
			continue
		}
		t.AddNonholonomic(algebra.Equation{LHS: d, RHS: algebra.Number(0)})
	}
	return nil
}
