package parts

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterModel("flat_ground", "Flat inertial ground plane, z up.",
		func(name string) (model.Component, error) {
			return NewFlatGround(name), nil
		})
}

// FlatGround is the inertial ground: a massless frame welded to the world
// with z pointing up, anchored at the origin. Tyres attach through contact
// attachments, one per tyre.
type FlatGround struct {
	model.Base
	frame *algebra.Frame
}

// NewFlatGround returns a flat ground plane.
func NewFlatGround(name string) *FlatGround {
	return &FlatGround{Base: model.NewBase(name)}
}

// Contact declares a contact attachment for one tyre. Every contact shares
// the ground frame and the origin.
func (g *FlatGround) Contact(name string) *model.Attachment {
	return g.NewAttachment(name)
}

// Frame returns the ground frame, available after the objects stage.
func (g *FlatGround) Frame() *algebra.Frame { return g.frame }

// Normal returns the upward surface normal.
func (g *FlatGround) Normal() (algebra.Vector, error) {
	if g.frame == nil {
		return algebra.Vector{}, fmt.Errorf("%w: ground %q has no frame yet",
			model.ErrNotReady, g.Path())
	}
	return g.frame.Z(), nil
}

// InPlane returns the two in-plane directions of the surface.
func (g *FlatGround) InPlane() ([2]algebra.Vector, error) {
	if g.frame == nil {
		return [2]algebra.Vector{}, fmt.Errorf("%w: ground %q has no frame yet",
			model.ErrNotReady, g.Path())
	}
	return [2]algebra.Vector{g.frame.X(), g.frame.Y()}, nil
}

func (g *FlatGround) DefineObjects(ctx *model.Context) error {
	g.frame = ctx.Engine.NewFrame(g.Path())
	for _, att := range g.Attachments() {
		if err := att.Bind(ctx.Origin(), g.frame); err != nil {
			return err
		}
	}
	return nil
}

func (g *FlatGround) DefineKinematics(ctx *model.Context) error {
	return g.frame.Weld(ctx.World())
}
