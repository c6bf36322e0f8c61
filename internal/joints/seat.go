package joints

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterConnection("fixed_seat",
		"Rigid seat: welds the rider to the saddle with symbolic offsets.")
}

// FixedSeat rigidly mounts a rider attachment on a saddle attachment. The
// rider sits at a symbolic fore-aft and vertical offset from the saddle,
// expressed in the saddle frame, so the seat position stays a free parameter
// of the derived equations.
type FixedSeat struct {
	model.ConnBase
	saddle, rider *model.Attachment
}

// NewFixedSeat builds a rigid seat between a saddle and a rider attachment.
func NewFixedSeat(name string, saddle, rider *model.Attachment) (*FixedSeat, error) {
	cb, err := model.NewConn(name, saddle, rider)
	if err != nil {
		return nil, err
	}
	return &FixedSeat{ConnBase: cb, saddle: saddle, rider: rider}, nil
}

func (s *FixedSeat) DefineKinematics(ctx *model.Context) error {
	sf, err := s.saddle.Frame()
	if err != nil {
		return err
	}
	rf, err := s.rider.Frame()
	if err != nil {
		return err
	}
	sp, err := s.saddle.Point()
	if err != nil {
		return err
	}
	rp, err := s.rider.Point()
	if err != nil {
		return err
	}

	sx := ctx.Symbol(s, "sx", algebra.Constant)
	sz := ctx.Symbol(s, "sz", algebra.Constant)

	if err := rf.Weld(sf); err != nil {
		return fmt.Errorf("seat %q: %w", s.Path(), err)
	}
	off, err := sf.X().Scale(sx).Add(sf.Z().Scale(sz))
	if err != nil {
		return fmt.Errorf("seat %q: %w", s.Path(), err)
	}
	if err := rp.SetPosition(sp, off); err != nil {
		return fmt.Errorf("seat %q: %w", s.Path(), err)
	}
	return nil
}
