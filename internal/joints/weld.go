package joints

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/model"
)

func init() {
	model.RegisterConnection("weld",
		"Rigid junction: fixed relative orientation and offset, no freedom.")
}

// Weld rigidly fixes the child attachment to the parent attachment: identity
// relative orientation and a fixed offset, zero by default.
type Weld struct {
	model.ConnBase
	parent, child *model.Attachment
	offset        func(parent *algebra.Frame) algebra.Vector
}

// WeldOption configures a weld.
type WeldOption func(*Weld)

// WithOffset places the child attachment point at the given offset from the
// parent's, built from the parent attachment frame.
func WithOffset(f func(parent *algebra.Frame) algebra.Vector) WeldOption {
	return func(w *Weld) { w.offset = f }
}

// NewWeld builds a rigid junction between two attachments.
func NewWeld(name string, parent, child *model.Attachment, opts ...WeldOption) (*Weld, error) {
	cb, err := model.NewConn(name, parent, child)
	if err != nil {
		return nil, err
	}
	w := &Weld{ConnBase: cb, parent: parent, child: child}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Weld) DefineKinematics(ctx *model.Context) error {
	pf, err := w.parent.Frame()
	if err != nil {
		return err
	}
	cf, err := w.child.Frame()
	if err != nil {
		return err
	}
	pp, err := w.parent.Point()
	if err != nil {
		return err
	}
	cp, err := w.child.Point()
	if err != nil {
		return err
	}

	if err := cf.Weld(pf); err != nil {
		return fmt.Errorf("weld %q: %w", w.Path(), err)
	}
	off := algebra.ZeroVector(pf)
	if w.offset != nil {
		off = w.offset(pf)
	}
	if err := cp.SetPosition(pp, off); err != nil {
		return fmt.Errorf("weld %q: %w", w.Path(), err)
	}
	return nil
}
