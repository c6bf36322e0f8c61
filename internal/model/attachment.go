package model

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
)

// Attachment is a named attachment point a sub-model exposes for connection
// purposes: a point plus an orientable frame. The owner binds both during its
// objects stage; connections read them from the kinematics stage onward. An
// attachment can be consumed by at most one connection.
type Attachment struct {
	owner     *node
	name      string
	point     *algebra.Point
	frame     *algebra.Frame
	claimedBy string
	claimed   bool
}

func (a *Attachment) Name() string { return a.name }

// OwnerPath returns the tree path of the owning component.
func (a *Attachment) OwnerPath() string { return a.owner.path() }

// Bind fixes the attachment's point and frame. Called by the owner during
// its objects stage; binding twice is an error.
func (a *Attachment) Bind(p *algebra.Point, f *algebra.Frame) error {
	if a.point != nil || a.frame != nil {
		return fmt.Errorf("%w: attachment %q of %q bound twice", ErrStructural, a.name, a.owner.path())
	}
	if p == nil || f == nil {
		return fmt.Errorf("%w: attachment %q of %q bound to nil point or frame", ErrStructural, a.name, a.owner.path())
	}
	a.point = p
	a.frame = f
	return nil
}

// Point returns the attachment point. It fails with ErrNotReady until the
// owner completed the objects stage.
func (a *Attachment) Point() (*algebra.Point, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.point, nil
}

// Frame returns the attachment frame. It fails with ErrNotReady until the
// owner completed the objects stage.
func (a *Attachment) Frame() (*algebra.Frame, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.frame, nil
}

func (a *Attachment) ready() error {
	if a.owner.stage < StageObjects || a.point == nil || a.frame == nil {
		return fmt.Errorf("%w: attachment %q of %q read before its owner defined objects",
			ErrNotReady, a.name, a.owner.path())
	}
	return nil
}

// claim marks the attachment as consumed by the named connection.
func (a *Attachment) claim(conn string) error {
	if a.claimed {
		return fmt.Errorf("%w: attachment %q of %q is wired to both %q and %q",
			ErrInterfaceConflict, a.name, a.owner.path(), a.claimedBy, conn)
	}
	a.claimed = true
	a.claimedBy = conn
	return nil
}
