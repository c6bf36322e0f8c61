package model

import (
	"errors"
	"testing"
)

type plainConn struct {
	ConnBase
}

func newPlainConn(t *testing.T, name string, atts ...*Attachment) *plainConn {
	t.Helper()
	cb, err := NewConn(name, atts...)
	if err != nil {
		t.Fatalf("NewConn(%s): %v", name, err)
	}
	return &plainConn{ConnBase: cb}
}

func TestConnSelfConnection(t *testing.T) {
	m := newPlain("frame")
	a := m.NewAttachment("left")
	b := m.NewAttachment("right")

	if _, err := NewConn("weld", a, b); !errors.Is(err, ErrStructural) {
		t.Errorf("self-connection: err = %v, want ErrStructural", err)
	}
}

func TestConnTooFewAttachments(t *testing.T) {
	m := newPlain("frame")
	if _, err := NewConn("weld", m.NewAttachment("only")); !errors.Is(err, ErrStructural) {
		t.Errorf("single attachment: err = %v, want ErrStructural", err)
	}
}

func TestConnInterfaceConflict(t *testing.T) {
	// GIVEN an attachment already wired to one connection
	front := newPlain("front")
	rear := newPlain("rear")
	other := newPlain("other")
	hub := front.NewAttachment("hub")
	newPlainConn(t, "first", hub, rear.NewAttachment("hub"))

	// WHEN a second connection claims the same attachment
	_, err := NewConn("second", hub, other.NewAttachment("hub"))

	// THEN the conflict is reported at construction, regardless of order
	if !errors.Is(err, ErrInterfaceConflict) {
		t.Errorf("err = %v, want ErrInterfaceConflict", err)
	}
}

func TestConnConflictAtomicity(t *testing.T) {
	// A failed claim must not consume the earlier attachments.
	a := newPlain("a")
	b := newPlain("b")
	ah := a.NewAttachment("hub")
	bh := b.NewAttachment("hub")
	newPlainConn(t, "taken", bh, newPlain("c").NewAttachment("hub"))

	if _, err := NewConn("joint", ah, bh); !errors.Is(err, ErrInterfaceConflict) {
		t.Fatalf("err = %v, want ErrInterfaceConflict", err)
	}
	// ah stayed unclaimed and is still usable.
	if _, err := NewConn("retry", ah, newPlain("d").NewAttachment("hub")); err != nil {
		t.Errorf("attachment was consumed by a failed connection: %v", err)
	}
}

func TestAddConnectionOutsideTree(t *testing.T) {
	root := newPlain("root")
	inside := newPlain("inside")
	outside := newPlain("outside")
	if err := root.Attach("inside", inside); err != nil {
		t.Fatalf("attach: %v", err)
	}
	conn := newPlainConn(t, "joint",
		inside.NewAttachment("p"), outside.NewAttachment("p"))

	if err := root.AddConnection(conn); !errors.Is(err, ErrStructural) {
		t.Errorf("err = %v, want ErrStructural for attachment outside the tree", err)
	}
}

func TestAddConnectionTwice(t *testing.T) {
	root := newPlain("root")
	a := newPlain("a")
	b := newPlain("b")
	if err := root.Attach("a", a); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := root.Attach("b", b); err != nil {
		t.Fatalf("attach: %v", err)
	}
	conn := newPlainConn(t, "joint", a.NewAttachment("p"), b.NewAttachment("p"))

	if err := root.AddConnection(conn); err != nil {
		t.Fatalf("first AddConnection: %v", err)
	}
	if err := root.AddConnection(conn); !errors.Is(err, ErrStructural) {
		t.Errorf("second AddConnection: err = %v, want ErrStructural", err)
	}
}
