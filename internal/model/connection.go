package model

import "fmt"

// ConnBase is the connection family: a component joining two or more
// attachments of distinct sub-models. Construction validates and claims the
// attachments immediately; registration on a parent (Base.AddConnection)
// checks tree membership. Concrete connections embed ConnBase and implement
// the stage hooks that realize the joint.
type ConnBase struct {
	node
}

// NewConn builds a connection over the given attachments. It fails with
// ErrStructural when fewer than two attachments are given or two of them
// share an owner (self-connection), and with ErrInterfaceConflict when an
// attachment is already wired to another connection. Claims are atomic: on
// failure no attachment is consumed.
func NewConn(name string, atts ...*Attachment) (ConnBase, error) {
	mustValidName(name)
	if len(atts) < 2 {
		return ConnBase{}, fmt.Errorf("%w: connection %q needs at least two attachments", ErrStructural, name)
	}
	for i, a := range atts {
		if a == nil {
			return ConnBase{}, fmt.Errorf("%w: connection %q given a nil attachment", ErrStructural, name)
		}
		for _, b := range atts[:i] {
			if a == b {
				return ConnBase{}, fmt.Errorf("%w: connection %q uses attachment %q twice", ErrStructural, name, a.name)
			}
			if a.owner == b.owner {
				return ConnBase{}, fmt.Errorf("%w: connection %q joins two attachments of %q",
					ErrStructural, name, a.owner.path())
			}
		}
	}
	for _, a := range atts {
		if a.claimed {
			return ConnBase{}, fmt.Errorf("%w: attachment %q of %q is wired to both %q and %q",
				ErrInterfaceConflict, a.name, a.owner.path(), a.claimedBy, name)
		}
	}
	for _, a := range atts {
		if err := a.claim(name); err != nil {
			return ConnBase{}, err
		}
	}
	c := ConnBase{node: node{name: name, isConn: true}}
	c.claims = append(c.claims, atts...)
	return c, nil
}

// Claimed returns the attachments this connection consumes, in constructor
// order.
func (c *ConnBase) Claimed() []*Attachment {
	out := make([]*Attachment, len(c.claims))
	copy(out, c.claims)
	return out
}
