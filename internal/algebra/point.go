package algebra

import "fmt"

// Point is a point in space. Positions form a tree: SetPosition fixes a
// point relative to a parent point by an offset vector. Velocities are either
// set explicitly per observer frame or derived through the two-point formula
// from the parent (valid because offsets are fixed in the frame they are
// expressed in).
type Point struct {
	name   string
	parent *Point
	pos    Vector
	vel    map[*Frame]Vector
}

func newPoint(name string) *Point {
	return &Point{name: name, vel: make(map[*Frame]Vector)}
}

func (p *Point) Name() string { return p.name }

// SetPosition fixes p at offset v from rel. A point may be positioned once.
func (p *Point) SetPosition(rel *Point, v Vector) error {
	if p == rel {
		return fmt.Errorf("algebra: cannot position point %q relative to itself", p.name)
	}
	if p.parent != nil {
		return fmt.Errorf("algebra: point %q is already positioned", p.name)
	}
	for a := rel; a != nil; a = a.parent {
		if a == p {
			return fmt.Errorf("algebra: positioning %q relative to %q would create a cycle", p.name, rel.name)
		}
	}
	p.parent = rel
	p.pos = v
	return nil
}

// PositionFrom returns the position vector from o to p.
func (p *Point) PositionFrom(o *Point) (Vector, error) {
	if p == o {
		if p.pos.Frame() != nil {
			return ZeroVector(p.pos.Frame()), nil
		}
		return Vector{}, fmt.Errorf("algebra: zero position of unpositioned point %q has no frame", p.name)
	}
	up := func(pt *Point) []*Point {
		var chain []*Point
		for cur := pt; cur != nil; cur = cur.parent {
			chain = append(chain, cur)
		}
		return chain
	}
	pc, oc := up(p), up(o)
	common := map[*Point]bool{}
	for _, pt := range oc {
		common[pt] = true
	}
	var anchor *Point
	for _, pt := range pc {
		if common[pt] {
			anchor = pt
			break
		}
	}
	if anchor == nil {
		return Vector{}, fmt.Errorf("algebra: points %q and %q are not related", p.name, o.name)
	}
	sumTo := func(pt *Point) (Vector, error) {
		var acc Vector
		started := false
		for cur := pt; cur != anchor; cur = cur.parent {
			if !started {
				acc = cur.pos
				started = true
				continue
			}
			s, err := acc.Add(cur.pos)
			if err != nil {
				return Vector{}, err
			}
			acc = s
		}
		if !started {
			return Vector{}, nil
		}
		return acc, nil
	}
	fromAnchorToP, err := sumTo(p)
	if err != nil {
		return Vector{}, err
	}
	fromAnchorToO, err := sumTo(o)
	if err != nil {
		return Vector{}, err
	}
	switch {
	case fromAnchorToP.Frame() == nil:
		return fromAnchorToO.Scale(Number(-1)), nil
	case fromAnchorToO.Frame() == nil:
		return fromAnchorToP, nil
	}
	return fromAnchorToP.Sub(fromAnchorToO)
}

// SetVelocity declares the velocity of p as observed from frame f.
func (p *Point) SetVelocity(f *Frame, v Vector) {
	p.vel[f] = v
}

// VelocityIn returns the velocity of p as observed from f. Without an
// explicit velocity the two-point formula v_p = v_parent + w x r is applied;
// an unpositioned point without explicit velocity is treated as fixed in
// every observer.
func (p *Point) VelocityIn(f *Frame) (Vector, error) {
	if v, ok := p.vel[f]; ok {
		return v, nil
	}
	if p.parent == nil {
		return ZeroVector(f), nil
	}
	vp, err := p.parent.VelocityIn(f)
	if err != nil {
		return Vector{}, err
	}
	w, err := p.pos.Frame().AngularVelocityIn(f)
	if err != nil {
		return Vector{}, err
	}
	wxr, err := w.Cross(p.pos)
	if err != nil {
		return Vector{}, err
	}
	return vp.Add(wxr)
}
