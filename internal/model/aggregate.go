package model

import (
	"fmt"

	"github.com/symbody/symbody/internal/algebra"
)

// System is the post-assembly artifact: every body, load, kinematic
// differential equation and motion constraint contributed by any component,
// concatenated in one deterministic depth-first walk, plus the generalized
// coordinates and speeds collected from the symbol registry in generation
// order. A System is built once and never mutated; nothing is deduplicated.
type System struct {
	engine       *algebra.Engine
	bodies       []*algebra.Body
	loads        []algebra.Load
	kinematics   []algebra.Equation
	nonholonomic []algebra.Equation
	coordinates  []*algebra.Symbol
	speeds       []*algebra.Symbol
	origins      map[string]string // symbol identifier -> contributing path
}

// Aggregate walks the finished tree once and builds the aggregated system.
// It is only available after DefineAll succeeded; repeated calls return the
// same System. Aggregating discards the per-run symbol registry.
func (a *Assembler) Aggregate() (*System, error) {
	if a.sys != nil {
		return a.sys, nil
	}
	if !a.defined || a.root.treeNode().stage != StageConstraints {
		return nil, fmt.Errorf("%w: aggregate on %q before define completed",
			ErrNotReady, a.root.Name())
	}
	sys := &System{engine: a.engine, origins: make(map[string]string)}
	collect(a.root, sys)
	for _, e := range a.reg.Entries() {
		switch e.Kind {
		case algebra.Coordinate:
			sys.coordinates = append(sys.coordinates, e.Symbol)
		case algebra.Speed:
			sys.speeds = append(sys.speeds, e.Symbol)
		}
		sys.origins[e.Symbol.Name()] = e.Path
	}
	a.reg = nil // registry is scoped to one define run
	a.sys = sys
	return sys, nil
}

// collect appends a component's contributions, then its connections', then
// its children's, in attachment order.
func collect(c Component, sys *System) {
	n := c.treeNode()
	sys.bodies = append(sys.bodies, n.bodies...)
	sys.loads = append(sys.loads, n.loads...)
	sys.kinematics = append(sys.kinematics, n.kinematics...)
	sys.nonholonomic = append(sys.nonholonomic, n.nonholonomic...)
	for _, conn := range n.connections {
		collect(conn, sys)
	}
	for _, ch := range n.children {
		collect(ch, sys)
	}
}

func (s *System) Bodies() []*algebra.Body {
	out := make([]*algebra.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

func (s *System) Loads() []algebra.Load {
	out := make([]algebra.Load, len(s.loads))
	copy(out, s.loads)
	return out
}

func (s *System) KinematicEquations() []algebra.Equation {
	out := make([]algebra.Equation, len(s.kinematics))
	copy(out, s.kinematics)
	return out
}

func (s *System) NonholonomicEquations() []algebra.Equation {
	out := make([]algebra.Equation, len(s.nonholonomic))
	copy(out, s.nonholonomic)
	return out
}

func (s *System) Coordinates() []*algebra.Symbol {
	out := make([]*algebra.Symbol, len(s.coordinates))
	copy(out, s.coordinates)
	return out
}

func (s *System) Speeds() []*algebra.Symbol {
	out := make([]*algebra.Symbol, len(s.speeds))
	copy(out, s.speeds)
	return out
}

// Origin returns the tree path that contributed a generated symbol.
func (s *System) Origin(sym *algebra.Symbol) string {
	return s.origins[sym.Name()]
}

// Solve bridges the aggregated system to the equations-of-motion
// derivation. Solver failures are surfaced unmodified, wrapped in a
// SolverError that names which sub-model contributed each coordinate and
// speed.
func (s *System) Solve() (*algebra.EOM, error) {
	eom, err := s.engine.Derive(algebra.DeriveInput{
		Bodies:       s.bodies,
		Loads:        s.loads,
		Kinematics:   s.kinematics,
		Nonholonomic: s.nonholonomic,
		Coordinates:  s.coordinates,
		Speeds:       s.speeds,
	})
	if err != nil {
		origins := make(map[string]string, len(s.coordinates)+len(s.speeds))
		for _, sym := range s.coordinates {
			origins[sym.Name()] = s.origins[sym.Name()]
		}
		for _, sym := range s.speeds {
			origins[sym.Name()] = s.origins[sym.Name()]
		}
		return nil, &SolverError{Origins: origins, Wrapped: err}
	}
	return eom, nil
}
