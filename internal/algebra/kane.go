package algebra

import "fmt"

// DeriveInput is the aggregated symbolic system handed to Derive.
type DeriveInput struct {
	Bodies       []*Body
	Loads        []Load
	Kinematics   []Equation
	Nonholonomic []Equation
	Coordinates  []*Symbol
	Speeds       []*Symbol
}

// EOM holds the derived equations of motion: M * du/dt = F together with the
// kinematic differential equations and any motion constraints carried along.
type EOM struct {
	MassMatrix   [][]Expr
	Forcing      []Expr
	Coordinates  []*Symbol
	Speeds       []*Symbol
	Kinematics   []Equation
	Nonholonomic []Equation
}

// Derive reduces the system to a mass matrix and forcing vector over the
// generalized speeds, Kane style: partial velocities are taken per speed and
// combined with masses, central inertias and active loads.
//
// The derivation is velocity-linear: velocity-dependent inertia terms are not
// expanded into the forcing vector. Structural shape (dimensions and symbol
// dependencies) is the contract; see the package comment.
func (e *Engine) Derive(in DeriveInput) (*EOM, error) {
	if len(in.Bodies) == 0 {
		return nil, ErrNoBodies
	}
	if len(in.Speeds) == 0 {
		return nil, ErrNoSpeeds
	}
	if len(in.Kinematics) != len(in.Coordinates) {
		return nil, fmt.Errorf("%w: %d equations for %d coordinates",
			ErrKinematicCount, len(in.Kinematics), len(in.Coordinates))
	}
	if len(in.Nonholonomic) > len(in.Speeds) {
		return nil, fmt.Errorf("%w: %d constraints for %d speeds",
			ErrOverconstrained, len(in.Nonholonomic), len(in.Speeds))
	}

	n := len(in.Speeds)

	// Partial velocities per body and speed, expressed in the world frame
	// (translation) and the body frame (rotation, so the diagonal central
	// inertia applies directly).
	vPart := make([][]Vector, len(in.Bodies))
	wPart := make([][]Vector, len(in.Bodies))
	for bi, b := range in.Bodies {
		if err := b.validate(); err != nil {
			return nil, err
		}
		v, err := b.Masscenter().VelocityIn(e.world)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", b.Name(), err)
		}
		vw, err := v.In(e.world)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", b.Name(), err)
		}
		w, err := b.Frame().AngularVelocityIn(e.world)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", b.Name(), err)
		}
		wb, err := w.In(b.Frame())
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", b.Name(), err)
		}
		vPart[bi] = make([]Vector, n)
		wPart[bi] = make([]Vector, n)
		for k, u := range in.Speeds {
			vPart[bi][k] = diffVector(vw, u)
			wPart[bi][k] = diffVector(wb, u)
		}
	}

	mass := make([][]Expr, n)
	for i := range mass {
		mass[i] = make([]Expr, n)
		for j := range mass[i] {
			terms := make([]Expr, 0, len(in.Bodies))
			for bi, b := range in.Bodies {
				dot, err := vPart[bi][i].Dot(vPart[bi][j])
				if err != nil {
					return nil, err
				}
				terms = append(terms, Mul(b.Mass(), dot))
				inertia := b.Inertia()
				wi, wj := wPart[bi][i].Components(), wPart[bi][j].Components()
				for a := 0; a < 3; a++ {
					if inertia[a] == nil {
						continue
					}
					terms = append(terms, Mul(inertia[a], wi[a], wj[a]))
				}
			}
			mass[i][j] = Add(terms...)
		}
	}

	forcing := make([]Expr, n)
	for i := range forcing {
		terms := make([]Expr, 0, len(in.Loads))
		for _, l := range in.Loads {
			if l.IsTorque() {
				w, err := l.frame.AngularVelocityIn(e.world)
				if err != nil {
					return nil, fmt.Errorf("load %q: %w", l.Name(), err)
				}
				ww, err := w.In(e.world)
				if err != nil {
					return nil, fmt.Errorf("load %q: %w", l.Name(), err)
				}
				dot, err := l.torque.Dot(diffVector(ww, in.Speeds[i]))
				if err != nil {
					return nil, fmt.Errorf("load %q: %w", l.Name(), err)
				}
				terms = append(terms, dot)
				continue
			}
			v, err := l.point.VelocityIn(e.world)
			if err != nil {
				return nil, fmt.Errorf("load %q: %w", l.Name(), err)
			}
			vw, err := v.In(e.world)
			if err != nil {
				return nil, fmt.Errorf("load %q: %w", l.Name(), err)
			}
			dot, err := l.force.Dot(diffVector(vw, in.Speeds[i]))
			if err != nil {
				return nil, fmt.Errorf("load %q: %w", l.Name(), err)
			}
			terms = append(terms, dot)
		}
		forcing[i] = Add(terms...)
	}

	return &EOM{
		MassMatrix:   mass,
		Forcing:      forcing,
		Coordinates:  in.Coordinates,
		Speeds:       in.Speeds,
		Kinematics:   in.Kinematics,
		Nonholonomic: in.Nonholonomic,
	}, nil
}

// DegreesOfFreedom returns the number of independent speeds after motion
// constraints.
func (m *EOM) DegreesOfFreedom() int {
	return len(m.Speeds) - len(m.Nonholonomic)
}
