package algebra

import "errors"

// Domain errors for the equations-of-motion derivation.
var (
	// ErrNoBodies indicates a derivation over an empty body set.
	ErrNoBodies = errors.New("algebra: no bodies to derive equations for")

	// ErrNoSpeeds indicates no generalized speeds were collected.
	ErrNoSpeeds = errors.New("algebra: no generalized speeds")

	// ErrKinematicCount indicates the kinematic differential equations do not
	// match the generalized coordinates one to one.
	ErrKinematicCount = errors.New("algebra: kinematic equation count does not match coordinate count")

	// ErrOverconstrained indicates more motion constraints than generalized
	// speeds.
	ErrOverconstrained = errors.New("algebra: more motion constraints than generalized speeds")
)
