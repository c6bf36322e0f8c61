package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors for tree composition and the define lifecycle.
var (
	// ErrStructural indicates a malformed tree: duplicate sibling names,
	// double parenting, cycles, self-connections, unmet requirements.
	ErrStructural = errors.New("model: structural error")

	// ErrInterfaceConflict indicates an attachment claimed by more than one
	// connection.
	ErrInterfaceConflict = errors.New("model: attachment already claimed")

	// ErrNotReady indicates state was read before the stage that produces it
	// completed.
	ErrNotReady = errors.New("model: state not ready")

	// ErrAlreadyDefined indicates a second define attempt on the same tree.
	ErrAlreadyDefined = errors.New("model: tree already defined")
)

// DefinitionError wraps a stage failure with the offending component's tree
// path and the stage that was running. A failed define leaves the tree in a
// partially-defined state that must be discarded.
type DefinitionError struct {
	Path    string
	Stage   Stage
	Wrapped error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("define %s at %q: %v", e.Stage.hookName(), e.Path, e.Wrapped)
}

func (e *DefinitionError) Unwrap() error { return e.Wrapped }

// SolverError reports a rejection by the equations-of-motion solver,
// tagged with the sub-model that contributed each generalized coordinate and
// speed for diagnosability. The solver's own failure is wrapped unmodified.
type SolverError struct {
	Origins map[string]string // symbol identifier -> contributing path
	Wrapped error
}

func (e *SolverError) Error() string {
	if len(e.Origins) == 0 {
		return fmt.Sprintf("model: solver rejected the aggregated system: %v", e.Wrapped)
	}
	names := make([]string, 0, len(e.Origins))
	for n := range e.Origins {
		names = append(names, n)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, n := range names {
		pairs[i] = n + " from " + e.Origins[n]
	}
	return fmt.Sprintf("model: solver rejected the aggregated system: %v (%s)",
		e.Wrapped, strings.Join(pairs, ", "))
}

func (e *SolverError) Unwrap() error { return e.Wrapped }
