package model

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/symbols"
)

// Assembler drives a composed tree through the define lifecycle and
// aggregates the result. It owns the per-run symbol registry: created fresh
// when DefineAll starts, discarded once aggregation completes.
type Assembler struct {
	root    Component
	engine  *algebra.Engine
	log     logrus.FieldLogger
	reg     *symbols.Registry
	defined bool
	sys     *System
}

// Option configures an assembler.
type Option func(*Assembler)

// WithLogger routes stage progress logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Assembler) { a.log = l }
}

// NewAssembler prepares a define run for the tree rooted at root.
func NewAssembler(root Component, engine *algebra.Engine, opts ...Option) *Assembler {
	a := &Assembler{root: root, engine: engine, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefineAll executes the five stages over the whole tree: connections, then
// objects, kinematics, loads and constraints, each stage completing
// tree-wide before the next starts. Within the connections stage nodes run
// declarations-first (pre-order); the remaining stages run strictly children
// before parent, with a node's declared connections immediately after the
// node's own hook. The lifecycle is single-shot; a failed run leaves the
// tree partially defined and unusable.
func (a *Assembler) DefineAll() error {
	rn := a.root.treeNode()
	if rn.parent != nil {
		return fmt.Errorf("%w: define must start at the root, %q is attached under %q",
			ErrStructural, rn.name, rn.parent.path())
	}
	if a.defined || rn.stage != StageUninitialized {
		return fmt.Errorf("%w: %q", ErrAlreadyDefined, rn.name)
	}
	a.defined = true

	if err := a.checkRequirements(a.root); err != nil {
		return err
	}

	a.reg = symbols.New(a.engine)
	ctx := &Context{Engine: a.engine, Symbols: a.reg, Log: a.log}

	if err := a.defineConnections(a.root, ctx); err != nil {
		return err
	}
	for _, st := range []Stage{StageObjects, StageKinematics, StageLoads, StageConstraints} {
		if err := a.runStage(a.root, st, ctx); err != nil {
			return err
		}
	}
	a.log.WithFields(logrus.Fields{
		"root":    rn.name,
		"symbols": a.reg.Len(),
	}).Info("model tree defined")
	return nil
}

// checkRequirements fails fast when a hard child role is unfilled anywhere
// in the tree.
func (a *Assembler) checkRequirements(c Component) error {
	n := c.treeNode()
	for _, r := range missingHard(n) {
		return fmt.Errorf("%w: hard requirement %q of %q is unfilled",
			ErrStructural, r.Role, c.Path())
	}
	for _, ch := range n.children {
		if err := a.checkRequirements(ch); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) defineConnections(c Component, ctx *Context) error {
	if h, ok := c.(ConnectionsDefiner); ok {
		if err := h.DefineConnections(ctx); err != nil {
			return &DefinitionError{Path: c.Path(), Stage: StageUninitialized, Wrapped: err}
		}
	}
	// Connections registered by the hook above are processed right after it.
	for _, conn := range c.treeNode().connections {
		if h, ok := conn.(ConnectionsDefiner); ok {
			if err := h.DefineConnections(ctx); err != nil {
				return &DefinitionError{Path: conn.Path(), Stage: StageUninitialized, Wrapped: err}
			}
		}
	}
	for _, ch := range c.treeNode().children {
		if err := a.defineConnections(ch, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assembler) runStage(c Component, st Stage, ctx *Context) error {
	for _, ch := range c.treeNode().children {
		if err := a.runStage(ch, st, ctx); err != nil {
			return err
		}
	}
	if err := a.visit(c, st, ctx); err != nil {
		return err
	}
	for _, conn := range c.treeNode().connections {
		if err := a.visit(conn, st, ctx); err != nil {
			return err
		}
	}
	return nil
}

// visit gates and runs one component's hook for one stage. The explicit
// stage precondition turns any ordering bug into a locatable error instead
// of a silently inconsistent symbolic system.
func (a *Assembler) visit(c Component, st Stage, ctx *Context) error {
	n := c.treeNode()
	if n.stage != st-1 {
		return &DefinitionError{Path: c.Path(), Stage: st, Wrapped: fmt.Errorf(
			"%w: component is at %s, cannot advance to %s", ErrNotReady, n.stage, st)}
	}
	for _, ch := range n.children {
		if ch.treeNode().stage != st {
			return &DefinitionError{Path: c.Path(), Stage: st, Wrapped: fmt.Errorf(
				"%w: child %q is still at %s", ErrNotReady, ch.Name(), ch.treeNode().stage)}
		}
	}

	var err error
	switch st {
	case StageObjects:
		if h, ok := c.(ObjectsDefiner); ok {
			err = h.DefineObjects(ctx)
		}
	case StageKinematics:
		if h, ok := c.(KinematicsDefiner); ok {
			err = h.DefineKinematics(ctx)
		}
	case StageLoads:
		if h, ok := c.(LoadsDefiner); ok {
			err = h.DefineLoads(ctx)
		}
	case StageConstraints:
		if h, ok := c.(ConstraintsDefiner); ok {
			err = h.DefineConstraints(ctx)
		}
	}
	if err != nil {
		de := &DefinitionError{Path: c.Path(), Stage: st, Wrapped: err}
		a.log.WithFields(logrus.Fields{
			"node":  c.Path(),
			"stage": st.String(),
		}).WithError(err).Error("stage failed, tree must be discarded")
		return de
	}
	n.stage = st
	a.log.WithFields(logrus.Fields{
		"node":  c.Path(),
		"stage": st.String(),
	}).Debug("stage complete")
	return nil
}
