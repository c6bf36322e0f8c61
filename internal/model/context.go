package model

import (
	"github.com/sirupsen/logrus"

	"github.com/symbody/symbody/internal/algebra"
	"github.com/symbody/symbody/internal/symbols"
)

// Context is handed to every stage hook. It carries the engine and the
// per-run symbol registry explicitly; nothing in the define lifecycle is
// ambient process state.
type Context struct {
	Engine  *algebra.Engine
	Symbols *symbols.Registry
	Log     logrus.FieldLogger
}

// Symbol generates (or returns) the scoped symbol for a logical name owned
// by the given component.
func (c *Context) Symbol(owner Component, logical string, kind algebra.Kind) *algebra.Symbol {
	return c.Symbols.Generate(owner.Path(), logical, kind)
}

// World returns the engine's inertial frame.
func (c *Context) World() *algebra.Frame { return c.Engine.World() }

// Origin returns the engine's fixed origin point.
func (c *Context) Origin() *algebra.Point { return c.Engine.Origin() }
