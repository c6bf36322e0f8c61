package algebra

import "fmt"

// Engine creates and interns symbolic objects. Every model tree works against
// one engine instance; the engine owns the inertial world frame and the fixed
// origin point all positions ultimately resolve against.
type Engine struct {
	world   *Frame
	origin  *Point
	symbols map[string]*Symbol
}

// NewEngine returns an engine with a fresh world frame and origin.
func NewEngine() *Engine {
	return &Engine{
		world:   newFrame("N"),
		origin:  newPoint("O"),
		symbols: make(map[string]*Symbol),
	}
}

// World returns the inertial reference frame.
func (e *Engine) World() *Frame { return e.world }

// Origin returns the fixed origin point.
func (e *Engine) Origin() *Point { return e.origin }

// NewSymbol interns a symbol by name. Repeated calls with the same name
// return the identical symbol; the symbols registry guarantees that distinct
// logical quantities never share a name.
func (e *Engine) NewSymbol(name string, kind Kind) *Symbol {
	if s, ok := e.symbols[name]; ok {
		return s
	}
	s := &Symbol{name: name, kind: kind}
	e.symbols[name] = s
	return s
}

// NewPoint creates a point.
func (e *Engine) NewPoint(name string) *Point { return newPoint(name) }

// NewFrame creates an unoriented frame.
func (e *Engine) NewFrame(name string) *Frame { return newFrame(name) }

// NewBody creates a rigid body with a body-fixed frame and a mass center
// point named after it.
func (e *Engine) NewBody(name string) *Body {
	return &Body{
		name:       name,
		frame:      newFrame(name + "_f"),
		masscenter: newPoint(name + "_mc"),
	}
}

func (e *Engine) String() string {
	return fmt.Sprintf("algebra.Engine(%d symbols)", len(e.symbols))
}
