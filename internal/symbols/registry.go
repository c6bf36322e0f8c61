// Package symbols generates collision-free identifiers for symbolic
// quantities, scoped by the owning component's path in the model tree.
//
// A registry is created fresh for every define run and discarded once
// aggregation completes, so symbol tables never leak between runs or between
// model trees.
package symbols

import (
	"fmt"
	"strings"

	"github.com/symbody/symbody/internal/algebra"
)

type key struct {
	path    string
	logical string
	kind    algebra.Kind
}

// Entry records one generated symbol together with the owner that requested
// it, in generation order.
type Entry struct {
	Path    string
	Logical string
	Kind    algebra.Kind
	Symbol  *algebra.Symbol
}

// Registry maps (owner path, logical name, kind) triples to symbols. Repeated
// lookups for the same triple return the identical symbol; triples differing
// in any field never collide on the generated identifier.
type Registry struct {
	engine *algebra.Engine
	table  map[key]*algebra.Symbol
	taken  map[string]key
	order  []Entry
}

// New returns an empty registry backed by the given engine.
func New(engine *algebra.Engine) *Registry {
	return &Registry{
		engine: engine,
		table:  make(map[key]*algebra.Symbol),
		taken:  make(map[string]key),
	}
}

// Generate returns the symbol for (ownerPath, logical, kind), creating it on
// first use. The identifier is the underscore-joined owner path plus the
// logical name; if another triple already produced that identifier, a kind
// tag and, as a last resort, a counter are appended, so the mapping is
// injective.
func (r *Registry) Generate(ownerPath, logical string, kind algebra.Kind) *algebra.Symbol {
	k := key{path: ownerPath, logical: logical, kind: kind}
	if s, ok := r.table[k]; ok {
		return s
	}
	name := mangle(ownerPath, logical)
	if _, clash := r.taken[name]; clash {
		name = name + "_" + kindTag(kind)
	}
	base := name
	for i := 2; ; i++ {
		if _, clash := r.taken[name]; !clash {
			break
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
	s := r.engine.NewSymbol(name, kind)
	r.table[k] = s
	r.taken[name] = k
	r.order = append(r.order, Entry{Path: ownerPath, Logical: logical, Kind: kind, Symbol: s})
	return s
}

// Entries returns all generated symbols in generation order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.order))
	copy(out, r.order)
	return out
}

// OfKind returns the generated symbols of one kind, in generation order.
func (r *Registry) OfKind(kind algebra.Kind) []*algebra.Symbol {
	var out []*algebra.Symbol
	for _, e := range r.order {
		if e.Kind == kind {
			out = append(out, e.Symbol)
		}
	}
	return out
}

// Owner returns the owner path that generated a symbol, or "" if the symbol
// did not come from this registry.
func (r *Registry) Owner(s *algebra.Symbol) string {
	for _, e := range r.order {
		if e.Symbol == s {
			return e.Path
		}
	}
	return ""
}

// Len returns the number of generated symbols.
func (r *Registry) Len() int { return len(r.order) }

func mangle(ownerPath, logical string) string {
	if ownerPath == "" {
		return logical
	}
	return strings.ReplaceAll(ownerPath, ".", "_") + "_" + logical
}

func kindTag(k algebra.Kind) string {
	switch k {
	case algebra.Coordinate:
		return "q"
	case algebra.Speed:
		return "u"
	case algebra.Auxiliary:
		return "aux"
	}
	return "c"
}
