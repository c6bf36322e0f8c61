package algebra

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a symbol. Different kinds never share an identifier; the
// symbols registry relies on that when generating scoped names.
type Kind int

const (
	Constant Kind = iota
	Coordinate
	Speed
	Auxiliary
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Coordinate:
		return "coordinate"
	case Speed:
		return "speed"
	case Auxiliary:
		return "auxiliary"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Expr is a scalar symbolic expression.
type Expr interface {
	String() string
	// diff differentiates with respect to a symbol, treating every other
	// symbol as independent of it.
	diff(s *Symbol) Expr
	free(set map[*Symbol]struct{})
}

// Symbol is a named symbolic quantity.
type Symbol struct {
	name string
	kind Kind
}

func (s *Symbol) Name() string   { return s.name }
func (s *Symbol) Kind() Kind     { return s.kind }
func (s *Symbol) String() string { return s.name }

func (s *Symbol) diff(wrt *Symbol) Expr {
	if s == wrt {
		return Number(1)
	}
	return Number(0)
}

func (s *Symbol) free(set map[*Symbol]struct{}) { set[s] = struct{}{} }

type num float64

// Number returns a numeric literal expression.
func Number(v float64) Expr { return num(v) }

func (n num) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (n num) diff(*Symbol) Expr         { return num(0) }
func (n num) free(map[*Symbol]struct{}) {}

type sum struct{ terms []Expr }

type product struct{ factors []Expr }

type sine struct{ arg Expr }

type cosine struct{ arg Expr }

// Add builds a sum, folding numeric terms, dropping zeros and cancelling
// syntactically identical terms with opposite coefficients.
func Add(xs ...Expr) Expr {
	var flat []Expr
	acc := 0.0
	for _, x := range xs {
		switch t := x.(type) {
		case num:
			acc += float64(t)
		case sum:
			for _, inner := range t.terms {
				if n, ok := inner.(num); ok {
					acc += float64(n)
				} else {
					flat = append(flat, inner)
				}
			}
		default:
			flat = append(flat, x)
		}
	}

	// Collect like terms by the printed form of their non-numeric part.
	type like struct {
		coeff float64
		rest  Expr
	}
	var order []string
	byKey := make(map[string]*like)
	for _, t := range flat {
		coeff, rest := splitCoeff(t)
		key := rest.String()
		if l, ok := byKey[key]; ok {
			l.coeff += coeff
			continue
		}
		byKey[key] = &like{coeff: coeff, rest: rest}
		order = append(order, key)
	}

	var terms []Expr
	for _, key := range order {
		l := byKey[key]
		if l.coeff == 0 {
			continue
		}
		terms = append(terms, Mul(num(l.coeff), l.rest))
	}
	if acc != 0 {
		terms = append(terms, num(acc))
	}
	switch len(terms) {
	case 0:
		return num(0)
	case 1:
		return terms[0]
	}
	return sum{terms: terms}
}

// splitCoeff splits a term into a numeric coefficient and the remaining
// factor.
func splitCoeff(e Expr) (float64, Expr) {
	p, ok := e.(product)
	if !ok {
		return 1, e
	}
	n, ok := p.factors[0].(num)
	if !ok {
		return 1, e
	}
	return float64(n), Mul(p.factors[1:]...)
}

// Mul builds a product, folding numeric factors. Any zero factor collapses
// the whole product.
func Mul(xs ...Expr) Expr {
	var factors []Expr
	acc := 1.0
	for _, x := range xs {
		switch t := x.(type) {
		case num:
			acc *= float64(t)
		case product:
			for _, inner := range t.factors {
				if n, ok := inner.(num); ok {
					acc *= float64(n)
				} else {
					factors = append(factors, inner)
				}
			}
		default:
			factors = append(factors, x)
		}
	}
	if acc == 0 {
		return num(0)
	}
	if acc != 1 {
		factors = append([]Expr{num(acc)}, factors...)
	}
	switch len(factors) {
	case 0:
		return num(1)
	case 1:
		return factors[0]
	}
	return product{factors: factors}
}

// Neg negates an expression.
func Neg(x Expr) Expr { return Mul(Number(-1), x) }

// Sub subtracts b from a.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Square multiplies an expression by itself. Integer powers are kept as
// explicit products so the printed form stays acceptable to sm.
func Square(x Expr) Expr { return Mul(x, x) }

// Sin returns the sine of an expression.
func Sin(x Expr) Expr {
	if n, ok := x.(num); ok && n == 0 {
		return num(0)
	}
	return sine{arg: x}
}

// Cos returns the cosine of an expression.
func Cos(x Expr) Expr {
	if n, ok := x.(num); ok && n == 0 {
		return num(1)
	}
	return cosine{arg: x}
}

func (s sum) String() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (s sum) diff(wrt *Symbol) Expr {
	ds := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		ds[i] = t.diff(wrt)
	}
	return Add(ds...)
}

func (s sum) free(set map[*Symbol]struct{}) {
	for _, t := range s.terms {
		t.free(set)
	}
}

func (p product) String() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		if _, isSum := f.(sum); isSum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (p product) diff(wrt *Symbol) Expr {
	// Product rule over all factors.
	terms := make([]Expr, 0, len(p.factors))
	for i := range p.factors {
		fs := make([]Expr, len(p.factors))
		copy(fs, p.factors)
		fs[i] = p.factors[i].diff(wrt)
		terms = append(terms, Mul(fs...))
	}
	return Add(terms...)
}

func (p product) free(set map[*Symbol]struct{}) {
	for _, f := range p.factors {
		f.free(set)
	}
}

func (s sine) String() string { return "sin(" + s.arg.String() + ")" }

func (s sine) diff(wrt *Symbol) Expr {
	return Mul(Cos(s.arg), s.arg.diff(wrt))
}

func (s sine) free(set map[*Symbol]struct{}) { s.arg.free(set) }

func (c cosine) String() string { return "cos(" + c.arg.String() + ")" }

func (c cosine) diff(wrt *Symbol) Expr {
	return Mul(Number(-1), Sin(c.arg), c.arg.diff(wrt))
}

func (c cosine) free(set map[*Symbol]struct{}) { c.arg.free(set) }

// Diff differentiates e with respect to s, treating all other symbols as
// independent.
func Diff(e Expr, s *Symbol) Expr { return e.diff(s) }

// IsZero reports whether e is the literal zero.
func IsZero(e Expr) bool {
	n, ok := e.(num)
	return ok && n == 0
}

// FreeSymbols returns the symbols appearing in e, sorted by name.
func FreeSymbols(e Expr) []*Symbol {
	set := make(map[*Symbol]struct{})
	e.free(set)
	out := make([]*Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
