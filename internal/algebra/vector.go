package algebra

import "fmt"

// Vector is a 3-vector of scalar expressions with components expressed in a
// reference frame.
type Vector struct {
	frame *Frame
	c     [3]Expr
}

// NewVector builds a vector from components expressed in f.
func NewVector(f *Frame, x, y, z Expr) Vector {
	return Vector{frame: f, c: [3]Expr{x, y, z}}
}

// ZeroVector returns the zero vector expressed in f.
func ZeroVector(f *Frame) Vector {
	return NewVector(f, Number(0), Number(0), Number(0))
}

func (v Vector) Frame() *Frame       { return v.frame }
func (v Vector) Components() [3]Expr { return v.c }

// IsZero reports whether every component is the literal zero.
func (v Vector) IsZero() bool {
	return IsZero(v.c[0]) && IsZero(v.c[1]) && IsZero(v.c[2])
}

// In re-expresses the vector in frame f by rotating its components through
// the relative direction cosine matrix.
func (v Vector) In(f *Frame) (Vector, error) {
	if v.frame == nil {
		return Vector{}, fmt.Errorf("algebra: vector has no frame")
	}
	if v.frame == f {
		return v, nil
	}
	r, err := v.frame.dcmTo(f)
	if err != nil {
		return Vector{}, err
	}
	return Vector{frame: f, c: matVec(r, v.c)}, nil
}

// Add returns v + w expressed in v's frame.
func (v Vector) Add(w Vector) (Vector, error) {
	if w.IsZero() {
		return v, nil
	}
	if v.IsZero() && v.frame == w.frame {
		return w, nil
	}
	ww, err := w.In(v.frame)
	if err != nil {
		return Vector{}, err
	}
	return Vector{frame: v.frame, c: [3]Expr{
		Add(v.c[0], ww.c[0]),
		Add(v.c[1], ww.c[1]),
		Add(v.c[2], ww.c[2]),
	}}, nil
}

// Sub returns v - w expressed in v's frame.
func (v Vector) Sub(w Vector) (Vector, error) {
	return v.Add(w.Scale(Number(-1)))
}

// Scale multiplies every component by e.
func (v Vector) Scale(e Expr) Vector {
	return Vector{frame: v.frame, c: [3]Expr{
		Mul(e, v.c[0]),
		Mul(e, v.c[1]),
		Mul(e, v.c[2]),
	}}
}

// Dot returns the scalar product, re-expressing w in v's frame first.
func (v Vector) Dot(w Vector) (Expr, error) {
	ww, err := w.In(v.frame)
	if err != nil {
		return nil, err
	}
	return Add(
		Mul(v.c[0], ww.c[0]),
		Mul(v.c[1], ww.c[1]),
		Mul(v.c[2], ww.c[2]),
	), nil
}

// Cross returns the vector product expressed in v's frame.
func (v Vector) Cross(w Vector) (Vector, error) {
	ww, err := w.In(v.frame)
	if err != nil {
		return Vector{}, err
	}
	a, b := v.c, ww.c
	return Vector{frame: v.frame, c: [3]Expr{
		Sub(Mul(a[1], b[2]), Mul(a[2], b[1])),
		Sub(Mul(a[2], b[0]), Mul(a[0], b[2])),
		Sub(Mul(a[0], b[1]), Mul(a[1], b[0])),
	}}, nil
}

func (v Vector) String() string {
	if v.frame == nil {
		return "[]"
	}
	return fmt.Sprintf("[%s, %s, %s] (%s)", v.c[0], v.c[1], v.c[2], v.frame.Name())
}

// diffVector differentiates componentwise. Valid once the vector is expressed
// in the frame the caller measures in.
func diffVector(v Vector, s *Symbol) Vector {
	return Vector{frame: v.frame, c: [3]Expr{
		v.c[0].diff(s),
		v.c[1].diff(s),
		v.c[2].diff(s),
	}}
}
