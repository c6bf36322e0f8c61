package algebra

import "fmt"

// Frame is an orientable reference frame. Frames form an orientation tree:
// Orient fixes a frame relative to a parent through a rotation, and the
// relative direction cosine matrix between any two frames of the same tree is
// composed on demand.
type Frame struct {
	name   string
	parent *Frame
	dcm    mat3 // rotation parent<-this: components in parent = dcm * components in this
	angVel *angularVelocity
}

type angularVelocity struct {
	rel *Frame
	vec Vector
}

type mat3 [3][3]Expr

func newFrame(name string) *Frame {
	return &Frame{name: name}
}

func (f *Frame) Name() string { return f.name }

// Unit vectors of the frame.
func (f *Frame) X() Vector { return NewVector(f, Number(1), Number(0), Number(0)) }
func (f *Frame) Y() Vector { return NewVector(f, Number(0), Number(1), Number(0)) }
func (f *Frame) Z() Vector { return NewVector(f, Number(0), Number(0), Number(1)) }

// Orient fixes f relative to rel by a rotation of angle about axis. The axis
// is re-expressed in rel before building the rotation matrix (Rodrigues
// form). Orienting a frame twice, against itself, or in a way that would
// close an orientation cycle is an error.
func (f *Frame) Orient(rel *Frame, axis Vector, angle Expr) error {
	if f == rel {
		return fmt.Errorf("algebra: cannot orient frame %q relative to itself", f.name)
	}
	if f.parent != nil {
		return fmt.Errorf("algebra: frame %q is already oriented", f.name)
	}
	for a := rel; a != nil; a = a.parent {
		if a == f {
			return fmt.Errorf("algebra: orienting %q relative to %q would create a cycle", f.name, rel.name)
		}
	}
	k, err := axis.In(rel)
	if err != nil {
		return err
	}
	f.parent = rel
	f.dcm = rodrigues(k.Components(), angle)
	return nil
}

// Weld fixes f relative to rel with identity orientation.
func (f *Frame) Weld(rel *Frame) error {
	return f.Orient(rel, rel.X(), Number(0))
}

// SetAngularVelocity declares the angular velocity of f relative to rel.
func (f *Frame) SetAngularVelocity(rel *Frame, v Vector) {
	f.angVel = &angularVelocity{rel: rel, vec: v}
}

// AngularVelocityIn returns the angular velocity of f as observed from ref.
// Frames without an explicit angular velocity are treated as fixed in their
// orientation parent.
func (f *Frame) AngularVelocityIn(ref *Frame) (Vector, error) {
	a, aroot, err := f.angVelFromRoot()
	if err != nil {
		return Vector{}, err
	}
	b, broot, err := ref.angVelFromRoot()
	if err != nil {
		return Vector{}, err
	}
	if aroot != broot {
		return Vector{}, fmt.Errorf("algebra: frames %q and %q are not related", f.name, ref.name)
	}
	return a.Sub(b)
}

func (f *Frame) angVelFromRoot() (Vector, *Frame, error) {
	root := f.root()
	acc := ZeroVector(root)
	for cur := f; cur != nil && cur != root; {
		if cur.angVel != nil {
			sum, err := acc.Add(cur.angVel.vec)
			if err != nil {
				return Vector{}, nil, err
			}
			acc = sum
			cur = cur.angVel.rel
			continue
		}
		cur = cur.parent
	}
	return acc, root, nil
}

func (f *Frame) root() *Frame {
	cur := f
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// dcmTo returns the rotation mapping components in f to components in ref.
func (f *Frame) dcmTo(ref *Frame) (mat3, error) {
	if f.root() != ref.root() {
		return mat3{}, fmt.Errorf("algebra: frames %q and %q are not related", f.name, ref.name)
	}
	toRoot := func(fr *Frame) mat3 {
		r := identity3()
		for cur := fr; cur.parent != nil; cur = cur.parent {
			r = matMul(cur.dcm, r)
		}
		return r
	}
	// R(ref<-f) = R(root<-ref)^T * R(root<-f)
	return matMul(matT(toRoot(ref)), toRoot(f)), nil
}

func identity3() mat3 {
	return mat3{
		{Number(1), Number(0), Number(0)},
		{Number(0), Number(1), Number(0)},
		{Number(0), Number(0), Number(1)},
	}
}

// rodrigues builds the rotation matrix for a rotation of angle about unit
// axis k: R = cos(a) I + sin(a) [k]x + (1-cos(a)) k k^T.
func rodrigues(k [3]Expr, angle Expr) mat3 {
	c := Cos(angle)
	s := Sin(angle)
	omc := Sub(Number(1), c)
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = Mul(omc, k[i], k[j])
			if i == j {
				r[i][j] = Add(r[i][j], c)
			}
		}
	}
	r[0][1] = Add(r[0][1], Mul(Number(-1), s, k[2]))
	r[0][2] = Add(r[0][2], Mul(s, k[1]))
	r[1][0] = Add(r[1][0], Mul(s, k[2]))
	r[1][2] = Add(r[1][2], Mul(Number(-1), s, k[0]))
	r[2][0] = Add(r[2][0], Mul(Number(-1), s, k[1]))
	r[2][1] = Add(r[2][1], Mul(s, k[0]))
	return r
}

func matMul(a, b mat3) mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = Add(
				Mul(a[i][0], b[0][j]),
				Mul(a[i][1], b[1][j]),
				Mul(a[i][2], b[2][j]),
			)
		}
	}
	return out
}

func matT(a mat3) mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}

func matVec(a mat3, v [3]Expr) [3]Expr {
	var out [3]Expr
	for i := 0; i < 3; i++ {
		out[i] = Add(
			Mul(a[i][0], v[0]),
			Mul(a[i][1], v[1]),
			Mul(a[i][2], v[2]),
		)
	}
	return out
}
