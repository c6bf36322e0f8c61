package symbols

import (
	"testing"

	"github.com/symbody/symbody/internal/algebra"
)

func TestGenerateIdempotent(t *testing.T) {
	r := New(algebra.NewEngine())

	a := r.Generate("bicycle.front_wheel", "r", algebra.Constant)
	b := r.Generate("bicycle.front_wheel", "r", algebra.Constant)
	if a != b {
		t.Error("repeated Generate with identical triple should return the same symbol")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestGenerateScopedByPath(t *testing.T) {
	r := New(algebra.NewEngine())

	front := r.Generate("bicycle.front_wheel", "r", algebra.Constant)
	rear := r.Generate("bicycle.rear_wheel", "r", algebra.Constant)
	if front == rear {
		t.Error("same logical name under different owners must not collide")
	}
	if front.Name() == rear.Name() {
		t.Errorf("identifiers collide: %s", front.Name())
	}
	if front.Name() != "bicycle_front_wheel_r" {
		t.Errorf("identifier = %s, want bicycle_front_wheel_r", front.Name())
	}
}

func TestGenerateKindDisambiguation(t *testing.T) {
	r := New(algebra.NewEngine())

	c := r.Generate("disc", "x", algebra.Constant)
	q := r.Generate("disc", "x", algebra.Coordinate)
	u := r.Generate("disc", "x", algebra.Speed)
	names := map[string]bool{c.Name(): true, q.Name(): true, u.Name(): true}
	if len(names) != 3 {
		t.Errorf("same logical name with different kinds must not collide: %s %s %s",
			c.Name(), q.Name(), u.Name())
	}
}

func TestGenerateRepeatedClashes(t *testing.T) {
	r := New(algebra.NewEngine())

	// Four distinct triples that all mangle to the same identifier: the
	// kind tag resolves the first clash, then a counter from the same base.
	first := r.Generate("a", "x_q", algebra.Constant)
	second := r.Generate("a.x", "q", algebra.Constant)
	third := r.Generate("a_x", "q", algebra.Constant)
	fourth := r.Generate("", "a_x_q", algebra.Constant)

	if first.Name() != "a_x_q" {
		t.Errorf("first identifier = %s, want a_x_q", first.Name())
	}
	if second.Name() != "a_x_q_c" {
		t.Errorf("second identifier = %s, want a_x_q_c", second.Name())
	}
	if third.Name() != "a_x_q_c2" {
		t.Errorf("third identifier = %s, want a_x_q_c2", third.Name())
	}
	if fourth.Name() != "a_x_q_c3" {
		t.Errorf("fourth identifier = %s, want a_x_q_c3", fourth.Name())
	}
}

func TestOfKindOrder(t *testing.T) {
	r := New(algebra.NewEngine())

	q1 := r.Generate("a", "q1", algebra.Coordinate)
	r.Generate("a", "m", algebra.Constant)
	q2 := r.Generate("b", "q2", algebra.Coordinate)

	coords := r.OfKind(algebra.Coordinate)
	if len(coords) != 2 || coords[0] != q1 || coords[1] != q2 {
		t.Errorf("OfKind(Coordinate) = %v, want [q1 q2] in generation order", coords)
	}
}

func TestOwner(t *testing.T) {
	r := New(algebra.NewEngine())

	s := r.Generate("bicycle.steer", "q", algebra.Coordinate)
	if got := r.Owner(s); got != "bicycle.steer" {
		t.Errorf("Owner = %q, want bicycle.steer", got)
	}
	other := algebra.NewEngine().NewSymbol("foreign", algebra.Constant)
	if got := r.Owner(other); got != "" {
		t.Errorf("Owner of foreign symbol = %q, want empty", got)
	}
}
