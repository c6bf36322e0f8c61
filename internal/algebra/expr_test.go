package algebra

import "testing"

func TestAddFolding(t *testing.T) {
	e := NewEngine()
	x := e.NewSymbol("x", Constant)

	if got := Add(Number(2), Number(3)).String(); got != "5" {
		t.Errorf("Add(2,3) = %s, want 5", got)
	}
	if got := Add(x, Number(0)).String(); got != "x" {
		t.Errorf("x + 0 = %s, want x", got)
	}
	if got := Add().String(); got != "0" {
		t.Errorf("empty Add = %s, want 0", got)
	}
}

func TestMulFolding(t *testing.T) {
	e := NewEngine()
	x := e.NewSymbol("x", Constant)

	if got := Mul(x, Number(0)).String(); got != "0" {
		t.Errorf("x*0 = %s, want 0", got)
	}
	if got := Mul(x, Number(1)).String(); got != "x" {
		t.Errorf("x*1 = %s, want x", got)
	}
	if got := Mul(Number(2), Number(4)).String(); got != "8" {
		t.Errorf("2*4 = %s, want 8", got)
	}
}

func TestTrigFolding(t *testing.T) {
	if got := Sin(Number(0)).String(); got != "0" {
		t.Errorf("sin(0) = %s, want 0", got)
	}
	if got := Cos(Number(0)).String(); got != "1" {
		t.Errorf("cos(0) = %s, want 1", got)
	}
}

func TestDiff(t *testing.T) {
	e := NewEngine()
	x := e.NewSymbol("x", Speed)
	a := e.NewSymbol("a", Constant)

	if got := Diff(x, x).String(); got != "1" {
		t.Errorf("d(x)/dx = %s, want 1", got)
	}
	if got := Diff(a, x).String(); got != "0" {
		t.Errorf("d(a)/dx = %s, want 0", got)
	}
	// d(a*x)/dx = a
	if got := Diff(Mul(a, x), x).String(); got != "a" {
		t.Errorf("d(a*x)/dx = %s, want a", got)
	}
	// d(x*x)/dx = x + x
	got := Diff(Square(x), x)
	set := make(map[*Symbol]struct{})
	got.free(set)
	if _, ok := set[x]; !ok {
		t.Errorf("d(x*x)/dx = %s, expected dependence on x", got)
	}
	// d(sin(x))/dx = cos(x)
	if got := Diff(Sin(x), x).String(); got != "cos(x)" {
		t.Errorf("d(sin x)/dx = %s, want cos(x)", got)
	}
}

func TestFreeSymbols(t *testing.T) {
	e := NewEngine()
	x := e.NewSymbol("x", Constant)
	y := e.NewSymbol("y", Constant)

	free := FreeSymbols(Add(Mul(x, y), Sin(x)))
	if len(free) != 2 || free[0] != x || free[1] != y {
		t.Errorf("FreeSymbols = %v, want [x y]", free)
	}
}

func TestSymbolInterning(t *testing.T) {
	e := NewEngine()
	a := e.NewSymbol("m", Constant)
	b := e.NewSymbol("m", Constant)
	if a != b {
		t.Error("NewSymbol should intern symbols by name")
	}
}
