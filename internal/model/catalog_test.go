package model

import (
	"errors"
	"testing"
)

func TestCatalog(t *testing.T) {
	RegisterModel("test_cart", "Sliding cart for catalog tests.", func(name string) (Component, error) {
		return newCart(name), nil
	})
	RegisterConnection("test_weld", "Rigid junction for catalog tests.")

	c, err := NewOfKind("test_cart", "cart")
	if err != nil {
		t.Fatalf("NewOfKind: %v", err)
	}
	if _, ok := c.(*cartModel); !ok {
		t.Errorf("NewOfKind built %T, want *cartModel", c)
	}

	if _, err := NewOfKind("no_such_kind", "x"); !errors.Is(err, ErrStructural) {
		t.Errorf("unknown kind: err = %v, want ErrStructural", err)
	}

	found := false
	for _, k := range ModelKinds() {
		if k == "test_cart" {
			found = true
		}
	}
	if !found {
		t.Error("ModelKinds does not list test_cart")
	}
	if d := KindDescription("test_weld"); d != "Rigid junction for catalog tests." {
		t.Errorf("KindDescription = %q", d)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	RegisterModel("test_cart", "again", nil)
}
