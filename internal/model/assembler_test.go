package model

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

// stagedModel records every hook invocation.
type stagedModel struct {
	Base
	record *[]string
}

func newStaged(name string, record *[]string) *stagedModel {
	return &stagedModel{Base: NewBase(name), record: record}
}

func (m *stagedModel) mark(stage string) { *m.record = append(*m.record, m.Name()+":"+stage) }

func (m *stagedModel) DefineConnections(*Context) error { m.mark("connections"); return nil }
func (m *stagedModel) DefineObjects(*Context) error     { m.mark("objects"); return nil }
func (m *stagedModel) DefineKinematics(*Context) error  { m.mark("kinematics"); return nil }
func (m *stagedModel) DefineLoads(*Context) error       { m.mark("loads"); return nil }
func (m *stagedModel) DefineConstraints(*Context) error { m.mark("constraints"); return nil }

type stagedConn struct {
	ConnBase
	record *[]string
}

func (c *stagedConn) mark(stage string) { *c.record = append(*c.record, c.Name()+":"+stage) }

func (c *stagedConn) DefineConnections(*Context) error { c.mark("connections"); return nil }
func (c *stagedConn) DefineObjects(*Context) error     { c.mark("objects"); return nil }
func (c *stagedConn) DefineKinematics(*Context) error  { c.mark("kinematics"); return nil }
func (c *stagedConn) DefineLoads(*Context) error       { c.mark("loads"); return nil }
func (c *stagedConn) DefineConstraints(*Context) error { c.mark("constraints"); return nil }

// jointRoot declares a connection between its two children during the
// connections stage.
type jointRoot struct {
	Base
	record *[]string
	a, b   *stagedModel
}

func (r *jointRoot) mark(stage string) { *r.record = append(*r.record, r.Name()+":"+stage) }

func (r *jointRoot) DefineConnections(*Context) error {
	r.mark("connections")
	cb, err := NewConn("j", r.a.NewAttachment("p"), r.b.NewAttachment("p"))
	if err != nil {
		return err
	}
	return r.AddConnection(&stagedConn{ConnBase: cb, record: r.record})
}

func (r *jointRoot) DefineObjects(*Context) error     { r.mark("objects"); return nil }
func (r *jointRoot) DefineKinematics(*Context) error  { r.mark("kinematics"); return nil }
func (r *jointRoot) DefineLoads(*Context) error       { r.mark("loads"); return nil }
func (r *jointRoot) DefineConstraints(*Context) error { r.mark("constraints"); return nil }

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestDefineAllOrder(t *testing.T) {
	var record []string
	a := newStaged("a", &record)
	a1 := newStaged("a1", &record)
	b := newStaged("b", &record)
	root := &jointRoot{Base: NewBase("root"), record: &record, a: a, b: b}
	if err := a.Attach("a1", a1); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := root.Attach("a", a); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := root.Attach("b", b); err != nil {
		t.Fatalf("attach: %v", err)
	}

	asm := NewAssembler(root, newTestEngine(), WithLogger(quietLogger()))
	if err := asm.DefineAll(); err != nil {
		t.Fatalf("DefineAll: %v", err)
	}

	want := []string{
		// declarations first, pre-order, declared connection right after
		"root:connections", "j:connections",
		"a:connections", "a1:connections", "b:connections",
		// every later stage: children before parent, connections after the
		// declaring node, stages never interleaved
		"a1:objects", "a:objects", "b:objects", "root:objects", "j:objects",
		"a1:kinematics", "a:kinematics", "b:kinematics", "root:kinematics", "j:kinematics",
		"a1:loads", "a:loads", "b:loads", "root:loads", "j:loads",
		"a1:constraints", "a:constraints", "b:constraints", "root:constraints", "j:constraints",
	}
	if !reflect.DeepEqual(record, want) {
		t.Errorf("stage order:\n got %v\nwant %v", record, want)
	}

	if root.Stage() != StageConstraints {
		t.Errorf("root stage = %s, want constraints-defined", root.Stage())
	}
}

func TestDefineAllTwice(t *testing.T) {
	var record []string
	root := newStaged("root", &record)
	asm := NewAssembler(root, newTestEngine(), WithLogger(quietLogger()))
	if err := asm.DefineAll(); err != nil {
		t.Fatalf("first DefineAll: %v", err)
	}
	ran := len(record)

	err := asm.DefineAll()
	if !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("second DefineAll: err = %v, want ErrAlreadyDefined", err)
	}
	if len(record) != ran {
		t.Error("second DefineAll re-executed stage hooks")
	}

	// A fresh assembler over the same, already-defined tree must refuse too.
	if err := NewAssembler(root, newTestEngine()).DefineAll(); !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("fresh assembler on defined tree: err = %v, want ErrAlreadyDefined", err)
	}
}

func TestDefineAllNonRoot(t *testing.T) {
	var record []string
	root := newStaged("root", &record)
	child := newStaged("child", &record)
	if err := root.Attach("child", child); err != nil {
		t.Fatalf("attach: %v", err)
	}

	err := NewAssembler(child, newTestEngine(), WithLogger(quietLogger())).DefineAll()
	if !errors.Is(err, ErrStructural) {
		t.Errorf("err = %v, want ErrStructural for non-root define", err)
	}
}

func TestDefineAllUnfilledHardRequirement(t *testing.T) {
	var record []string
	root := newStaged("root", &record)
	root.Require(Requirement{Role: "wheel", Hard: true})

	err := NewAssembler(root, newTestEngine(), WithLogger(quietLogger())).DefineAll()
	if !errors.Is(err, ErrStructural) {
		t.Errorf("err = %v, want ErrStructural for unfilled hard requirement", err)
	}
	if len(record) != 0 {
		t.Error("stage hooks ran despite failed preflight")
	}
}

// readerModel reads a foreign attachment during kinematics.
type readerModel struct {
	Base
	att *Attachment
}

func (m *readerModel) DefineKinematics(*Context) error {
	_, err := m.att.Point()
	return err
}

func TestDefineAllNotReadyAttachment(t *testing.T) {
	// GIVEN a root whose kinematics references an attachment of a sub-model
	// that was never attached to the tree (its connection was omitted)
	orphan := newPlain("orphan")
	root := &readerModel{Base: NewBase("rig"), att: orphan.NewAttachment("p")}

	// WHEN the tree is defined
	err := NewAssembler(root, newTestEngine(), WithLogger(quietLogger())).DefineAll()

	// THEN the failure is ErrNotReady, wrapped with the reading node's path
	// and the kinematics stage
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
	var de *DefinitionError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DefinitionError", err)
	}
	if de.Path != "rig" {
		t.Errorf("DefinitionError.Path = %q, want rig", de.Path)
	}
	if de.Stage != StageKinematics {
		t.Errorf("DefinitionError.Stage = %s, want kinematics", de.Stage)
	}
}

func TestDefineAllAbortsOnFailure(t *testing.T) {
	var record []string
	root := newStaged("root", &record)
	bad := &readerModel{Base: NewBase("bad"), att: newPlain("x").NewAttachment("p")}
	good := newStaged("good", &record)
	if err := root.Attach("bad", bad); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := root.Attach("good", good); err != nil {
		t.Fatalf("attach: %v", err)
	}

	err := NewAssembler(root, newTestEngine(), WithLogger(quietLogger())).DefineAll()
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
	// The failing node's siblings at the same stage never ran, and nothing
	// past the kinematics stage ran anywhere.
	for _, ev := range record {
		if ev == "good:kinematics" || ev == "root:kinematics" ||
			ev == "good:loads" || ev == "root:loads" {
			t.Errorf("stage hook %q ran after the abort", ev)
		}
	}
}
