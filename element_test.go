package graft

import "testing"

// --- Construction ---

func TestNewElementsHaveUniqueIDs(t *testing.T) {
	a := NewBoxElement("a", ColorWhite)
	b := NewBoxElement("b", ColorWhite)
	g := NewGroupElement("g")
	if a.ID == b.ID || b.ID == g.ID || a.ID == g.ID {
		t.Error("element IDs should be unique")
	}
}

func TestNewLabelElement(t *testing.T) {
	l := NewLabelElement("title", "hello")
	if l.Kind != ElementLabel || l.Text != "hello" {
		t.Errorf("label = kind %d text %q, want label kind with text hello", l.Kind, l.Text)
	}
}

// --- Tree manipulation ---

func TestAddChildAppends(t *testing.T) {
	parent := NewGroupElement("p")
	a := NewBoxElement("a", ColorWhite)
	b := NewBoxElement("b", ColorWhite)

	parent.AddChild(a)
	parent.AddChild(b)

	if parent.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b {
		t.Error("children should be in append order")
	}
	if a.Parent != parent || b.Parent != parent {
		t.Error("children should point back at the parent")
	}
}

func TestAddChildAtInserts(t *testing.T) {
	parent := NewGroupElement("p")
	a := NewBoxElement("a", ColorWhite)
	c := NewBoxElement("c", ColorWhite)
	parent.AddChild(a)
	parent.AddChild(c)

	b := NewBoxElement("b", ColorWhite)
	parent.AddChildAt(b, 1)

	want := []*ElementNode{a, b, c}
	for i, el := range want {
		if parent.ChildAt(i) != el {
			t.Errorf("child %d = %q, want %q", i, parent.ChildAt(i).Name, el.Name)
		}
	}
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewGroupElement("p1")
	p2 := NewGroupElement("p2")
	child := NewBoxElement("c", ColorWhite)

	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Error("child should leave the old parent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should join the new parent")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil child")
		}
	}()
	NewGroupElement("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	parent := NewGroupElement("p")
	child := NewGroupElement("c")
	parent.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for cycle")
		}
	}()
	child.AddChild(parent)
}

func TestAddChildAtIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	NewGroupElement("p").AddChildAt(NewBoxElement("a", ColorWhite), 1)
}

func TestRemoveChild(t *testing.T) {
	parent := NewGroupElement("p")
	a := NewBoxElement("a", ColorWhite)
	b := NewBoxElement("b", ColorWhite)
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)

	if parent.NumChildren() != 1 || parent.ChildAt(0) != b {
		t.Error("remaining children should close the gap")
	}
	if a.Parent != nil {
		t.Error("removed child should have no parent")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	p1 := NewGroupElement("p1")
	p2 := NewGroupElement("p2")
	child := NewBoxElement("c", ColorWhite)
	p1.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong parent")
		}
	}()
	p2.RemoveChild(child)
}

func TestReplaceChildKeepsPosition(t *testing.T) {
	parent := NewGroupElement("p")
	a := NewBoxElement("a", ColorWhite)
	b := NewBoxElement("b", ColorWhite)
	c := NewBoxElement("c", ColorWhite)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	repl := NewBoxElement("r", ColorWhite)
	parent.ReplaceChild(b, repl)

	if parent.ChildAt(1) != repl {
		t.Error("replacement should take the replaced child's position")
	}
	if b.Parent != nil {
		t.Error("replaced child should leave the tree")
	}
	if repl.Parent != parent {
		t.Error("replacement should point at the parent")
	}
}

func TestReplaceChildSubtreeLeavesWithPrev(t *testing.T) {
	parent := NewGroupElement("p")
	prev := NewGroupElement("prev")
	grandchild := NewBoxElement("g", ColorWhite)
	parent.AddChild(prev)
	prev.AddChild(grandchild)

	parent.ReplaceChild(prev, NewBoxElement("r", ColorWhite))

	if prev.NumChildren() != 1 || grandchild.Parent != prev {
		t.Error("the replaced child's subtree should stay with it")
	}
}

// --- Color ---

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}.toRGBA()
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("toRGBA = %v, want {255 128 0 255}", c)
	}
}
