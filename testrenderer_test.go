package graft

import "testing"

// stubElement is a minimal physical element for reconciler tests.
type stubElement struct {
	typ string
}

// stubRenderer implements Renderer with recording hooks. Content values in
// tests are comparable (strings, ints, nil), so equality is plain ==.
type stubRenderer struct {
	created []*stubElement
	updated int
	// canReuse, when set, overrides the default always-reusable answer.
	canReuse func(e Element, d Description) bool
	// isPrimitive, when set, overrides the default kind-based classification.
	isPrimitive func(d Description) bool
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{}
}

// IsPrimitive classifies every ordinary view as element-bearing, including
// views with children, so tests can nest elements. Scenes and the app root
// stay transparent.
func (r *stubRenderer) IsPrimitive(d Description) bool {
	if r.isPrimitive != nil {
		return r.isPrimitive(d)
	}
	return d.Kind == KindView
}

func (r *stubRenderer) CreateElement(d Description) Element {
	el := &stubElement{typ: d.Type}
	r.created = append(r.created, el)
	return el
}

func (r *stubRenderer) CanReuse(e Element, d Description) bool {
	if r.canReuse != nil {
		return r.canReuse(e, d)
	}
	return true
}

func (r *stubRenderer) ContentEquals(a, b any) bool {
	return a == b
}

func (r *stubRenderer) UpdateElement(e Element, content any, geometry Geometry) {
	r.updated++
}

// --- Description builders ---

func box(typ string, content any) Description {
	return NewView(typ, content)
}

func group(typ string, children ...Description) Description {
	return NewSceneView(typ, func() []Description { return children })
}

// viewWith is an element-bearing view that also has children.
func viewWith(typ string, content any, children ...Description) Description {
	return NewView(typ, content).WithBody(func() []Description { return children })
}

func appOf(children ...Description) Description {
	return NewRoot(func() []Description { return children })
}

// newTestHost builds a host over a stub renderer with a stub root element.
func newTestHost() (*Host, *stubRenderer, *stubElement) {
	r := newStubRenderer()
	rootElem := &stubElement{typ: "root"}
	return NewHost(r, rootElem), r, rootElem
}

// --- Assertion helpers ---

func mutationKinds(muts []Mutation) []MutationKind {
	kinds := make([]MutationKind, len(muts))
	for i, m := range muts {
		kinds[i] = m.Kind
	}
	return kinds
}

func assertKinds(t *testing.T, muts []Mutation, want ...MutationKind) {
	t.Helper()
	if len(muts) != len(want) {
		t.Fatalf("log has %d mutations %v, want %d %v",
			len(muts), mutationKinds(muts), len(want), want)
	}
	for i, k := range want {
		if muts[i].Kind != k {
			t.Fatalf("mutation %d is %v, want %v (log: %v)",
				i, muts[i].Kind, k, mutationKinds(muts))
		}
	}
}

func countKind(muts []Mutation, kind MutationKind) int {
	n := 0
	for _, m := range muts {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// childByType finds the first child fiber whose description type matches.
func childByType(f *Fiber, typ string) *Fiber {
	for c := f.Child(); c != nil; c = c.Sibling() {
		if c.Description().Type == typ {
			return c
		}
	}
	return nil
}
