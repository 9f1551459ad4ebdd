package graft

// Fiber is the persistent record for one instantiated view/scene in the tree.
// It survives across renders while its identity is retained, which is what
// keeps per-node state, running tweens, and lifecycle hooks stable.
//
// The child/sibling chain is the owning structure; parent, elementParent,
// preferenceParent, and alternate are plain lookup back-references. A fiber's
// chain always reflects the most recently completed fold at its parent.
type Fiber struct {
	kind ViewKind
	desc Description
	key  matchKey

	// elem is the physical output handle. Exactly one per primitive fiber;
	// composite fibers have none. The fiber only references the element to
	// address mutations, it does not own its lifetime.
	elem Element

	// Owning links.
	child   *Fiber
	sibling *Fiber

	// Non-owning links.
	parent     *Fiber
	elemParent *Fiber // nearest ancestor (possibly self's parent chain) carrying an element
	prefParent *Fiber // nearest ancestor observing preference aggregation
	alternate  *Fiber // paired fiber in the other buffer; mutual once established

	// elemIndex is the 0-based position of this fiber's element among its
	// element parent's element children. Freshly assigned by every pass that
	// touches the subtree, never valid across passes.
	elemIndex int

	// Pass-scoped state.
	inserted       bool // created by the current pass
	contentChanged bool // fold produced differing content for an existing element

	// pool indexes this fiber's children by match key, rebuilt by each fold.
	// The next pass folds against the pool of the fiber's alternate.
	pool map[matchKey]*Fiber

	// Layout cache.
	cacheDirty  bool
	geometry    Geometry
	hasGeometry bool
	subviews    []LayoutSubview

	// Preference aggregation, reset each pass.
	prefs Preferences
}

// --- Accessors ---

// Kind returns the fiber's content variant tag.
func (f *Fiber) Kind() ViewKind { return f.kind }

// Description returns the description most recently folded into the fiber.
func (f *Fiber) Description() Description { return f.desc }

// Element returns the fiber's physical element handle, or nil for composites.
func (f *Fiber) Element() Element { return f.elem }

// ElementIndex returns the element position assigned by the most recent pass.
// Only meaningful for element-bearing fibers. It always reflects the declared
// child order, including reorders of reused children, which emit no mutations
// and leave the backend's own child order untouched.
func (f *Fiber) ElementIndex() int { return f.elemIndex }

// Parent returns the fiber's structural parent.
func (f *Fiber) Parent() *Fiber { return f.parent }

// ElementParent returns the nearest ancestor carrying a physical element.
func (f *Fiber) ElementParent() *Fiber { return f.elemParent }

// Child returns the head of the fiber's child chain.
func (f *Fiber) Child() *Fiber { return f.child }

// Sibling returns the next fiber at the same level.
func (f *Fiber) Sibling() *Fiber { return f.sibling }

// Alternate returns the paired fiber in the other buffer, or nil if the pair
// has not been established.
func (f *Fiber) Alternate() *Fiber { return f.alternate }

// --- Alternate binding ---

// bindAlternate returns the fiber's counterpart in the other buffer, creating
// and mutually linking it on first use. The pair ping-pongs between the two
// buffers: on every pass the previously idle member is reused in place as the
// work-in-progress node.
func (f *Fiber) bindAlternate() *Fiber {
	if f.alternate == nil {
		f.alternate = &Fiber{alternate: f}
	}
	return f.alternate
}

// reuse updates the work-in-progress member of a pair with the freshly
// evaluated description of the current-buffer fiber it was matched against.
// The element handle carries over; stale links from the pair's previous turn
// in the active buffer are cleared so they cannot leak into the new chain.
func (f *Fiber) reuse(from *Fiber, d Description, key matchKey) {
	f.kind = d.Kind
	f.desc = d
	f.key = key
	f.elem = from.elem
	f.inserted = false
	f.contentChanged = false
	f.child = nil
	f.sibling = nil
	f.elemIndex = 0
	f.subviews = f.subviews[:0]
	f.prefs.reset()
	// Geometry travels with the pair so update mutations can report the
	// best-known placement.
	f.geometry = from.geometry
	f.hasGeometry = from.hasGeometry
}

// countFibers returns the number of fibers in the subtree rooted at f,
// following owning links only.
func countFibers(f *Fiber) int {
	if f == nil {
		return 0
	}
	n := 1
	for c := f.child; c != nil; c = c.sibling {
		n += countFibers(c)
	}
	return n
}
