package graft

// ProposedSize is the size proposal under which a cached geometry was
// computed. The zero value means "unspecified", the default used when an
// update mutation must be emitted before any geometry has been cached.
type ProposedSize struct {
	Width, Height float64
	Specified     bool
}

// Geometry is the cached layout result for an element-bearing fiber: where it
// was placed, how big it is, and the proposal that produced that size.
type Geometry struct {
	Origin   Vec2
	Width    float64
	Height   float64
	Proposal ProposedSize
}

// LayoutSubview records one element-bearing descendant in its element
// parent's ordered subview list, rebuilt every pass when dynamic layout is
// enabled. The layout collaborator consumes these lists after the pass.
type LayoutSubview struct {
	Fiber   *Fiber
	Element Element
	Traits  any
}

// --- Per-fiber layout cache ---

// LayoutDirty reports whether the fiber's cached geometry is stale. Every
// fiber visited by a pass is marked dirty before evaluation; the layout
// collaborator clears the flag by storing fresh geometry.
func (f *Fiber) LayoutDirty() bool {
	return f.cacheDirty
}

// Geometry returns the fiber's cached geometry and whether one has been
// stored since the fiber was created.
func (f *Fiber) Geometry() (Geometry, bool) {
	return f.geometry, f.hasGeometry
}

// SetGeometry stores freshly computed geometry and clears the dirty flag.
// Dirtiness that was cleared before the pass backtracks through the fiber is
// not propagated to its element parent.
func (f *Fiber) SetGeometry(g Geometry) {
	f.geometry = g
	f.hasGeometry = true
	f.cacheDirty = false
}

// InvalidateLayout marks the fiber's cached geometry stale without touching
// the cached value.
func (f *Fiber) InvalidateLayout() {
	f.cacheDirty = true
}

// Subviews returns the ordered layout-participation records collected under
// this fiber during the most recent pass. Only element-bearing fibers
// accumulate subviews, and only while the host has dynamic layout enabled.
// The returned slice MUST NOT be mutated by the caller.
func (f *Fiber) Subviews() []LayoutSubview {
	return f.subviews
}
