package graft

import "time"

// Host owns one declarative tree: the current fiber buffer, the renderer
// collaborators, the reused mutation buffer, and the upward-flowing
// preference results. A Host is single-threaded; one pass runs to completion
// at a time and the returned mutation log is only valid until the next pass.
// Independent Hosts are fully isolated and may be driven concurrently.
type Host struct {
	renderer Renderer
	rootElem Element

	current    *Fiber
	generation uint64

	log       mutationLog
	rootPrefs Preferences

	layoutEnabled bool
	debug         bool

	inPass  bool
	pending *Description
}

// NewHost creates a host rendering through the given collaborators.
// rootElement, when non-nil, is the physical element the root fiber is bound
// to; insert mutations for top-level elements address it as their parent.
func NewHost(r Renderer, rootElement Element) *Host {
	if r == nil {
		panic("graft: nil renderer")
	}
	return &Host{
		renderer:      r,
		rootElem:      rootElement,
		layoutEnabled: true,
	}
}

// Root returns the root fiber of the current buffer, or nil before the first
// render.
func (h *Host) Root() *Fiber {
	return h.current
}

// Generation returns the number of completed passes.
func (h *Host) Generation() uint64 {
	return h.generation
}

// SetLayoutEnabled toggles the dynamic layout machinery: cache invalidation,
// dirtiness propagation, and subview bookkeeping are all skipped when off.
func (h *Host) SetLayoutEnabled(enabled bool) {
	h.layoutEnabled = enabled
}

// LayoutEnabled reports whether the dynamic layout machinery is active.
func (h *Host) LayoutEnabled() bool {
	return h.layoutEnabled
}

// RootPreferences returns the preference values that flowed past every
// aggregation point up to the root during the most recent pass.
func (h *Host) RootPreferences() *Preferences {
	return &h.rootPrefs
}

// Render reconciles the tree against a freshly produced root description and
// returns the ordered mutation log for the render backend to apply. The
// returned slice is reused by the next pass.
//
// The first call mounts the tree: every node is new and every element-bearing
// node below the root produces an insert. Calls made while a pass is in
// flight (from a hook) are coalesced: the description is queued for the next
// pass and nil is returned; drain with RenderIfNeeded.
func (h *Host) Render(d Description) []Mutation {
	if h.inPass {
		h.pending = &d
		return nil
	}
	h.inPass = true

	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}

	var wip *Fiber
	if h.current == nil {
		wip = &Fiber{
			kind:     d.Kind,
			desc:     d,
			elem:     h.rootElem,
			inserted: true,
		}
	} else {
		prev := h.current
		wip = prev.bindAlternate()
		changed := !h.renderer.ContentEquals(prev.desc.Content, d.Content)
		wip.reuse(prev, d, prev.key)
		wip.contentChanged = changed && wip.elem != nil
	}

	h.log.reset()
	h.rootPrefs.reset()

	p := newPass(h, wip)
	p.run()

	h.current = wip
	h.generation++
	h.inPass = false

	if h.debug {
		p.stats.duration = time.Since(t0)
		h.debugLog(p.stats)
		debugValidateTree(wip)
	}

	return h.log.ops
}

// NeedsRender reports whether a render was requested mid-pass and is still
// queued.
func (h *Host) NeedsRender() bool {
	return h.pending != nil
}

// RenderIfNeeded runs a pass for the most recently queued mid-pass render
// request, if any. Returns nil when nothing is queued.
func (h *Host) RenderIfNeeded() []Mutation {
	if h.pending == nil {
		return nil
	}
	d := *h.pending
	h.pending = nil
	return h.Render(d)
}
