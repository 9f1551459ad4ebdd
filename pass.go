package graft

import "time"

// passStats holds per-pass timing and mutation metrics.
// Only populated when Host debug mode is on.
type passStats struct {
	visited  int
	inserts  int
	updates  int
	removes  int
	replaces int
	duration time.Duration
}

// pass is the mutable context threaded through one reconciliation traversal:
// the mutation log, the per-element-parent index counters, and scratch
// buffers. Each pass owns the tree exclusively for its duration; keeping the
// state here rather than on the Host makes independent hosts safe to drive
// concurrently.
type pass struct {
	host     *Host
	root     *Fiber
	counters map[*Fiber]int
	removals []Mutation // scratch batch, prepended to the log per visit
	stats    passStats
}

func newPass(h *Host, root *Fiber) *pass {
	return &pass{
		host:     h,
		root:     root,
		counters: make(map[*Fiber]int),
	}
}

// run drives the cursor over the whole tree, parent-first depth-first,
// terminating when it returns to the root with all descendants exhausted.
// The traversal must always complete: structural inconsistencies downgrade to
// skipped mutations, never to an abandoned cursor.
func (p *pass) run() {
	node := p.root
	for {
		p.visit(node)
		if node.child != nil {
			node = node.child
			continue
		}
		for node.sibling == nil {
			p.complete(node)
			if node == p.root || node.parent == nil {
				return
			}
			node = node.parent
		}
		p.complete(node)
		node = node.sibling
	}
}

// visit performs the per-node work in priority order: element creation and
// index assignment, cache invalidation, lifecycle hooks and mutation
// emission, dynamic-property refresh and the child fold, orphan removal, and
// layout-subview bookkeeping.
func (p *pass) visit(f *Fiber) {
	if f.kind == KindInvalid {
		// A live fiber with no content variant means the builder broke an
		// invariant; continuing would corrupt the mutation log.
		panic("graft: fiber has no content variant")
	}
	p.stats.visited++

	r := p.host.renderer

	// Element creation is lazy: the first pass whose description classifies
	// as primitive makes the element, whether the fiber is new or reused at
	// its key. The mirror flip sheds the element: a reused child whose
	// description turned composite can no longer be addressed by updates, so
	// it leaves the backend tree. The root is exempt; its element is supplied
	// by the host and it never has an element parent.
	created := false
	if f.elem == nil && r.IsPrimitive(f.desc) {
		f.elem = r.CreateElement(f.desc)
		created = true
	} else if f.elem != nil && !f.inserted && f.elemParent != nil && !r.IsPrimitive(f.desc) {
		if f.elemParent.elem != nil {
			p.host.log.append(Mutation{
				Kind:    MutationRemove,
				Element: f.elem,
				Parent:  f.elemParent.elem,
			})
			p.stats.removes++
		}
		f.elem = nil
		f.contentChanged = false
	}

	// Index assignment. Composite fibers are transparent: they neither carry
	// an index nor consume a slot under their element parent.
	if f.elem != nil && f.elemParent != nil {
		f.elemIndex = p.counters[f.elemParent]
		p.counters[f.elemParent]++
	}

	// Cache invalidation: any node visited this pass is assumed to need
	// re-measurement. The layout collaborator narrows this by storing fresh
	// geometry before the pass backtracks through the node.
	if p.host.layoutEnabled {
		f.cacheDirty = true
		if f.alternate != nil {
			f.alternate.cacheDirty = true
		}
	}

	// Preference bookkeeping for this pass.
	f.subviews = f.subviews[:0]
	f.prefs.reset()
	for _, pref := range f.desc.Preferences {
		f.prefs.Set(pref)
	}

	// Lifecycle and mutation emission. The appear hook is node lifecycle and
	// fires only for fibers created this pass; a reused fiber that just
	// gained its element emits the insert without it.
	if f.inserted && f.desc.OnAppear != nil {
		f.desc.OnAppear()
	}
	if created {
		if f.elemParent != nil && f.elemParent.elem != nil {
			p.host.log.append(Mutation{
				Kind:    MutationInsert,
				Element: f.elem,
				Parent:  f.elemParent.elem,
				Index:   f.elemIndex,
			})
			p.stats.inserts++
		}
		// The fresh element was built from the current content; an update
		// would be redundant.
		f.contentChanged = false
	} else if f.elem != nil && !f.inserted {
		if !r.CanReuse(f.elem, f.desc) {
			// The element can no longer represent the description; swap it
			// out wholesale. The replacement carries the new content, so a
			// separate update would be redundant.
			if f.elemParent != nil && f.elemParent.elem != nil {
				replacement := r.CreateElement(f.desc)
				p.host.log.append(Mutation{
					Kind:        MutationReplace,
					Parent:      f.elemParent.elem,
					Previous:    f.elem,
					Replacement: replacement,
				})
				f.elem = replacement
				p.stats.replaces++
			}
			f.contentChanged = false
		}
		if f.contentChanged {
			var geo Geometry
			if f.hasGeometry {
				geo = f.geometry
			}
			p.host.log.append(Mutation{
				Kind:     MutationUpdate,
				Previous: f.elem,
				Content:  f.desc.Content,
				Geometry: geo,
			})
			p.stats.updates++
			f.contentChanged = false
		}
	}

	// Property refresh, then fold the freshly evaluated children against the
	// prior ones.
	if f.desc.Refresh != nil {
		f.desc.Refresh()
	}
	var descs []Description
	if f.desc.Body != nil {
		descs = f.desc.Body()
	}
	res := p.fold(f, descs)

	// Orphan handling: prior children whose key went unclaimed. Disappear
	// fires for every node of each orphaned subtree; removals are emitted
	// only for the element frontier and prepended to the log so they precede
	// everything queued earlier, including removals of their own ancestors'
	// siblings.
	if len(res.orphans) > 0 {
		p.removals = p.removals[:0]
		for _, orphan := range res.orphans {
			notifyDisappear(orphan)
			p.collectFrontierRemovals(orphan)
		}
		p.host.log.prependRemovals(p.removals)
		p.stats.removes += len(p.removals)
	}

	// Layout-subview bookkeeping for the dynamic layout collaborator.
	if p.host.layoutEnabled && f.elem != nil && f.elemParent != nil {
		f.elemParent.subviews = append(f.elemParent.subviews, LayoutSubview{
			Fiber:   f,
			Element: f.elem,
			Traits:  f.desc.LayoutTraits,
		})
	}
}

// complete runs when the cursor leaves a fiber with its whole subtree
// exhausted: bottom-up cache-invalidation propagation and the preference
// flush into the nearest aggregating ancestor.
func (p *pass) complete(f *Fiber) {
	// Only dirtiness that survived the subtree (was not cleared by a
	// SetGeometry) bubbles to the element parent; this is how a child's
	// size change invalidates ancestor layout.
	if p.host.layoutEnabled && f.cacheDirty && f.elemParent != nil {
		f.elemParent.cacheDirty = true
		if f.elemParent.alternate != nil {
			f.elemParent.alternate.cacheDirty = true
		}
	}

	if f.desc.OnPreferences != nil {
		f.desc.OnPreferences(&f.prefs)
	}
	if f.prefs.Len() > 0 {
		if f.prefParent != nil {
			f.prefParent.prefs.merge(&f.prefs)
		} else {
			p.host.rootPrefs.merge(&f.prefs)
		}
	}
}

// notifyDisappear invokes the disappear hook on every node of the subtree,
// parent first.
func notifyDisappear(f *Fiber) {
	if f.desc.OnDisappear != nil {
		f.desc.OnDisappear()
	}
	for c := f.child; c != nil; c = c.sibling {
		notifyDisappear(c)
	}
}

// collectFrontierRemovals walks an orphaned subtree collecting a remove
// mutation for every element-bearing node reachable without stepping into
// another element-bearing node's subtree: removing the first element found
// along a branch removes everything beneath it.
func (p *pass) collectFrontierRemovals(f *Fiber) {
	if f.elem != nil {
		if f.elemParent != nil && f.elemParent.elem != nil {
			p.removals = append(p.removals, Mutation{
				Kind:    MutationRemove,
				Element: f.elem,
				Parent:  f.elemParent.elem,
			})
		}
		return
	}
	for c := f.child; c != nil; c = c.sibling {
		p.collectFrontierRemovals(c)
	}
}
