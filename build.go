package graft

// foldResult is the outcome of folding one level of children: the head of the
// freshly linked sibling chain and the prior children whose key was never
// claimed, in their prior structural order.
type foldResult struct {
	first   *Fiber
	orphans []*Fiber
}

// fold reconciles the freshly evaluated child descriptions of f against f's
// prior children (the child pool of f's alternate), producing a new sibling
// chain under f. Each description either reuses a matched prior child
// (updated in place, alternate pairing established in the same step) or
// creates a fresh fiber marked as newly inserted.
//
// A type or kind change at a matching key is treated as no match: the new
// description gets a fresh fiber and the prior child is left unclaimed,
// yielding a remove + insert pair at the pass level rather than an update.
func (p *pass) fold(f *Fiber, descs []Description) foldResult {
	prior := f.alternate

	// Index prior children by match key. The pool shrinks as descriptions
	// claim entries; whatever survives is orphaned.
	var pool map[matchKey]*Fiber
	if prior != nil && len(prior.pool) > 0 {
		pool = make(map[matchKey]*Fiber, len(prior.pool))
		for k, c := range prior.pool {
			pool[k] = c
		}
	}

	var first, last *Fiber
	next := make(map[matchKey]*Fiber, len(descs))

	for i, d := range descs {
		key := resolveKey(d, i)

		var node *Fiber
		if existing, ok := pool[key]; ok && existing.matches(d) {
			delete(pool, key)
			node = existing.bindAlternate()
			changed := !p.host.renderer.ContentEquals(existing.desc.Content, d.Content)
			node.reuse(existing, d, key)
			node.contentChanged = changed && node.elem != nil
		} else {
			node = &Fiber{
				kind:     d.Kind,
				desc:     d,
				key:      key,
				inserted: true,
			}
		}

		node.parent = f
		if f.elem != nil {
			node.elemParent = f
		} else {
			node.elemParent = f.elemParent
		}
		if f.desc.OnPreferences != nil {
			node.prefParent = f
		} else {
			node.prefParent = f.prefParent
		}

		if last == nil {
			first = node
		} else {
			last.sibling = node
		}
		last = node
		next[key] = node
	}

	f.pool = next
	f.child = first

	// Collect unclaimed prior children in their prior chain order so removal
	// emission is deterministic.
	var orphans []*Fiber
	if prior != nil && len(pool) > 0 {
		for c := prior.child; c != nil; c = c.sibling {
			if pool[c.key] == c {
				orphans = append(orphans, c)
			}
		}
	}

	return foldResult{first: first, orphans: orphans}
}
