package graft

// matchKey is the identity a child description is registered under when
// pairing new children against a fiber's prior children. Explicit user keys
// are stable regardless of position; children without one match by their
// 0-based position among all children evaluated so far at that level (not
// just element-bearing ones), which is unstable under insertion or removal at
// lower positions. That instability is the intended semantics for unkeyed
// children.
type matchKey struct {
	explicit any // user-declared key; nil when positional
	index    int // structural position; -1 when an explicit key is present
}

// resolveKey computes the matching key for a description at the given
// position among its siblings-so-far.
func resolveKey(d Description, position int) matchKey {
	if d.Key != nil {
		return matchKey{explicit: d.Key, index: -1}
	}
	return matchKey{explicit: nil, index: position}
}

// matches reports whether an existing fiber registered under the same key can
// be reused for the description: the concrete content type and the content
// variant must both agree. A mismatch falls through to create-new, orphaning
// the existing fiber.
func (f *Fiber) matches(d Description) bool {
	return f.kind == d.Kind && f.desc.Type == d.Type
}
