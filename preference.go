package graft

// Preference is one upward-flowing value a view contributes to its subtree's
// aggregation. Combine, when non-nil, folds an existing value under the same
// key with the incoming one; otherwise the incoming value wins.
type Preference struct {
	Key     string
	Value   any
	Combine func(old, new any) any
}

// Preferences is a per-fiber aggregation bag of upward-flowing values. It is
// reset at the start of each pass and merged into the nearest observing
// ancestor when the fiber's subtree completes. The zero value is ready to use.
type Preferences struct {
	values   map[string]any
	combines map[string]func(old, new any) any
}

// Get returns the aggregated value for key and whether one is present.
func (p *Preferences) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of distinct keys in the bag.
func (p *Preferences) Len() int {
	return len(p.values)
}

// Set contributes a preference to the bag, combining with any existing value
// under the same key.
func (p *Preferences) Set(pref Preference) {
	if p.values == nil {
		p.values = make(map[string]any)
		p.combines = make(map[string]func(old, new any) any)
	}
	if old, ok := p.values[pref.Key]; ok {
		combine := pref.Combine
		if combine == nil {
			combine = p.combines[pref.Key]
		}
		if combine != nil {
			p.values[pref.Key] = combine(old, pref.Value)
			p.combines[pref.Key] = combine
			return
		}
	}
	p.values[pref.Key] = pref.Value
	if pref.Combine != nil {
		p.combines[pref.Key] = pref.Combine
	}
}

// merge folds every entry of child into p, using the child's combine
// functions where registered. Called as a completed subtree flushes into its
// nearest aggregating ancestor.
func (p *Preferences) merge(child *Preferences) {
	for key, v := range child.values {
		p.Set(Preference{Key: key, Value: v, Combine: child.combines[key]})
	}
}

// reset clears the bag for a new pass, retaining allocated storage.
func (p *Preferences) reset() {
	clear(p.values)
	clear(p.combines)
}
