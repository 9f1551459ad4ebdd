package graft

// Description is one node of the declarative tree the application recomputes
// on every state change. Descriptions are plain values; the reconciler folds
// them against the persistent fiber tree to decide what actually changed.
//
// Key, when non-nil, must be a comparable value and declares explicit
// identity: the described child matches the prior child with the same key
// regardless of position. Children without a key match positionally.
// Declaring the same explicit key twice at one level is a caller error and
// the outcome is unspecified.
type Description struct {
	Kind ViewKind

	// Type is the concrete view type name. A prior child is only reused when
	// both its key and its Type match; a type change at a stable key is a
	// structural replacement, never an update.
	Type string

	// Key is the optional explicit identity. Nil means positional matching.
	Key any

	// Content is the opaque rendered content value. The Renderer compares
	// content values to decide whether an update mutation is needed and
	// applies them to elements.
	Content any

	// Body evaluates the ordered child descriptions. Nil for primitives.
	Body func() []Description

	// Refresh resynchronizes externally tracked dynamic state. Invoked once
	// per node per pass, before Body.
	Refresh func()

	// OnAppear fires during the pass in which the node is first created.
	OnAppear func()

	// OnDisappear fires for every node of a subtree that is removed.
	OnDisappear func()

	// Preferences are upward-flowing values this view contributes. They merge
	// into the nearest observing ancestor when the subtree completes.
	Preferences []Preference

	// OnPreferences, when set, makes this node a preference aggregation point
	// for its descendants and observes the merged result as the subtree
	// completes.
	OnPreferences func(*Preferences)

	// LayoutTraits is an opaque per-subview value handed to the layout
	// collaborator through the element parent's subview list.
	LayoutTraits any
}

// --- Constructors ---

// NewRoot creates an application-root description. The host's root element is
// bound to the fiber this description produces.
func NewRoot(body func() []Description) Description {
	return Description{Kind: KindApp, Type: "App", Body: body}
}

// NewSceneView creates a scene grouping description with the given children.
func NewSceneView(typ string, body func() []Description) Description {
	return Description{Kind: KindScene, Type: typ, Body: body}
}

// NewView creates an ordinary view description. A view with no body is a
// primitive and carries a physical element; its content is handed to the
// Renderer for element construction and updates.
func NewView(typ string, content any) Description {
	return Description{Kind: KindView, Type: typ, Content: content}
}

// NewEmpty creates a description that renders nothing and has no children.
func NewEmpty() Description {
	return Description{Kind: KindEmpty, Type: "Empty"}
}

// WithKey returns a copy of the description carrying an explicit identity key.
// The key must be comparable.
func (d Description) WithKey(key any) Description {
	d.Key = key
	return d
}

// WithBody returns a copy of the description with the given child evaluation.
func (d Description) WithBody(body func() []Description) Description {
	d.Body = body
	return d
}
