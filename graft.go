package graft

// ViewKind tags the content variant carried by a Fiber. The zero value is
// deliberately invalid: a live fiber whose kind was never set indicates a
// broken builder invariant and aborts the pass.
type ViewKind uint8

const (
	KindInvalid ViewKind = iota // zero value; never valid in a live tree
	KindApp                     // application root; carries the host's root element
	KindScene                   // scene grouping node
	KindView                    // ordinary view; primitive when it has no body
	KindEmpty                   // renders nothing and has no children
)

func (k ViewKind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindScene:
		return "scene"
	case KindView:
		return "view"
	case KindEmpty:
		return "empty"
	default:
		return "invalid"
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Element is an opaque handle to a physical output object produced by a
// primitive fiber (a backend widget, an ElementNode, a test stub). The engine
// never creates, compares, or destroys elements itself; it routes them through
// the Renderer and the mutation log.
type Element interface{}

// Renderer is the set of collaborator operations the reconciler delegates
// content decisions to. Implementations must not retain the Description
// values passed in beyond the call.
type Renderer interface {
	// IsPrimitive reports whether the description corresponds to a node that
	// carries a physical element directly, as opposed to a composite that is
	// transparent for element-parent purposes.
	IsPrimitive(d Description) bool

	// CreateElement constructs a new physical element for the description.
	// Called at most once per fiber lifetime unless the element is replaced.
	CreateElement(d Description) Element

	// CanReuse reports whether the existing element can still represent the
	// new description. A false return replaces the element (remove + insert
	// semantics on the backend side, emitted as a replace mutation).
	CanReuse(e Element, d Description) bool

	// ContentEquals reports whether two content values are equal. Unequal
	// content on a reused fiber produces an update mutation.
	ContentEquals(a, b any) bool

	// UpdateElement applies new content and geometry to an element in place.
	// Invoked by the backend when consuming update mutations, never during
	// a reconciliation pass.
	UpdateElement(e Element, content any, geometry Geometry)
}
