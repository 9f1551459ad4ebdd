package graft

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ElementKind distinguishes rendering behavior for an ElementNode.
type ElementKind uint8

const (
	ElementGroup ElementKind = iota // container with no visual output
	ElementBox                      // solid color or image rectangle
	ElementLabel                    // debug-font text
)

// elementIDCounter is a plain counter (no atomic; graft is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// WhitePixel is a 1x1 white image used for solid color boxes.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// ElementNode is the physical element the built-in scene backend retains for
// every primitive fiber. The reconciler never touches these directly; it
// addresses them through mutation records which SceneRenderer.Apply consumes.
// Position is relative to the parent element.
type ElementNode struct {
	ID   uint32
	Kind ElementKind
	Name string

	Parent   *ElementNode
	children []*ElementNode

	X, Y          float64
	Width, Height float64
	Color         Color
	Image         *ebiten.Image
	Text          string
}

// NewGroupElement creates a container element with no visual representation.
func NewGroupElement(name string) *ElementNode {
	return &ElementNode{ID: nextElementID(), Kind: ElementGroup, Name: name, Color: ColorWhite}
}

// NewBoxElement creates a rectangle element filled with the given color.
func NewBoxElement(name string, c Color) *ElementNode {
	return &ElementNode{ID: nextElementID(), Kind: ElementBox, Name: name, Color: c}
}

// NewLabelElement creates a debug-font text element.
func NewLabelElement(name, text string) *ElementNode {
	return &ElementNode{ID: nextElementID(), Kind: ElementLabel, Name: name, Text: text, Color: ColorWhite}
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (n *ElementNode) AddChild(child *ElementNode) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *ElementNode) AddChildAt(child *ElementNode, index int) {
	if child == nil {
		panic("graft: cannot add nil child element")
	}
	if isElementAncestor(child, n) {
		panic("graft: adding child element would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("graft: child element index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != n.
func (n *ElementNode) RemoveChild(child *ElementNode) {
	if child.Parent != n {
		panic("graft: child element's parent is not this element")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// ReplaceChild swaps prev for replacement at prev's position. The children of
// prev stay with prev and leave the tree with it.
// Panics if prev.Parent != n.
func (n *ElementNode) ReplaceChild(prev, replacement *ElementNode) {
	if prev.Parent != n {
		panic("graft: replaced element's parent is not this element")
	}
	for i, c := range n.children {
		if c == prev {
			if replacement.Parent != nil {
				replacement.Parent.removeChildByPtr(replacement)
			}
			n.children[i] = replacement
			replacement.Parent = n
			prev.Parent = nil
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *ElementNode) Children() []*ElementNode {
	return n.children
}

// NumChildren returns the number of children.
func (n *ElementNode) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *ElementNode) ChildAt(index int) *ElementNode {
	return n.children[index]
}

// --- Helpers ---

// isElementAncestor reports whether candidate is an ancestor of node.
func isElementAncestor(candidate, node *ElementNode) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *ElementNode) removeChildByPtr(child *ElementNode) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
