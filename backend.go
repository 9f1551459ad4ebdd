package graft

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// BoxContent is the content value the built-in scene backend understands.
// A primitive view description whose Content is a BoxContent renders as a
// colored or textured rectangle, or as a debug-font label when Text is set.
type BoxContent struct {
	X, Y          float64
	Width, Height float64
	Color         Color
	Text          string
	Image         *ebiten.Image
}

// SceneRenderer is the built-in Renderer: it constructs ElementNode elements
// for primitive views, applies mutation logs to its retained element tree,
// and draws that tree to an ebiten image. Use it as the collaborator set for
// a Host whose root element is SceneRenderer.Root.
type SceneRenderer struct {
	root *ElementNode
}

// NewSceneRenderer creates a scene renderer with an empty root group.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{root: NewGroupElement("root")}
}

// Root returns the backend's root element. Pass it as the root element when
// constructing the Host.
func (r *SceneRenderer) Root() *ElementNode {
	return r.root
}

// --- Renderer contract ---

// IsPrimitive classifies ordinary views without a body as element-bearing;
// everything else is a transparent composite.
func (r *SceneRenderer) IsPrimitive(d Description) bool {
	return d.Kind == KindView && d.Body == nil
}

// CreateElement constructs the element for a primitive description. Content
// that is not a BoxContent produces an empty group so the pass can proceed.
func (r *SceneRenderer) CreateElement(d Description) Element {
	content, ok := d.Content.(BoxContent)
	if !ok {
		return NewGroupElement(d.Type)
	}
	var el *ElementNode
	if content.Text != "" {
		el = NewLabelElement(d.Type, content.Text)
	} else {
		el = NewBoxElement(d.Type, content.Color)
	}
	applyBoxContent(el, content)
	return el
}

// CanReuse reports whether the element's kind still fits the description: a
// box cannot become a label in place, or vice versa.
func (r *SceneRenderer) CanReuse(e Element, d Description) bool {
	el, ok := e.(*ElementNode)
	if !ok {
		return false
	}
	content, ok := d.Content.(BoxContent)
	if !ok {
		return el.Kind == ElementGroup
	}
	if content.Text != "" {
		return el.Kind == ElementLabel
	}
	return el.Kind == ElementBox
}

// ContentEquals compares two content values. Composite fibers carry nil
// content, which compares equal to nil.
func (r *SceneRenderer) ContentEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, aok := a.(BoxContent)
	bv, bok := b.(BoxContent)
	return aok && bok && av == bv
}

// UpdateElement applies new content to an element in place. The cached
// geometry is informational for this backend; BoxContent carries placement.
func (r *SceneRenderer) UpdateElement(e Element, content any, geometry Geometry) {
	el, ok := e.(*ElementNode)
	if !ok {
		return
	}
	if c, ok := content.(BoxContent); ok {
		applyBoxContent(el, c)
	}
}

func applyBoxContent(el *ElementNode, c BoxContent) {
	el.X = c.X
	el.Y = c.Y
	el.Width = c.Width
	el.Height = c.Height
	el.Color = c.Color
	el.Text = c.Text
	el.Image = c.Image
}

// --- Mutation application ---

// Apply consumes one pass's mutation log strictly in order, reproducing the
// new tree topology on the retained element tree. Records whose handles are
// not ElementNodes, or whose element is no longer where the record expects
// it, are skipped.
func (r *SceneRenderer) Apply(muts []Mutation) {
	for _, m := range muts {
		switch m.Kind {
		case MutationInsert:
			parent, pok := m.Parent.(*ElementNode)
			el, eok := m.Element.(*ElementNode)
			if !pok || !eok {
				continue
			}
			index := m.Index
			if index < 0 {
				index = 0
			}
			if index > parent.NumChildren() {
				index = parent.NumChildren()
			}
			parent.AddChildAt(el, index)
		case MutationRemove:
			parent, pok := m.Parent.(*ElementNode)
			el, eok := m.Element.(*ElementNode)
			if !pok || !eok || el.Parent != parent {
				continue
			}
			parent.RemoveChild(el)
		case MutationUpdate:
			r.UpdateElement(m.Previous, m.Content, m.Geometry)
		case MutationReplace:
			parent, pok := m.Parent.(*ElementNode)
			prev, vok := m.Previous.(*ElementNode)
			repl, rok := m.Replacement.(*ElementNode)
			if !pok || !vok || !rok || prev.Parent != parent {
				continue
			}
			parent.ReplaceChild(prev, repl)
		}
	}
}

// --- Drawing ---

// Draw renders the retained element tree to the given image, depth-first,
// accumulating parent-relative offsets.
func (r *SceneRenderer) Draw(screen *ebiten.Image) {
	drawElement(screen, r.root, 0, 0)
}

func drawElement(screen *ebiten.Image, n *ElementNode, offsetX, offsetY float64) {
	x := offsetX + n.X
	y := offsetY + n.Y

	switch n.Kind {
	case ElementBox:
		if n.Width > 0 && n.Height > 0 {
			var op ebiten.DrawImageOptions
			img := n.Image
			if img == nil {
				img = WhitePixel
				op.GeoM.Scale(n.Width, n.Height)
				op.ColorScale.Scale(
					float32(n.Color.R), float32(n.Color.G),
					float32(n.Color.B), float32(n.Color.A))
			} else {
				w, h := img.Bounds().Dx(), img.Bounds().Dy()
				if w > 0 && h > 0 {
					op.GeoM.Scale(n.Width/float64(w), n.Height/float64(h))
				}
			}
			op.GeoM.Translate(x, y)
			screen.DrawImage(img, &op)
		}
	case ElementLabel:
		if n.Text != "" {
			ebitenutil.DebugPrintAt(screen, n.Text, int(x), int(y))
		}
	}

	for _, child := range n.children {
		drawElement(screen, child, x, y)
	}
}
