package graft

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an ElementNode
// simultaneously. Because the reconciler preserves element identity for
// reused fibers, a group started on an element keeps animating it across any
// number of renders. Call Update(dt) each frame; if the target element has
// been detached from the tree, the group stops immediately.
//
// There is no global animation manager. Users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *ElementNode
	// attached remembers whether the target was in a tree when the group was
	// created, so a never-attached element (a standalone root) still tweens.
	attached bool
	Done     bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target element has been detached, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.attached && g.target.Parent == nil {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenOrigin creates a TweenGroup that animates el.X and el.Y to the given
// target coordinates over the specified duration using the easing function.
func TweenOrigin(el *ElementNode, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: el, attached: el.Parent != nil}
	g.tweens[0] = gween.New(float32(el.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(el.Y), float32(toY), duration, fn)
	g.fields[0] = &el.X
	g.fields[1] = &el.Y
	return g
}

// TweenSize creates a TweenGroup that animates el.Width and el.Height to the
// given target values over the specified duration using the easing function.
func TweenSize(el *ElementNode, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: el, attached: el.Parent != nil}
	g.tweens[0] = gween.New(float32(el.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(el.Height), float32(toH), duration, fn)
	g.fields[0] = &el.Width
	g.fields[1] = &el.Height
	return g
}

// TweenGeometry creates a TweenGroup that animates el's origin and size to
// the placement carried by an update mutation's geometry.
func TweenGeometry(el *ElementNode, to Geometry, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: el, attached: el.Parent != nil}
	g.tweens[0] = gween.New(float32(el.X), float32(to.Origin.X), duration, fn)
	g.tweens[1] = gween.New(float32(el.Y), float32(to.Origin.Y), duration, fn)
	g.tweens[2] = gween.New(float32(el.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(el.Height), float32(to.Height), duration, fn)
	g.fields[0] = &el.X
	g.fields[1] = &el.Y
	g.fields[2] = &el.Width
	g.fields[3] = &el.Height
	return g
}
