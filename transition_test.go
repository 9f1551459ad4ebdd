package graft

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenOriginReachesTarget(t *testing.T) {
	el := NewBoxElement("b", ColorWhite)
	el.X, el.Y = 0, 0

	g := TweenOrigin(el, 100, 50, 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("group should not be done at the halfway point")
	}
	if el.X != 50 || el.Y != 25 {
		t.Errorf("halfway position = (%v, %v), want (50, 25)", el.X, el.Y)
	}

	g.Update(0.5)
	if !g.Done {
		t.Error("group should be done after the full duration")
	}
	if el.X != 100 || el.Y != 50 {
		t.Errorf("final position = (%v, %v), want (100, 50)", el.X, el.Y)
	}
}

func TestTweenSizeAnimatesDimensions(t *testing.T) {
	el := NewBoxElement("b", ColorWhite)
	el.Width, el.Height = 10, 10

	g := TweenSize(el, 20, 40, 1.0, ease.Linear)
	g.Update(1.0)

	if el.Width != 20 || el.Height != 40 {
		t.Errorf("size = (%v, %v), want (20, 40)", el.Width, el.Height)
	}
}

func TestTweenGeometryAnimatesAllFourFields(t *testing.T) {
	el := NewBoxElement("b", ColorWhite)

	g := TweenGeometry(el, Geometry{
		Origin: Vec2{X: 10, Y: 20}, Width: 30, Height: 40,
	}, 1.0, ease.Linear)
	g.Update(1.0)

	if el.X != 10 || el.Y != 20 || el.Width != 30 || el.Height != 40 {
		t.Errorf("geometry = (%v, %v, %v, %v), want (10, 20, 30, 40)",
			el.X, el.Y, el.Width, el.Height)
	}
}

func TestTweenStopsWhenTargetDetached(t *testing.T) {
	parent := NewGroupElement("p")
	el := NewBoxElement("b", ColorWhite)
	parent.AddChild(el)

	g := TweenOrigin(el, 100, 100, 1.0, ease.Linear)
	g.Update(0.25)
	parent.RemoveChild(el)
	x := el.X

	g.Update(0.25)

	if !g.Done {
		t.Error("group should stop once the target leaves the tree")
	}
	if el.X != x {
		t.Error("no writes should occur after the target is detached")
	}
}

func TestTweenOnNeverAttachedElementRuns(t *testing.T) {
	// A standalone element (a root, or one not yet inserted) has no parent
	// from the start; the group must still animate it.
	el := NewBoxElement("b", ColorWhite)

	g := TweenOrigin(el, 100, 0, 1.0, ease.Linear)
	g.Update(1.0)

	if !g.Done || el.X != 100 {
		t.Errorf("standalone element should tween: done=%v x=%v", g.Done, el.X)
	}
}

func TestTweenUpdateAfterDoneIsNoOp(t *testing.T) {
	el := NewBoxElement("b", ColorWhite)
	g := TweenOrigin(el, 10, 0, 0.5, ease.Linear)

	g.Update(1.0)
	el.X = 999
	g.Update(1.0)

	if el.X != 999 {
		t.Error("a finished group should not write to its target")
	}
}
