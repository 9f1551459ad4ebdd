// Package graft is a declarative scene layer for [Ebitengine].
//
// Graft keeps a persistent fiber tree that mirrors the scene your code
// describes. On every state change the whole description is recomputed and a
// reconciliation pass folds it against the previous render, producing an
// ordered mutation log (insert, update, remove, replace) that the render
// backend applies. Node identity survives across renders, so per-node state,
// running tweens (via [gween]), and appear/disappear hooks stay stable while
// the description churns around them.
//
// # Quick start
//
// Describe the scene as a function of your state and hand it to [Run]:
//
//	items := []string{"a", "b", "c"}
//	app := graft.NewApp(func() graft.Description {
//		return graft.NewRoot(func() []graft.Description {
//			var views []graft.Description
//			for i, it := range items {
//				views = append(views, graft.NewView("Item", graft.BoxContent{
//					X: 10, Y: float64(20 * i), Width: 80, Height: 16,
//					Color: graft.Color{R: 0.3, G: 0.7, B: 1, A: 1},
//				}).WithKey(it))
//			}
//			return views
//		})
//	})
//	graft.Run(app, graft.RunConfig{Title: "My App", Width: 640, Height: 480})
//
// Mutate your state, call [App.Invalidate], and the next frame reconciles.
//
// # Identity
//
// Children carry either an explicit key ([Description.WithKey]) or match by
// position. Keyed children keep their element (and everything attached to it)
// across reorders, insertions, and removals of their siblings; unkeyed
// children are positional and re-pair index by index.
//
// # Custom backends
//
// The reconciler is independent of the built-in [SceneRenderer]: implement
// [Renderer], construct a [Host] around it, and consume the mutation log
// returned by [Host.Render] however your backend needs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package graft
