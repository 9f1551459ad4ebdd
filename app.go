package graft

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window Run opens. The zero value is usable:
// an untitled 640x480 window with a black clear color.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	ShowFPS    bool
}

// App wires a Host and the built-in SceneRenderer into an ebiten game loop.
// The application supplies a root function that describes the whole scene
// from current state; calling Invalidate after a state change schedules a
// reconciliation pass on the next frame.
type App struct {
	host     *Host
	renderer *SceneRenderer
	root     func() Description
	update   func() error

	dirty   bool
	clear   Color
	showFPS bool
}

// NewApp creates an app whose scene is described by root.
func NewApp(root func() Description) *App {
	if root == nil {
		panic("graft: nil root function")
	}
	r := NewSceneRenderer()
	return &App{
		host:     NewHost(r, r.Root()),
		renderer: r,
		root:     root,
		dirty:    true,
	}
}

// Host returns the app's reconciliation host.
func (a *App) Host() *Host {
	return a.host
}

// Renderer returns the app's scene backend.
func (a *App) Renderer() *SceneRenderer {
	return a.renderer
}

// Invalidate schedules a reconciliation pass for the next frame. Redundant
// calls within one frame coalesce into a single pass.
func (a *App) Invalidate() {
	a.dirty = true
}

// SetUpdateFunc installs a per-frame hook invoked before reconciliation.
func (a *App) SetUpdateFunc(fn func() error) {
	a.update = fn
}

// Update implements ebiten.Game. It runs the per-frame hook, reconciles if
// invalidated, and applies the resulting mutations to the element tree.
func (a *App) Update() error {
	if a.update != nil {
		if err := a.update(); err != nil {
			return err
		}
	}
	if a.dirty {
		a.dirty = false
		a.renderer.Apply(a.host.Render(a.root()))
	}
	// Drain renders requested from inside hooks during the pass.
	for a.host.NeedsRender() {
		a.renderer.Apply(a.host.RenderIfNeeded())
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.clear.toRGBA())
	a.renderer.Draw(screen)
	if a.showFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the app's game loop until the window closes
// or the update hook returns an error.
func Run(a *App, cfg RunConfig) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	a.clear = cfg.ClearColor
	a.showFPS = cfg.ShowFPS
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(a)
}
