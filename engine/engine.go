// Package engine runs the per-frame update, collision and draw loop over an
// ordered list of entities.
//
// Each frame the engine polls input, computes the elapsed time, runs its
// update systems, tests every unordered pair of colliders once and fires the
// collision callbacks. Drawing clears the screen and draws every entity in
// list order, so later entities render on top.
package engine

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/frameloop/assets"
	"github.com/OpticalFlyer/frameloop/collide"
	"github.com/OpticalFlyer/frameloop/entity"
	"github.com/OpticalFlyer/frameloop/input"
)

var _ ebiten.Game = (*Engine)(nil)

// Engine implements ebiten.Game.
type Engine struct {
	objects []entity.Entity
	input   *input.Tracker
	loader  *assets.Loader
	systems []System

	// Frame timing
	now      func() time.Time
	last     time.Time
	maxDelta float64
	frames   uint64

	background  color.Color
	debugMode   bool
	onLoadError func(src string, err error)

	// Set by Layout
	ScreenWidth  int
	ScreenHeight int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSystems replaces the update systems. They run in order, before the
// collision pass.
func WithSystems(systems ...System) Option {
	return func(e *Engine) {
		e.systems = systems
	}
}

// WithMaxDelta caps the delta time handed to systems. Zero or less leaves
// it unbounded.
func WithMaxDelta(seconds float64) Option {
	return func(e *Engine) {
		e.maxDelta = seconds
	}
}

// WithClock sets the time source used for delta times.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithBackground sets the clear color.
func WithBackground(c color.Color) Option {
	return func(e *Engine) {
		e.background = c
	}
}

// WithDebug enables the debug overlay.
func WithDebug(enabled bool) Option {
	return func(e *Engine) {
		e.debugMode = enabled
	}
}

// WithInput sets the input tracker.
func WithInput(in *input.Tracker) Option {
	return func(e *Engine) {
		e.input = in
	}
}

// WithLoader sets the asset loader used by LoadSprite. A nil loader turns
// LoadSprite into an immediate failure.
func WithLoader(l *assets.Loader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLoadErrorHandler is called when LoadSprite fails, after logging.
func WithLoadErrorHandler(fn func(src string, err error)) Option {
	return func(e *Engine) {
		e.onLoadError = fn
	}
}

// New creates an engine with no objects. By default the only system is
// UpdateObjects and delta times are unbounded.
func New(opts ...Option) *Engine {
	e := &Engine{
		input:      input.New(),
		loader:     assets.NewLoader(),
		systems:    []System{UpdateObjects},
		now:        time.Now,
		background: color.Black,
	}
	for _, opt := range opts {
		opt(e)
	}
	LogDebug("engine created with %d systems, max delta %v", len(e.systems), e.maxDelta)
	return e
}

// Input returns the engine's input tracker.
func (e *Engine) Input() *input.Tracker {
	return e.input
}

// Loader returns the engine's asset loader.
func (e *Engine) Loader() *assets.Loader {
	return e.loader
}

// SetSystems replaces the update systems.
func (e *Engine) SetSystems(systems ...System) {
	e.systems = systems
}

// SetMaxDelta changes the delta time cap. Zero or less removes it.
func (e *Engine) SetMaxDelta(seconds float64) {
	e.maxDelta = seconds
}

// SetDebug toggles the debug overlay.
func (e *Engine) SetDebug(enabled bool) {
	e.debugMode = enabled
}

// Debug reports whether the debug overlay is shown.
func (e *Engine) Debug() bool {
	return e.debugMode
}

// Add appends objects to the end of the list.
func (e *Engine) Add(objs ...entity.Entity) {
	e.objects = append(e.objects, objs...)
}

// Remove deletes the first occurrence of obj. Missing objects are ignored.
func (e *Engine) Remove(obj entity.Entity) {
	if i := slices.Index(e.objects, obj); i >= 0 {
		e.objects = slices.Delete(e.objects, i, i+1)
	}
}

// Objects returns a copy of the object list in update and draw order.
func (e *Engine) Objects() []entity.Entity {
	return slices.Clone(e.objects)
}

// Frames returns the number of frames stepped so far.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Update advances one frame. It is called by Ebitengine.
func (e *Engine) Update() error {
	e.input.Poll()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		e.debugMode = !e.debugMode
	}

	if e.loader != nil {
		e.loader.Dispatch()
	}

	e.Step(e.tick())
	return nil
}

// tick returns the seconds since the previous frame, zero on the first one.
func (e *Engine) tick() float64 {
	now := e.now()
	var dt float64
	if !e.last.IsZero() {
		dt = now.Sub(e.last).Seconds()
	}
	e.last = now

	if e.maxDelta > 0 && dt > e.maxDelta {
		dt = e.maxDelta
	}
	return dt
}

// Step runs the update systems and the collision pass for a frame of dt
// seconds.
func (e *Engine) Step(dt float64) {
	for _, s := range e.systems {
		s.Update(e, dt)
	}
	e.CheckCollisions()
	e.frames++
}

// CheckCollisions tests every unordered pair of colliders once and notifies
// both participants of each hit.
func (e *Engine) CheckCollisions() {
	objs := e.Objects()
	for i := 0; i < len(objs); i++ {
		a, ok := objs[i].(entity.Collider)
		if !ok {
			continue
		}
		for j := i + 1; j < len(objs); j++ {
			// Objects removed by an earlier callback drop out of the pass
			if !e.contains(objs[i]) {
				break
			}
			if !e.contains(objs[j]) {
				continue
			}
			b, ok := objs[j].(entity.Collider)
			if !ok {
				continue
			}
			// Unsupported pairs never collide
			hit, err := collide.Test(a.Shape(), b.Shape())
			if err != nil || !hit {
				continue
			}
			e.notifyCollision(objs[i], objs[j])
			e.notifyCollision(objs[j], objs[i])
		}
	}
}

// notifyCollision tells obj about other unless either has left the list.
func (e *Engine) notifyCollision(obj, other entity.Entity) {
	if !e.contains(obj) || !e.contains(other) {
		return
	}
	if h, ok := obj.(entity.CollisionHandler); ok {
		h.OnCollision(other)
	}
}

// contains reports whether obj is still in the object list.
func (e *Engine) contains(obj entity.Entity) bool {
	return slices.Contains(e.objects, obj)
}

// Draw renders the frame. It is called by Ebitengine.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.Render(screen)
}

// Render clears screen to the background color and draws every Drawer in
// list order, then the debug overlay if enabled.
func (e *Engine) Render(screen *ebiten.Image) {
	screen.Fill(e.background)

	for _, obj := range e.objects {
		if d, ok := obj.(entity.Drawer); ok {
			d.Draw(screen)
		}
	}

	if e.debugMode {
		e.drawDebug(screen)
	}
}

func (e *Engine) drawDebug(screen *ebiten.Image) {
	mx, my := e.input.MousePosition()
	debugText := fmt.Sprintf("FPS: %.2f TPS: %.2f\nFrame: %d\nObjects: %d\nMouse: %.0f,%.0f\nKeys: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(), e.frames, len(e.objects),
		mx, my, e.input.HeldKeys())
	ebitenutil.DebugPrint(screen, debugText)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.ScreenWidth = outsideWidth
	e.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// LoadSprite loads src in the background and adds a Sprite at (x, y) once
// the image is ready. onLoad, if set, runs right after the sprite is added.
// Failures are logged and the sprite is never added.
func (e *Engine) LoadSprite(src string, x, y float64, onLoad func(*entity.Sprite)) {
	if e.loader == nil {
		e.loadFailed(src, fmt.Errorf("%w: %s", ErrNoLoader, shortSource(src)))
		return
	}
	e.loader.Load(src, func(img image.Image) {
		s := entity.NewSprite(x, y, ebiten.NewImageFromImage(img))
		e.Add(s)
		LogDebug("sprite loaded: %s (%.0fx%.0f)", shortSource(src), s.Width, s.Height)
		if onLoad != nil {
			onLoad(s)
		}
	}, func(err error) {
		e.loadFailed(src, err)
	})
}

func (e *Engine) loadFailed(src string, err error) {
	LogWarn("sprite load failed: %v", err)
	if e.onLoadError != nil {
		e.onLoadError(src, err)
	}
}

// shortSource keeps data URIs out of log lines.
func shortSource(src string) string {
	const limit = 48
	if len(src) <= limit {
		return src
	}
	return src[:limit] + "..."
}
