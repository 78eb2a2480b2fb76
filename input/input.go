package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tracker holds keyboard and mouse state for the running engine. The zero
// value is ready to use.
//
// State changes only through the event handlers (KeyDown, MouseMove, ...),
// which Poll calls once per tick on the game goroutine. Queries are therefore
// stable for the duration of a frame.
type Tracker struct {
	keys map[ebiten.Key]bool

	mouseX, mouseY float64
	mouseDown      bool
	clicked        bool

	// Touch state for mapping the primary touch onto the mouse
	touchID     ebiten.TouchID
	touchActive bool
	keyBuf      []ebiten.Key
	touchBuf    []ebiten.TouchID
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{
		keys: make(map[ebiten.Key]bool),
	}
}

// IsKeyDown reports whether key is currently held.
func (t *Tracker) IsKeyDown(key ebiten.Key) bool {
	return t.keys[key]
}

// HeldKeys returns the held keys in ascending order.
func (t *Tracker) HeldKeys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(t.keys))
	for k := range t.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsMouseDown reports whether the mouse button is held.
func (t *Tracker) IsMouseDown() bool {
	return t.mouseDown
}

// WasMouseClicked reports whether a press happened since the last
// ConsumeClick. It does not reset on its own.
func (t *Tracker) WasMouseClicked() bool {
	return t.clicked
}

// ConsumeClick clears the click flag.
func (t *Tracker) ConsumeClick() {
	t.clicked = false
}

// MousePosition returns the last known cursor position.
func (t *Tracker) MousePosition() (x, y float64) {
	return t.mouseX, t.mouseY
}

// Bounded is implemented by objects with a rectangular extent.
type Bounded interface {
	Bounds() (x, y, width, height float64)
}

// IsMouseInside reports whether the cursor lies within obj's bounds. Objects
// that are not Bounded have no extent and are never inside.
func (t *Tracker) IsMouseInside(obj any) bool {
	var x, y, w, h float64
	if b, ok := obj.(Bounded); ok {
		x, y, w, h = b.Bounds()
	}
	return t.mouseX >= x && t.mouseX < x+w &&
		t.mouseY >= y && t.mouseY < y+h
}

// KeyDown records key as held.
func (t *Tracker) KeyDown(key ebiten.Key) {
	if t.keys == nil {
		t.keys = make(map[ebiten.Key]bool)
	}
	t.keys[key] = true
}

// KeyUp records key as released.
func (t *Tracker) KeyUp(key ebiten.Key) {
	delete(t.keys, key)
}

// MouseMove records the cursor position.
func (t *Tracker) MouseMove(x, y float64) {
	t.mouseX = x
	t.mouseY = y
}

// MouseDown records a press and raises the click flag.
func (t *Tracker) MouseDown() {
	t.mouseDown = true
	t.clicked = true
}

// MouseUp records a release. The click flag is left untouched.
func (t *Tracker) MouseUp() {
	t.mouseDown = false
}
