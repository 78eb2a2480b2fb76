package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll feeds this tick's Ebitengine input into the tracker. It must be called
// from the game goroutine, once per Update.
func (t *Tracker) Poll() {
	t.keyBuf = inpututil.AppendJustPressedKeys(t.keyBuf[:0])
	for _, k := range t.keyBuf {
		t.KeyDown(k)
	}
	t.keyBuf = inpututil.AppendJustReleasedKeys(t.keyBuf[:0])
	for _, k := range t.keyBuf {
		t.KeyUp(k)
	}

	// Touch takes over the mouse while a finger is down
	if t.pollTouch() {
		return
	}

	x, y := ebiten.CursorPosition()
	t.MouseMove(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.MouseDown()
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		t.MouseUp()
	}
}

// pollTouch maps the first active touch onto the mouse and reports whether a
// touch was handled this tick.
func (t *Tracker) pollTouch() bool {
	if t.touchActive {
		if inpututil.IsTouchJustReleased(t.touchID) {
			t.touchActive = false
			t.MouseUp()
			return true
		}
		x, y := ebiten.TouchPosition(t.touchID)
		t.MouseMove(float64(x), float64(y))
		return true
	}

	t.touchBuf = inpututil.AppendJustPressedTouchIDs(t.touchBuf[:0])
	if len(t.touchBuf) == 0 {
		return false
	}

	t.touchID = t.touchBuf[0]
	t.touchActive = true
	x, y := ebiten.TouchPosition(t.touchID)
	t.MouseMove(float64(x), float64(y))
	t.MouseDown()
	return true
}
