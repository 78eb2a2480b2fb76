package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type box struct{ x, y, w, h float64 }

func (b box) Bounds() (float64, float64, float64, float64) { return b.x, b.y, b.w, b.h }

func TestKeys(t *testing.T) {
	tr := New()

	if tr.IsKeyDown(ebiten.KeyArrowLeft) {
		t.Fatal("no key should be held initially")
	}

	tr.KeyDown(ebiten.KeyArrowLeft)
	tr.KeyDown(ebiten.KeyA)
	if !tr.IsKeyDown(ebiten.KeyArrowLeft) || !tr.IsKeyDown(ebiten.KeyA) {
		t.Error("pressed keys should be held")
	}

	tr.KeyUp(ebiten.KeyArrowLeft)
	if tr.IsKeyDown(ebiten.KeyArrowLeft) {
		t.Error("released key should not be held")
	}
	if got := tr.HeldKeys(); len(got) != 1 || got[0] != ebiten.KeyA {
		t.Errorf("HeldKeys() = %v, expected [A]", got)
	}

	// Releasing a key that was never pressed is harmless
	tr.KeyUp(ebiten.KeyZ)
}

func TestZeroValueTracker(t *testing.T) {
	var tr Tracker

	tr.KeyUp(ebiten.KeyA)
	tr.KeyDown(ebiten.KeyA)
	if !tr.IsKeyDown(ebiten.KeyA) {
		t.Error("pressed key should be held")
	}
	if got := tr.HeldKeys(); len(got) != 1 || got[0] != ebiten.KeyA {
		t.Errorf("HeldKeys() = %v, expected [A]", got)
	}
	tr.KeyUp(ebiten.KeyA)
	if tr.IsKeyDown(ebiten.KeyA) {
		t.Error("released key should not be held")
	}
}

func TestClickEdge(t *testing.T) {
	tr := New()

	if tr.WasMouseClicked() {
		t.Fatal("click flag should start cleared")
	}

	tr.MouseDown()
	if !tr.IsMouseDown() {
		t.Error("mouse should be held after MouseDown")
	}
	if !tr.WasMouseClicked() {
		t.Error("click flag should be set after MouseDown")
	}

	tr.MouseUp()
	if tr.IsMouseDown() {
		t.Error("mouse should not be held after MouseUp")
	}
	if !tr.WasMouseClicked() {
		t.Error("click flag should survive MouseUp")
	}
	if !tr.WasMouseClicked() {
		t.Error("a second query without consume should still report the click")
	}

	tr.ConsumeClick()
	if tr.WasMouseClicked() {
		t.Error("click flag should be cleared by ConsumeClick")
	}
}

func TestIsMouseInside(t *testing.T) {
	tr := New()
	b := box{10, 10, 20, 15}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr.MouseMove(tc.x, tc.y)
			if got := tr.IsMouseInside(b); got != tc.expected {
				t.Errorf("IsMouseInside at (%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	// Objects without bounds are never inside, even at the origin
	tr.MouseMove(0, 0)
	if tr.IsMouseInside(struct{}{}) {
		t.Error("unbounded object should never contain the mouse")
	}

	tr.MouseMove(7, 9)
	if x, y := tr.MousePosition(); x != 7 || y != 9 {
		t.Errorf("MousePosition() = (%v, %v), expected (7, 9)", x, y)
	}
}
