package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/frameloop/engine"
	"github.com/OpticalFlyer/frameloop/entity"
)

func TestBounce(t *testing.T) {
	tests := []struct {
		name             string
		pos, vel         float64
		wantPos, wantVel float64
	}{
		{"inside", 50, 10, 50, 10},
		{"past left edge", 2, -10, 5, 10},
		{"past right edge", 99, 10, 95, -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel := tc.pos, tc.vel
			bounce(&pos, &vel, 5, 100)
			if pos != tc.wantPos || vel != tc.wantVel {
				t.Errorf("bounce() = (%v, %v), expected (%v, %v)", pos, vel, tc.wantPos, tc.wantVel)
			}
		})
	}
}

func TestDemoScene(t *testing.T) {
	e := engine.New()
	e.Layout(800, 600)
	buildDemo(e)

	objs := e.Objects()
	if len(objs) != 7 {
		t.Fatalf("demo has %d objects before the sprite loads, expected 7", len(objs))
	}

	player, ok := objs[2].(*entity.Rectangle)
	if !ok {
		t.Fatalf("objs[2] = %T, expected the player rectangle", objs[2])
	}

	e.Input().KeyDown(ebiten.KeyArrowRight)
	e.Step(0.5)
	if player.X != 200 {
		t.Errorf("player.X = %v, expected 200 after half a second", player.X)
	}
	e.Input().KeyUp(ebiten.KeyArrowRight)

	// Press Reset: the button puts the player back
	e.Input().MouseMove(20, 60)
	e.Input().MouseDown()
	e.Step(0)
	if player.X != 100 || player.Y != 100 {
		t.Errorf("player at (%v, %v) after reset, expected (100, 100)", player.X, player.Y)
	}
	if e.Input().WasMouseClicked() {
		t.Error("click should be consumed")
	}

	// A click on empty space does not linger for the next frame
	e.Input().MouseMove(700, 500)
	e.Input().MouseDown()
	e.Step(0)
	if e.Input().WasMouseClicked() {
		t.Error("stale click should be consumed at the end of the frame")
	}

	// Move the player onto the wall
	player.MoveTo(440, 200)
	e.Step(0)
	if player.Fill != colorHit {
		t.Error("player overlapping the wall should turn red")
	}
}
