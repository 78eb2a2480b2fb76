package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/frameloop/assets"
	"github.com/OpticalFlyer/frameloop/config"
	"github.com/OpticalFlyer/frameloop/engine"
	"github.com/OpticalFlyer/frameloop/entity"
	"github.com/OpticalFlyer/frameloop/input"
)

const (
	playerSpeed = 200.0 // Pixels per second
	ballSpeed   = 120.0
)

var (
	colorPlayer = config.MustColor("#4caf50")
	colorHit    = config.MustColor("#f44336")
	colorBall   = config.MustColor("#2196f3")
	colorWall   = config.MustColor("#9e9e9e")
	colorText   = config.MustColor("#ffffff")
)

// buildDemo fills e with the demo scene.
func buildDemo(e *engine.Engine) {
	title := entity.NewText(10, 10, "Arrow keys move the square. F1 toggles debug.", colorText)
	status := entity.NewText(10, 28, "", colorText)

	player := entity.NewRectangle(100, 100, 40, 40, colorPlayer)
	hitThisFrame := false
	collisions := 0
	player.OnUpdate = func(dt float64, in *input.Tracker) {
		// Reset before the collision pass of this frame
		hitThisFrame = false
		player.Fill = colorPlayer

		if in.IsKeyDown(ebiten.KeyArrowLeft) {
			player.X -= playerSpeed * dt
		}
		if in.IsKeyDown(ebiten.KeyArrowRight) {
			player.X += playerSpeed * dt
		}
		if in.IsKeyDown(ebiten.KeyArrowUp) {
			player.Y -= playerSpeed * dt
		}
		if in.IsKeyDown(ebiten.KeyArrowDown) {
			player.Y += playerSpeed * dt
		}
	}
	player.OnCollide = func(entity.Entity) {
		if !hitThisFrame {
			collisions++
		}
		hitThisFrame = true
		player.Fill = colorHit
	}

	ball := entity.NewCircle(300, 200, 20, colorBall)
	ball.VX, ball.VY = ballSpeed, ballSpeed*0.75
	ball.OnUpdate = func(dt float64, _ *input.Tracker) {
		ball.X += ball.VX * dt
		ball.Y += ball.VY * dt
		bounce(&ball.X, &ball.VX, ball.Radius, float64(e.ScreenWidth))
		bounce(&ball.Y, &ball.VY, ball.Radius, float64(e.ScreenHeight))
	}

	wall := entity.NewRectangle(450, 150, 30, 200, colorWall)

	reset := entity.NewButton(10, 50, 100, 30, "Reset", func() {
		player.MoveTo(100, 100)
		engine.LogInfo("player reset")
	})
	debug := entity.NewButton(120, 50, 100, 30, "Debug", func() {
		e.SetDebug(!e.Debug())
	})

	status.OnUpdate = func(float64, *input.Tracker) {
		status.Content = fmt.Sprintf("Collisions: %d", collisions)
	}

	e.Add(wall, ball, player, reset, debug, title, status)

	// Clicks that no button took do not carry over to later frames
	e.SetSystems(engine.UpdateObjects, engine.SystemFunc(func(e *engine.Engine, _ float64) {
		e.Input().ConsumeClick()
	}))

	// The sprite only joins the scene once its image has decoded
	e.LoadSprite(assets.DemoSprite, 600, 80, func(s *entity.Sprite) {
		start := s.Y
		elapsed := 0.0
		s.OnUpdate = func(dt float64, in *input.Tracker) {
			elapsed += dt
			s.Y = start + 20*math.Sin(elapsed*2)
			if in.IsMouseDown() && in.IsMouseInside(s) {
				mx, my := in.MousePosition()
				s.X = mx - s.Width/2
				start = my - s.Height/2
			}
		}
	})
}

// bounce keeps pos within [radius, limit-radius], reversing vel at an edge.
func bounce(pos, vel *float64, radius, limit float64) {
	if limit <= 0 {
		return
	}
	if *pos-radius < 0 {
		*pos = radius
		*vel = math.Abs(*vel)
	} else if *pos+radius > limit {
		*pos = limit - radius
		*vel = -math.Abs(*vel)
	}
}
