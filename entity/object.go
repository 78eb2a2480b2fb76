// Package entity provides the drawable objects managed by the engine.
//
// Behavior is expressed through small capability interfaces. The engine
// calls Update on every Updater, Draw on every Drawer and OnCollision on
// every CollisionHandler, and only tests objects that are Colliders for
// overlap. Object implements the hook-based versions of all three so that
// individual instances can be given ad-hoc behavior without a new type.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/frameloop/collide"
	"github.com/OpticalFlyer/frameloop/input"
)

// Entity is anything the engine can hold.
type Entity interface {
	Base() *Object
}

// Updater advances an entity by dt seconds.
type Updater interface {
	Update(dt float64, in *input.Tracker)
}

// Drawer renders an entity onto the screen.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// CollisionHandler is notified when the entity overlaps another one.
type CollisionHandler interface {
	OnCollision(other Entity)
}

// Collider exposes the geometry used for collision tests. A nil Shape opts
// the entity out of collisions.
type Collider interface {
	Shape() collide.Shape
}

// Object is the positioned base embedded by every shape. On its own it is
// invisible and only runs its hooks.
type Object struct {
	X, Y   float64
	VX, VY float64

	// Optional per-instance hooks
	OnUpdate  func(dt float64, in *input.Tracker)
	OnDraw    func(screen *ebiten.Image)
	OnCollide func(other Entity)
}

// Base returns the object itself.
func (o *Object) Base() *Object {
	return o
}

// Update runs the OnUpdate hook, if any.
func (o *Object) Update(dt float64, in *input.Tracker) {
	if o.OnUpdate != nil {
		o.OnUpdate(dt, in)
	}
}

// Draw runs the OnDraw hook, if any.
func (o *Object) Draw(screen *ebiten.Image) {
	if o.OnDraw != nil {
		o.OnDraw(screen)
	}
}

// OnCollision runs the OnCollide hook, if any.
func (o *Object) OnCollision(other Entity) {
	if o.OnCollide != nil {
		o.OnCollide(other)
	}
}

// MoveTo sets the position.
func (o *Object) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
}
