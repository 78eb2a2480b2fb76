package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/frameloop/collide"
)

var (
	_ Collider = (*Rectangle)(nil)
	_ Collider = (*Circle)(nil)
	_ Drawer   = (*Sprite)(nil)
	_ Drawer   = (*Text)(nil)
)

// DefaultFace is used by Text and Button when no face is set.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	Object
	Width, Height float64
	Fill          color.Color
}

// NewRectangle creates a rectangle with its top-left corner at (x, y).
func NewRectangle(x, y, width, height float64, fill color.Color) *Rectangle {
	return &Rectangle{
		Object: Object{X: x, Y: y},
		Width:  width,
		Height: height,
		Fill:   fill,
	}
}

func (r *Rectangle) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), fillOrBlack(r.Fill), true)
	r.Object.Draw(screen)
}

// Bounds returns the rectangle's position and size.
func (r *Rectangle) Bounds() (x, y, width, height float64) {
	return r.X, r.Y, r.Width, r.Height
}

func (r *Rectangle) Shape() collide.Shape {
	return collide.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Circle is a filled circle positioned by its center.
type Circle struct {
	Object
	Radius float64
	Fill   color.Color
}

// NewCircle creates a circle centered on (x, y).
func NewCircle(x, y, radius float64, fill color.Color) *Circle {
	return &Circle{
		Object: Object{X: x, Y: y},
		Radius: radius,
		Fill:   fill,
	}
}

func (c *Circle) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y),
		float32(c.Radius), fillOrBlack(c.Fill), true)
	c.Object.Draw(screen)
}

func (c *Circle) Shape() collide.Shape {
	return collide.Circle{X: c.X, Y: c.Y, Radius: c.Radius}
}

// Sprite draws an image with its top-left corner at the object position.
type Sprite struct {
	Object
	Image         *ebiten.Image
	Width, Height float64
}

// NewSprite creates a sprite sized to img. The image must already be loaded.
func NewSprite(x, y float64, img *ebiten.Image) *Sprite {
	s := &Sprite{
		Object: Object{X: x, Y: y},
		Image:  img,
	}
	if img != nil {
		b := img.Bounds()
		s.Width = float64(b.Dx())
		s.Height = float64(b.Dy())
	}
	return s
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	if s.Image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.X, s.Y)
		screen.DrawImage(s.Image, op)
	}
	s.Object.Draw(screen)
}

// Bounds returns the sprite's position and image size.
func (s *Sprite) Bounds() (x, y, width, height float64) {
	return s.X, s.Y, s.Width, s.Height
}

// Text draws a single string. It has no bounds and never collides.
type Text struct {
	Object
	Content string
	Color   color.Color
	Face    text.Face
}

// NewText creates a text object drawn with DefaultFace.
func NewText(x, y float64, content string, clr color.Color) *Text {
	return &Text{
		Object:  Object{X: x, Y: y},
		Content: content,
		Color:   clr,
		Face:    DefaultFace,
	}
}

func (t *Text) Draw(screen *ebiten.Image) {
	face := t.Face
	if face == nil {
		face = DefaultFace
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(fillOrBlack(t.Color))
	text.Draw(screen, t.Content, face, op)
	t.Object.Draw(screen)
}

func fillOrBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
