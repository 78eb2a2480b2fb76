package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/frameloop/collide"
	"github.com/OpticalFlyer/frameloop/input"
)

var _ Updater = (*Button)(nil)

// Button is a labeled rectangle that runs OnClick when clicked.
type Button struct {
	Rectangle
	Label      string
	LabelColor color.Color
	OnClick    func()

	// State
	isHovered bool
	isPressed bool
}

func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Rectangle: Rectangle{
			Object: Object{X: x, Y: y},
			Width:  width,
			Height: height,
		},
		Label:   label,
		OnClick: onClick,
	}
}

// Update fires OnClick for a pending click inside the button and consumes
// the click, so at most one button reacts to it.
func (b *Button) Update(dt float64, in *input.Tracker) {
	b.isHovered = in.IsMouseInside(b)
	b.isPressed = b.isHovered && in.IsMouseDown()

	if b.isHovered && in.WasMouseClicked() {
		if b.OnClick != nil {
			b.OnClick()
		}
		in.ConsumeClick()
	}

	b.Object.Update(dt, in)
}

// Shape opts buttons out of collision tests.
func (b *Button) Shape() collide.Shape {
	return nil
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case b.Fill != nil:
		bgColor = b.Fill
	case b.isPressed:
		bgColor = color.RGBA{100, 100, 100, 255}
	case b.isHovered:
		bgColor = color.RGBA{180, 180, 180, 255}
	default:
		bgColor = color.RGBA{150, 150, 150, 255}
	}

	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.Width), float32(b.Height)

	vector.DrawFilledRect(screen, x, y, w, h, bgColor, true)
	if b.Fill != nil && (b.isHovered || b.isPressed) {
		tint := color.RGBA{255, 255, 255, 40}
		if b.isPressed {
			tint = color.RGBA{0, 0, 0, 60}
		}
		vector.DrawFilledRect(screen, x, y, w, h, tint, true)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, color.Black, true)

	if b.Label != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(b.X+b.Width/2, b.Y+b.Height/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(fillOrBlack(b.LabelColor))
		text.Draw(screen, b.Label, DefaultFace, op)
	}

	b.Object.Draw(screen)
}
