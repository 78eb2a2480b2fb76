//go:build js

package engine

import (
	"fmt"
	"syscall/js"
)

// attachCanvas moves Ebitengine's canvas into the page element with the
// given id. A <canvas> element is replaced outright and its id carried
// over; any other element becomes the canvas's parent.
func attachCanvas(id string) error {
	if id == "" {
		return nil
	}

	doc := js.Global().Get("document")
	host := doc.Call("getElementById", id)
	if host.IsNull() || host.IsUndefined() {
		return fmt.Errorf("%w: #%s", ErrCanvasNotFound, id)
	}

	// Ebitengine appends its canvas to the body, so it is the last one
	canvas := js.Null()
	all := doc.Call("querySelectorAll", "canvas")
	for i := all.Length() - 1; i >= 0; i-- {
		if c := all.Index(i); !c.Equal(host) {
			canvas = c
			break
		}
	}
	if canvas.IsNull() {
		return fmt.Errorf("%w: engine canvas not created yet", ErrCanvasNotFound)
	}

	if host.Get("tagName").String() == "CANVAS" {
		host.Get("parentNode").Call("replaceChild", canvas, host)
		canvas.Set("id", id)
		return nil
	}
	host.Call("appendChild", canvas)
	return nil
}
