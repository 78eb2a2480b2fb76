//go:build !js

package engine

// attachCanvas is a no-op outside the browser; the window comes from the
// window settings.
func attachCanvas(string) error {
	return nil
}
