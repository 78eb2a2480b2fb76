package engine

import "github.com/OpticalFlyer/frameloop/entity"

// System is one step of the per-frame update. Systems run in order before
// collisions are checked.
type System interface {
	Update(e *Engine, dt float64)
}

// SystemFunc adapts a function to System.
type SystemFunc func(e *Engine, dt float64)

func (f SystemFunc) Update(e *Engine, dt float64) {
	f(e, dt)
}

// UpdateObjects calls Update on every Updater in list order. Objects added
// during the pass are first updated on the next frame; objects removed
// during it are skipped.
var UpdateObjects System = SystemFunc(func(e *Engine, dt float64) {
	for _, obj := range e.Objects() {
		if !e.contains(obj) {
			continue
		}
		if u, ok := obj.(entity.Updater); ok {
			u.Update(dt, e.input)
		}
	}
})
