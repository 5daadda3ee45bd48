package analytics

import "github.com/BruksfildServices01/barberhub/internal/store"

// Viewer gives a consistent read of the store for the duration of fn.
type Viewer interface {
	View(fn func(r store.Reader))
}
