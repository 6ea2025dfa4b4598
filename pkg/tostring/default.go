package tostring

import (
	"sync"

	"github.com/yinjianfei/owlapi/pkg/config"
	"github.com/yinjianfei/owlapi/pkg/model"
	"github.com/yinjianfei/owlapi/pkg/render"
)

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry. It is built on first use
// from config.Get, so config.Initialize must run before it to take effect.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		opts := config.Get()
		defaultRegistry = New(opts, WithCacheSize(opts.CacheSize()))
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide registry
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Reset discards the process-wide registry and its cache. The next
// Default call builds a new one.
func Reset() {
	SetDefault(nil)
}

// Instance returns the active renderer of the default registry
func Instance() (render.Renderer, error) {
	return Default().Active()
}

// Rendering formats obj with the default registry
func Rendering(obj model.Object) (string, error) {
	return Default().Render(obj)
}
