package tostring

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/yinjianfei/owlapi/pkg/errors"
	"github.com/yinjianfei/owlapi/pkg/logging"
	"github.com/yinjianfei/owlapi/pkg/model"
	"github.com/yinjianfei/owlapi/pkg/registry"
	"github.com/yinjianfei/owlapi/pkg/render"
)

// IdentifierSource supplies the configured strategy name. The second
// result is false when no name is configured.
type IdentifierSource interface {
	RendererName() (string, bool)
}

// StaticSource is an IdentifierSource that always reports the same name.
// The empty string reports absent.
type StaticSource string

// RendererName implements IdentifierSource
func (s StaticSource) RendererName() (string, bool) {
	return string(s), s != ""
}

// DefaultCacheSize bounds the cache when no size is given
const DefaultCacheSize = 16

// Registry resolves the configured strategy name to a renderer and keeps
// one instance per name. It is safe for concurrent use.
type Registry struct {
	factories registry.Registry[render.Factory]
	source    IdentifierSource
	cache     *cache
	group     singleflight.Group
	logger    zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithFactories replaces the process-wide render factories
func WithFactories(factories registry.Registry[render.Factory]) Option {
	return func(r *Registry) {
		r.factories = factories
	}
}

// WithCacheSize bounds how many renderers are kept. Values below 1 are
// treated as 1.
func WithCacheSize(size int) Option {
	return func(r *Registry) {
		r.cache = newCache(size)
	}
}

// WithLogger sets the logger used for construction and eviction events
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a Registry reading the strategy name from source
func New(source IdentifierSource, opts ...Option) *Registry {
	r := &Registry{
		factories: render.Factories(),
		source:    source,
		cache:     newCache(DefaultCacheSize),
		logger:    logging.GetLogger("tostring"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CurrentIdentifier reads the configured strategy name
func (r *Registry) CurrentIdentifier() (string, bool) {
	if r.source == nil {
		return "", false
	}
	return r.source.RendererName()
}

// Resolve builds a fresh renderer for id. It never consults the cache and
// never falls back to another strategy.
func (r *Registry) Resolve(id string) (render.Renderer, error) {
	factory, ok := r.factories.Lookup(id)
	if !ok || factory == nil {
		return nil, unavailable(id, nil)
	}

	built, err := construct(factory)
	if err != nil {
		r.logger.Warn().Err(err).Str("identifier", id).Msg("Renderer construction failed")
		return nil, unavailable(id, err)
	}

	renderer, ok := built.(render.Renderer)
	if !ok {
		cause := fmt.Errorf("%T does not implement Renderer", built)
		r.logger.Warn().Err(cause).Str("identifier", id).Msg("Renderer construction failed")
		return nil, unavailable(id, cause)
	}
	if isNil(renderer) {
		cause := fmt.Errorf("factory returned a nil %T", built)
		r.logger.Warn().Err(cause).Str("identifier", id).Msg("Renderer construction failed")
		return nil, unavailable(id, cause)
	}

	r.logger.Debug().Str("identifier", id).Msg("Constructed renderer")
	return renderer, nil
}

// construct runs factory, turning a panic into an error
func construct(factory render.Factory) (built interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			built, err = nil, fmt.Errorf("factory panicked: %v", p)
		}
	}()
	return factory()
}

// isNil also catches nil pointers wrapped in a non-nil interface
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func unavailable(id string, cause error) *errors.OwlError {
	msg := "custom renderer unavailable: " + id
	if cause == nil {
		return errors.New(errors.ErrRendererUnavailable, msg).WithDetail("identifier", id)
	}
	return errors.Wrap(cause, errors.ErrRendererUnavailable, msg).WithDetail("identifier", id)
}

// Active returns the cached renderer for the current identifier, building
// it on first use. Concurrent callers for one identifier share a single
// construction.
func (r *Registry) Active() (render.Renderer, error) {
	id, ok := r.CurrentIdentifier()
	if !ok {
		return nil, errors.New(errors.ErrRendererUnavailable, "no renderer configured").
			WithDetail("identifier", "")
	}

	if renderer, ok := r.cache.get(id); ok {
		return renderer, nil
	}

	v, err, _ := r.group.Do(id, func() (interface{}, error) {
		if renderer, ok := r.cache.get(id); ok {
			return renderer, nil
		}

		renderer, err := r.Resolve(id)
		if err != nil {
			return nil, err
		}

		live, evicted := r.cache.add(id, renderer)
		for _, old := range evicted {
			r.logger.Debug().Str("identifier", old).Msg("Evicted renderer")
		}
		return live, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(render.Renderer), nil
}

// Render formats obj with the active renderer
func (r *Registry) Render(obj model.Object) (string, error) {
	if isNil(obj) {
		return "", errors.New(errors.ErrInvalidInput, "object cannot be nil")
	}

	renderer, err := r.Active()
	if err != nil {
		return "", err
	}
	return renderer.Render(obj), nil
}

// ForFormat would pick a renderer for a document format and prefix set.
// It is not implemented and always fails.
func (r *Registry) ForFormat(format model.DocumentFormat, prefixes *model.PrefixManager) (render.Renderer, error) {
	return nil, errors.Newf(errors.ErrNotImplemented, "renderer for format %q with prefixes is not implemented", format).
		WithDetail("format", string(format))
}

// ForDocumentFormat would pick a renderer for a document format. It is
// not implemented and always fails.
func (r *Registry) ForDocumentFormat(format model.DocumentFormat) (render.Renderer, error) {
	return nil, errors.Newf(errors.ErrNotImplemented, "renderer for format %q is not implemented", format).
		WithDetail("format", string(format))
}

// Forget drops the cached renderer for id, reporting whether one was held
func (r *Registry) Forget(id string) bool {
	return r.cache.remove(id)
}

// Purge drops every cached renderer
func (r *Registry) Purge() {
	r.cache.purge()
}

// Cached lists identifiers with a live renderer, most recently used first
func (r *Registry) Cached() []string {
	return r.cache.ids()
}
