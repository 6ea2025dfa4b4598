package config

import (
	"sort"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/yinjianfei/owlapi/pkg/errors"
)

// Option keys
const (
	KeyToStringRenderer  = "to_string_renderer"
	KeyRendererCacheSize = "renderer_cache_size"
)

// Settings is the typed view of the options
type Settings struct {
	// ToStringRenderer names the strategy used by the to-string registry
	ToStringRenderer string `koanf:"to_string_renderer"`
	// RendererCacheSize bounds how many constructed renderers are kept
	RendererCacheSize int `koanf:"renderer_cache_size"`
}

// Options holds loaded configuration plus runtime overrides. It is safe
// for concurrent use; Set takes effect for every later read.
type Options struct {
	mu        sync.RWMutex
	base      *koanf.Koanf
	merged    *koanf.Koanf
	overrides map[string]interface{}
	path      string
}

func newOptions(base *koanf.Koanf) *Options {
	return &Options{
		base:      base,
		merged:    base.Copy(),
		overrides: make(map[string]interface{}),
	}
}

// Path returns the config file that was loaded, or "" if none was
func (o *Options) Path() string {
	return o.path
}

// Set overrides key for the lifetime of o. Overrides win over every
// loaded layer.
func (o *Options) Set(key string, value interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.overrides[key] = value
	return o.rebuild()
}

// Unset drops an override so the loaded value shows through again
func (o *Options) Unset(key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.overrides, key)
	return o.rebuild()
}

// rebuild must be called with mu held
func (o *Options) rebuild() error {
	k := o.base.Copy()
	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}
	o.merged = k
	return nil
}

// String returns the value of key as a string
func (o *Options) String(key string) string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.merged.String(key)
}

// Int returns the value of key as an int
func (o *Options) Int(key string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.merged.Int(key)
}

// Keys returns all known keys in sorted order
func (o *Options) Keys() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	keys := o.merged.Keys()
	sort.Strings(keys)
	return keys
}

// Settings decodes the current values into a Settings struct
func (o *Options) Settings() (Settings, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := o.merged.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if s.RendererCacheSize < 1 {
		return Settings{}, errors.Newf(errors.ErrConfigParse, "%s must be at least 1, got %d",
			KeyRendererCacheSize, s.RendererCacheSize)
	}
	return s, nil
}

// RendererName returns the configured to-string strategy identifier. An
// empty or blank value counts as absent.
func (o *Options) RendererName() (string, bool) {
	name := strings.TrimSpace(o.String(KeyToStringRenderer))
	return name, name != ""
}

// CacheSize returns the renderer cache bound, or the built-in default
// when the configured value is unusable
func (o *Options) CacheSize() int {
	s, err := o.Settings()
	if err != nil {
		return DefaultCacheSize
	}
	return s.RendererCacheSize
}

// DefaultCacheSize matches the embedded defaults
const DefaultCacheSize = 16
