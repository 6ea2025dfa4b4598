package tostring

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinjianfei/owlapi/pkg/config"
	"github.com/yinjianfei/owlapi/pkg/errors"
	"github.com/yinjianfei/owlapi/pkg/model"
	"github.com/yinjianfei/owlapi/pkg/registry"
	"github.com/yinjianfei/owlapi/pkg/render"
)

var pizza = model.Class("http://example.org/pizza#Pizza")

type countingRenderer struct {
	name string
	seq  int64
}

func (c *countingRenderer) Render(obj model.Object) string {
	return fmt.Sprintf("%s#%d %s", c.name, c.seq, obj.Kind())
}

// counter registers factories that record how often they run
type counter struct {
	calls sync.Map // name -> *int64
}

func (c *counter) factory(name string, delay time.Duration) render.Factory {
	n, _ := c.calls.LoadOrStore(name, new(int64))
	calls := n.(*int64)
	return func() (interface{}, error) {
		seq := atomic.AddInt64(calls, 1)
		time.Sleep(delay)
		return &countingRenderer{name: name, seq: seq}, nil
	}
}

func (c *counter) count(name string) int64 {
	n, ok := c.calls.Load(name)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(n.(*int64))
}

func newTestRegistry(t *testing.T, source IdentifierSource, opts ...Option) (*Registry, *counter) {
	t.Helper()
	c := &counter{}
	factories := registry.New[render.Factory]()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, factories.Register(name, c.factory(name, 0)))
	}
	require.NoError(t, factories.Register(render.SimpleName, func() (interface{}, error) {
		return render.SimpleRenderer{}, nil
	}))

	opts = append([]Option{WithFactories(factories), WithLogger(zerolog.Nop())}, opts...)
	return New(source, opts...), c
}

func TestCurrentIdentifier(t *testing.T) {
	r, _ := newTestRegistry(t, StaticSource("A"))
	id, ok := r.CurrentIdentifier()
	assert.True(t, ok)
	assert.Equal(t, "A", id)

	r, _ = newTestRegistry(t, StaticSource(""))
	_, ok = r.CurrentIdentifier()
	assert.False(t, ok)

	r, _ = newTestRegistry(t, nil)
	_, ok = r.CurrentIdentifier()
	assert.False(t, ok)
}

func TestActiveReturnsSameInstance(t *testing.T) {
	r, c := newTestRegistry(t, StaticSource("A"))

	first, err := r.Active()
	require.NoError(t, err)
	second, err := r.Active()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), c.count("A"))
}

func TestActiveWithoutIdentifier(t *testing.T) {
	r, _ := newTestRegistry(t, StaticSource(""))

	_, err := r.Active()
	assert.True(t, errors.IsErrorCode(err, errors.ErrRendererUnavailable), "got %v", err)
}

func TestResolveUnknownIdentifier(t *testing.T) {
	r, _ := newTestRegistry(t, StaticSource("A"))

	renderer, err := r.Resolve("DoesNotExist")
	assert.Nil(t, renderer)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRendererUnavailable))
	assert.Contains(t, err.Error(), "DoesNotExist")
	assert.Equal(t, "DoesNotExist", errors.GetErrorDetails(err)["identifier"])
}

func TestResolveAlwaysBuildsFresh(t *testing.T) {
	r, c := newTestRegistry(t, StaticSource("A"))

	first, err := r.Resolve("A")
	require.NoError(t, err)
	second, err := r.Resolve("A")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, int64(2), c.count("A"))
	assert.Empty(t, r.Cached())
}

func TestResolveFactoryFailures(t *testing.T) {
	boom := fmt.Errorf("boom")
	tests := []struct {
		name    string
		factory render.Factory
		cause   string
	}{
		{"factory error", func() (interface{}, error) { return nil, boom }, "boom"},
		{"panicking factory", func() (interface{}, error) { panic("no zero-arg constructor") }, "no zero-arg constructor"},
		{"wrong capability", func() (interface{}, error) { return "just a string", nil }, "string does not implement Renderer"},
		{"nil factory", nil, ""},
		{"typed nil renderer", func() (interface{}, error) { return (*countingRenderer)(nil), nil }, "nil *tostring.countingRenderer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factories := registry.New[render.Factory]()
			require.NoError(t, factories.Register("Broken", tt.factory))
			r := New(StaticSource("Broken"), WithFactories(factories), WithLogger(zerolog.Nop()))

			_, err := r.Active()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRendererUnavailable))
			assert.Contains(t, err.Error(), "Broken")
			if tt.cause != "" {
				assert.Contains(t, err.Error(), tt.cause)
			}
			assert.Empty(t, r.Cached(), "failures are not cached")
		})
	}
}

func TestRenderNilNeverConstructs(t *testing.T) {
	r, c := newTestRegistry(t, StaticSource("A"))

	out, err := r.Render(nil)
	assert.Empty(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "object cannot be nil")

	out, err = r.Render((*model.Entity)(nil))
	assert.Empty(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.Zero(t, c.count("A"))
	assert.Empty(t, r.Cached())
}

func TestRenderNilWithUnknownIdentifier(t *testing.T) {
	r, _ := newTestRegistry(t, StaticSource("DoesNotExist"))

	_, err := r.Render(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSwitchingIdentifier(t *testing.T) {
	opts := config.Defaults()
	require.NoError(t, opts.Set(config.KeyToStringRenderer, "A"))
	r, c := newTestRegistry(t, opts)

	out, err := r.Render(pizza)
	require.NoError(t, err)
	assert.Equal(t, "A#1 Entity", out)

	require.NoError(t, opts.Set(config.KeyToStringRenderer, "B"))
	out, err = r.Render(pizza)
	require.NoError(t, err)
	assert.Equal(t, "B#1 Entity", out)

	require.NoError(t, opts.Set(config.KeyToStringRenderer, "A"))
	out, err = r.Render(pizza)
	require.NoError(t, err)
	assert.Equal(t, "A#1 Entity", out, "switching back reuses the cached instance")
	assert.Equal(t, int64(1), c.count("A"))
}

func TestSimpleThenUnknownScenario(t *testing.T) {
	opts := config.Defaults()
	require.NoError(t, opts.Set(config.KeyToStringRenderer, "SimpleRenderer"))
	r := New(opts, WithLogger(zerolog.Nop()))

	out, err := r.Render(pizza)
	require.NoError(t, err)
	assert.Equal(t, pizza.String(), out)

	require.NoError(t, opts.Set(config.KeyToStringRenderer, "DoesNotExist"))
	_, err = r.Render(pizza)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRendererUnavailable))
	assert.Contains(t, err.Error(), "DoesNotExist")
}

func TestBuiltinsResolve(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	r := New(StaticSource(render.SimpleName), WithLogger(zerolog.Nop()))

	for _, name := range render.Names() {
		renderer, err := r.Resolve(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, renderer.Render(pizza), name)
	}
}

func TestEvictionRebuildsLazily(t *testing.T) {
	source := config.Defaults()
	r, c := newTestRegistry(t, source, WithCacheSize(2))

	use := func(id string) render.Renderer {
		require.NoError(t, source.Set(config.KeyToStringRenderer, id))
		renderer, err := r.Active()
		require.NoError(t, err)
		return renderer
	}

	a1 := use("A")
	use("B")
	use("C")
	assert.Equal(t, []string{"C", "B"}, r.Cached())

	a2 := use("A")
	assert.NotSame(t, a1, a2)
	assert.Equal(t, int64(2), c.count("A"))
	assert.Equal(t, []string{"A", "C"}, r.Cached())
}

func TestForgetAndPurge(t *testing.T) {
	r, c := newTestRegistry(t, StaticSource("A"))

	_, err := r.Active()
	require.NoError(t, err)
	assert.True(t, r.Forget("A"))
	assert.False(t, r.Forget("A"))

	_, err = r.Active()
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.count("A"))

	r.Purge()
	assert.Empty(t, r.Cached())
}

func TestConcurrentActiveSharesConstruction(t *testing.T) {
	c := &counter{}
	factories := registry.New[render.Factory]()
	require.NoError(t, factories.Register("Slow", c.factory("Slow", 20*time.Millisecond)))
	r := New(StaticSource("Slow"), WithFactories(factories), WithLogger(zerolog.Nop()))

	const workers = 32
	results := make([]render.Renderer, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			renderer, err := r.Active()
			assert.NoError(t, err)
			results[i] = renderer
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), c.count("Slow"))
	for _, renderer := range results {
		assert.Same(t, results[0], renderer)
	}
}

func TestConcurrentRenderWhileSwitching(t *testing.T) {
	opts := config.Defaults()
	r, _ := newTestRegistry(t, opts)
	ids := []string{"A", "B", "C"}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, opts.Set(config.KeyToStringRenderer, ids[i%len(ids)]))
		}(i)
		go func() {
			defer wg.Done()
			out, err := r.Render(pizza)
			assert.NoError(t, err)
			assert.NotEmpty(t, out)
		}()
	}
	wg.Wait()
}

func TestUnimplementedEntryPoints(t *testing.T) {
	r, c := newTestRegistry(t, StaticSource("A"))

	renderer, err := r.ForFormat(model.ManchesterSyntaxFormat, model.NewPrefixManager())
	assert.Nil(t, renderer)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))

	renderer, err = r.ForDocumentFormat(model.OWLXMLFormat)
	assert.Nil(t, renderer)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotImplemented))
	assert.Equal(t, string(model.OWLXMLFormat), errors.GetErrorDetails(err)["format"])

	assert.Zero(t, c.count("A"))
}

func TestCacheAddKeepsLiveInstance(t *testing.T) {
	c := newCache(2)
	first := &countingRenderer{name: "A", seq: 1}
	second := &countingRenderer{name: "A", seq: 2}

	live, evicted := c.add("A", first)
	assert.Same(t, first, live)
	assert.Empty(t, evicted)

	live, _ = c.add("A", second)
	assert.Same(t, first, live)

	_, evicted = c.add("B", second)
	assert.Empty(t, evicted)
	_, evicted = c.add("C", second)
	assert.Equal(t, []string{"A"}, evicted)
}

func TestCacheSizeFloor(t *testing.T) {
	c := newCache(0)
	c.add("A", &countingRenderer{})
	c.add("B", &countingRenderer{})
	assert.Equal(t, []string{"B"}, c.ids())
}
