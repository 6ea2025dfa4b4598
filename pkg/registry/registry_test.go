package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinjianfei/owlapi/pkg/errors"
)

type factoryStub struct {
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[factoryStub]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("SimpleRenderer", factoryStub{Name: "simple"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", factoryStub{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("SimpleRenderer", factoryStub{Name: "other"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)

		got, _ := reg.Get("SimpleRenderer")
		assert.Equal(t, "simple", got.Name, "duplicate must not overwrite")
	})
}

func TestGetAndLookup(t *testing.T) {
	reg := New[factoryStub]()
	require.NoError(t, reg.Register("manchester", factoryStub{Name: "m"}))

	got, err := reg.Get("manchester")
	require.NoError(t, err)
	assert.Equal(t, "m", got.Name)

	_, err = reg.Get("Manchester")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "lookup is case-sensitive")
	assert.Contains(t, err.Error(), `"Manchester"`)

	_, ok := reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	reg := New[factoryStub]()
	require.NoError(t, reg.Register("yaml", factoryStub{}))

	require.NoError(t, reg.Remove("yaml"))
	assert.False(t, reg.Has("yaml"))

	err := reg.Remove("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestListIsSorted(t *testing.T) {
	reg := New[factoryStub]()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, reg.Register(name, factoryStub{}))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.List())
}

func TestClear(t *testing.T) {
	reg := New[factoryStub]()
	for i := 0; i < 5; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("item%d", i), factoryStub{}))
	}

	reg.Clear()

	assert.Zero(t, reg.Count())
	assert.Empty(t, reg.List())
}

func TestConcurrency(t *testing.T) {
	reg := New[factoryStub]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				if err := reg.Register(fmt.Sprintf("g%d_item%d", id, i), factoryStub{}); err != nil {
					t.Errorf("concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*itemsPerGoroutine, reg.Count())

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				if _, err := reg.Get(fmt.Sprintf("g%d_item%d", id, i)); err != nil {
					t.Errorf("concurrent Get() failed: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestMustRegister(t *testing.T) {
	reg := New[factoryStub]()

	assert.NotPanics(t, func() { MustRegister(reg, "item1", factoryStub{}) })
	assert.True(t, reg.Has("item1"))
	assert.Panics(t, func() { MustRegister(reg, "item1", factoryStub{}) })
}

func TestWithFunctions(t *testing.T) {
	type factory func() (interface{}, error)
	reg := New[factory]()

	MustRegister(reg, "ok", factory(func() (interface{}, error) { return "built", nil }))
	MustRegister(reg, "broken", factory(func() (interface{}, error) { return nil, fmt.Errorf("boom") }))

	ok, found := reg.Lookup("ok")
	require.True(t, found)
	v, err := ok()
	require.NoError(t, err)
	assert.Equal(t, "built", v)

	broken, found := reg.Lookup("broken")
	require.True(t, found)
	_, err = broken()
	assert.EqualError(t, err, "boom")
}

func BenchmarkGet(b *testing.B) {
	reg := New[factoryStub]()
	for i := 0; i < 1000; i++ {
		_ = reg.Register(fmt.Sprintf("item%d", i), factoryStub{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Get(fmt.Sprintf("item%d", i%1000))
	}
}

func ExampleRegistry() {
	reg := New[func() string]()

	_ = reg.Register("SimpleRenderer", func() string { return "Class(<http://example.org/Pizza>)" })
	_ = reg.Register("DLSyntaxRenderer", func() string { return "Pizza" })

	fmt.Println("Registered:", reg.List())

	if render, err := reg.Get("SimpleRenderer"); err == nil {
		fmt.Println(render())
	}

	// Output:
	// Registered: [DLSyntaxRenderer SimpleRenderer]
	// Class(<http://example.org/Pizza>)
}
