package tostring

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinjianfei/owlapi/pkg/config"
	"github.com/yinjianfei/owlapi/pkg/errors"
	"github.com/yinjianfei/owlapi/pkg/render"
)

func useConfig(t *testing.T, renderer string) *config.Options {
	t.Helper()
	opts := config.Defaults()
	require.NoError(t, opts.Set(config.KeyToStringRenderer, renderer))

	config.Initialize(opts)
	Reset()
	t.Cleanup(func() {
		config.Initialize(nil)
		Reset()
	})
	return opts
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	useConfig(t, render.SimpleName)

	first := Default()
	assert.Same(t, first, Default())

	Reset()
	assert.NotSame(t, first, Default())
}

func TestDefaultFollowsConfig(t *testing.T) {
	opts := useConfig(t, render.SimpleName)

	out, err := Rendering(pizza)
	require.NoError(t, err)
	assert.Equal(t, pizza.String(), out)

	renderer, err := Instance()
	require.NoError(t, err)
	assert.IsType(t, render.SimpleRenderer{}, renderer)

	require.NoError(t, opts.Set(config.KeyToStringRenderer, render.DLSyntaxName))
	out, err = Rendering(pizza)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", out)

	require.NoError(t, opts.Set(config.KeyToStringRenderer, "DoesNotExist"))
	_, err = Rendering(pizza)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRendererUnavailable))
}

func TestSetDefault(t *testing.T) {
	useConfig(t, render.SimpleName)

	custom := New(StaticSource(render.ManchesterName), WithLogger(zerolog.Nop()))
	SetDefault(custom)
	assert.Same(t, custom, Default())

	out, err := Rendering(pizza)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", out)
}
