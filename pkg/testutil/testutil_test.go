package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileMakesParents(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/deeper/pizza.yaml", "objects: []\n")
	assert.Equal(t, filepath.Join(dir, "nested", "deeper", "pizza.yaml"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "objects: []\n", string(content))
}

func TestIsolateXDG(t *testing.T) {
	t.Setenv("OWLAPI_TO_STRING_RENDERER", "FromShell")

	dirs := IsolateXDG(t)
	assert.Equal(t, dirs.Config, xdg.ConfigHome)
	assert.Equal(t, dirs.State, xdg.StateHome)
	_, set := os.LookupEnv("OWLAPI_TO_STRING_RENDERER")
	assert.False(t, set)
}
