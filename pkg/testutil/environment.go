package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// XDGDirs are the per-test base directories set up by IsolateXDG
type XDGDirs struct {
	Root   string
	Config string
	State  string
}

// IsolateXDG points the XDG config and state directories at a fresh
// temporary tree and clears OWLAPI_ overrides that would leak in from the
// developer's shell. The xdg package is reloaded both now and on cleanup.
func IsolateXDG(t *testing.T) XDGDirs {
	t.Helper()

	root := t.TempDir()
	dirs := XDGDirs{
		Root:   root,
		Config: filepath.Join(root, "config"),
		State:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", dirs.Config)
	t.Setenv("XDG_CONFIG_DIRS", dirs.Config)
	t.Setenv("XDG_STATE_HOME", dirs.State)
	for _, key := range []string{"OWLAPI_CONFIG", "OWLAPI_TO_STRING_RENDERER", "OWLAPI_RENDERER_CACHE_SIZE"} {
		// Setenv registers the restore; the variable itself must be absent
		// since the env provider loads empty values too
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dirs
}
