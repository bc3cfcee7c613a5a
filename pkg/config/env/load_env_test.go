package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("loads ENV_PATH", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("UT_TEST_LOADED=yes\n"), 0o644))
		t.Setenv("ENV_PATH", path)
		t.Setenv("UT_TEST_LOADED", "")
		require.NoError(t, os.Unsetenv("UT_TEST_LOADED"))

		require.NoError(t, LoadDotEnv("local", "missing.env"))
		assert.Equal(t, "yes", os.Getenv("UT_TEST_LOADED"))
	})

	t.Run("missing file tolerated outside local", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")

		assert.NoError(t, LoadDotEnv("", filepath.Join(t.TempDir(), "missing.env")))
		assert.NoError(t, LoadDotEnv("production", filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("missing file fails in local", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")

		assert.Error(t, LoadDotEnv("local", filepath.Join(t.TempDir(), "missing.env")))
	})
}
