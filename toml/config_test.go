package toml_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("overlays set values", func(t *testing.T) {
		t.Parallel()

		cfg := knacks.DefaultConfig()
		in := `
base_url = "https://knacks.example.com/"
debounce = "100ms"
db = "/tmp/knacks.db"

[theme]
accent = "#7D56F4"
`

		err := toml.Decode(strings.NewReader(in), &cfg)

		require.NoError(t, err)
		assert.Equal(t, "https://knacks.example.com/", cfg.BaseURL)
		assert.Equal(t, 100*time.Millisecond, cfg.Debounce)
		assert.Equal(t, "/tmp/knacks.db", cfg.DBPath)
		assert.Equal(t, "#7D56F4", cfg.Theme.Accent)
		assert.Equal(t, knacks.DefaultIndexPath, cfg.IndexPath)
		assert.Equal(t, knacks.DefaultTimeout, cfg.Timeout)
		assert.Equal(t, "241", cfg.Theme.Dim)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		cfg := knacks.DefaultConfig()

		err := toml.Decode(strings.NewReader(`base_uri = "x"`), &cfg)

		require.Error(t, err)
		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
	})

	t.Run("rejects bad durations", func(t *testing.T) {
		t.Parallel()

		cfg := knacks.DefaultConfig()

		err := toml.Decode(strings.NewReader(`timeout = "soon"`), &cfg)

		require.Error(t, err)
		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
		assert.Contains(t, knacks.ErrorMessage(err), "timeout")
	})

	t.Run("reports syntax errors with position", func(t *testing.T) {
		t.Parallel()

		cfg := knacks.DefaultConfig()

		err := toml.Decode(strings.NewReader("base_url = \n"), &cfg)

		require.Error(t, err)
		assert.Equal(t, knacks.EINVALID, knacks.ErrorCode(err))
		assert.Contains(t, knacks.ErrorMessage(err), "line 1")
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing optional file is ignored", func(t *testing.T) {
		t.Parallel()

		cfg := knacks.DefaultConfig()

		err := toml.Load(filepath.Join(t.TempDir(), "knacks.toml"), &cfg, true)

		require.NoError(t, err)
		assert.Equal(t, knacks.DefaultConfig(), cfg)
	})

	t.Run("missing required file", func(t *testing.T) {
		t.Parallel()

		cfg := knacks.DefaultConfig()

		err := toml.Load(filepath.Join(t.TempDir(), "knacks.toml"), &cfg, false)

		require.Error(t, err)
		assert.Equal(t, knacks.ENOTFOUND, knacks.ErrorCode(err))
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "knacks.toml")
		require.NoError(t, os.WriteFile(path, []byte(`list_path = "list.html"`), 0644))
		cfg := knacks.DefaultConfig()

		err := toml.Load(path, &cfg, false)

		require.NoError(t, err)
		assert.Equal(t, "list.html", cfg.ListPath)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cfg := knacks.DefaultConfig()
	cfg.BaseURL = "https://knacks.example.com/"

	var buf bytes.Buffer
	require.NoError(t, toml.Encode(&buf, cfg))

	assert.Contains(t, buf.String(), "base_url = 'https://knacks.example.com/'")
	assert.Contains(t, buf.String(), "debounce = '250ms'")

	got := knacks.Config{}
	require.NoError(t, toml.Decode(&buf, &got))
	assert.Equal(t, cfg, got)
}
