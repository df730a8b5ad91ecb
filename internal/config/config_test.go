package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 12, cfg.Intcode.Noun)
	assert.Equal(t, 2, cfg.Intcode.Verb)
	assert.Equal(t, 19690720, cfg.Intcode.Target)
	assert.Equal(t, "256310-732736", cfg.Passcode.Range)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Inputs.Wires = "/tmp/wires.txt"
	cfg.Wires.Workers = 4
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passcode:\n  range: 100-200\nlogging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "100-200", cfg.Passcode.Range)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 99, cfg.Intcode.MaxInput, "unset fields keep defaults")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax.yaml":  "inputs: [unclosed\n",
		"workers.yaml": "wires:\n  workers: -2\n",
		"level.yaml":   "logging:\n  level: loud\n",
		"max.yaml":     "intcode:\n  max_input: -1\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}
