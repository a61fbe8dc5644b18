package config

import (
	"os"
	"path/filepath"
	"testing"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"github.com/spf13/pflag"
	"gotest.tools/v3/assert"
)

// isolate keeps the user's real config directory out of the search path
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go-checksum.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Debug, false)
	assert.Equal(t, cfg.LogFormat, "human")
	assert.Equal(t, cfg.LogLevel, "warn")
	assert.Equal(t, cfg.Echo, false)
	assert.Equal(t, cfg.Columns, 80)
	assert.Equal(t, cfg.Output, "text")
	assert.Equal(t, cfg.Decompress, "none")
	assert.Equal(t, cfg.ConfigFile, "")

	assert.DeepEqual(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "echo: true\ncolumns: 40\noutput: json\ndecompress: auto\n")

	cfg, err := Load(path, nil)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Echo, true)
	assert.Equal(t, cfg.Columns, 40)
	assert.Equal(t, cfg.Output, "json")
	assert.Equal(t, cfg.Decompress, "auto")
	assert.Equal(t, cfg.ConfigFile, path)
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("GO_CHECKSUM_OUTPUT", "yaml")
	t.Setenv("GO_CHECKSUM_COLUMNS", "72")

	cfg, err := Load("", nil)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Output, "yaml")
	assert.Equal(t, cfg.Columns, 72)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "output: json\ncolumns: 40\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "text", "")
	flags.Int("columns", 80, "")
	assert.NilError(t, flags.Parse([]string{"--output", "plist"}))

	cfg, err := Load(path, flags)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Output, "plist")
	// columns was not passed, so the file wins over the flag default
	assert.Equal(t, cfg.Columns, 40)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	testCases := map[string]string{
		"columns":    "columns: 0\n",
		"decompress": "decompress: rar\n",
		"log format": "log_format: xml\n",
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content), nil)
			assert.ErrorIs(t, err, commonerrors.ErrConfigInvalid)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.ErrorIs(t, err, commonerrors.ErrConfigParseError)

	_, err = Load(writeConfig(t, "output: [unterminated\n"), nil)
	assert.ErrorIs(t, err, commonerrors.ErrConfigParseError)
}
