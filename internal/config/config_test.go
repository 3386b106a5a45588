package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Addr())
	assert.Equal(t, models.Ascending, cfg.Display.DefaultSort.Title)
	assert.Equal(t, models.Descending, cfg.Display.DefaultSort.Posted)
}

func TestLoadYAMLConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "nope.yaml"), Default)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadYAMLConfig("", Default)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLConfigOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
display:
  table: true
  default_sort:
    posted: asc
web:
  port: 9090
  read_timeout: 5s
`)

	cfg, err := LoadYAMLConfig(path, Default)
	require.NoError(t, err)
	assert.True(t, cfg.Display.Table)
	assert.True(t, cfg.Display.Banner)
	assert.Equal(t, models.Ascending, cfg.Display.DefaultSort.Title)
	assert.Equal(t, models.Ascending, cfg.Display.DefaultSort.Posted)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 5*time.Second, cfg.Web.ReadTimeout)
}

func TestLoadYAMLConfigRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "web: [port")
	_, err := LoadYAMLConfig(path, Default)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidInput))
}

func TestLoadAppliesEnvironment(t *testing.T) {
	path := writeConfig(t, "web:\n  port: 9090\n")
	t.Setenv("JOBANALYSIS_PORT", "7070")
	t.Setenv("JOBANALYSIS_HOST", "0.0.0.0")
	t.Setenv("JOBANALYSIS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7070", cfg.Web.Addr())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadIgnoresNonNumericPort(t *testing.T) {
	path := writeConfig(t, "web:\n  port: 9090\n")
	t.Setenv("JOBANALYSIS_PORT", "eighty")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Web.Port)
}

func TestLoadUsesConfigEnvPath(t *testing.T) {
	path := writeConfig(t, "display:\n  table: true\n")
	t.Setenv("JOBANALYSIS_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Display.Table)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Display.DefaultSort.Title = "sideways"
	cfg.Web.Port = 70000
	cfg.Loader.MaxFileSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidInput))
	assert.Contains(t, err.Error(), "display.default_sort.title")
	assert.Contains(t, err.Error(), "web.port 70000")
	assert.Contains(t, err.Error(), "loader.max_file_size")
}
