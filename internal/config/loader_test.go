package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/depmap/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), ".depmap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))
	return cfgPath
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultWorkers, cfg.Analysis.Workers)
	assert.Equal(t, config.DefaultCacheSize, cfg.Analysis.CacheSize)
	assert.Empty(t, cfg.Analysis.AliasConfig)
	assert.Empty(t, cfg.Analysis.SourceRoots)
	assert.Empty(t, cfg.Analysis.SkipDirs)
	assert.Equal(t, config.DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	content := `analysis:
  workers: 4
  cache_size: 128
  alias_config: tsconfig.base.json
  source_roots:
    - src/main/java
    - src
  skip_dirs:
    - generated
output:
  format: mermaid
log:
  level: debug
`
	cfg, err := config.LoadConfig(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 128, cfg.Analysis.CacheSize)
	assert.Equal(t, "tsconfig.base.json", cfg.Analysis.AliasConfig)
	assert.Equal(t, []string{"src/main/java", "src"}, cfg.Analysis.SourceRoots)
	assert.Equal(t, []string{"generated"}, cfg.Analysis.SkipDirs)
	assert.Equal(t, "mermaid", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("DEPMAP_ANALYSIS_WORKERS", "7")
	t.Setenv("DEPMAP_OUTPUT_FORMAT", "dot")

	cfg, err := config.LoadConfig(writeConfig(t, "analysis:\n  workers: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Analysis.Workers)
	assert.Equal(t, "dot", cfg.Output.Format)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{"negative workers", "analysis:\n  workers: -1\n", config.ErrInvalidWorkers},
		{"negative cache", "analysis:\n  cache_size: -5\n", config.ErrInvalidCacheSize},
		{"unknown format", "output:\n  format: svg\n", config.ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "log:\n  level: chatty\n"))

	assert.ErrorContains(t, err, "invalid log level")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "analysis: [unterminated\n"))

	assert.ErrorContains(t, err, "read config")
}

func TestLoadDotEnv(t *testing.T) {
	const key = "DEPMAP_LOG_LEVEL"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(key+"=info\n"), 0o600))

	require.NoError(t, config.LoadDotEnv(envPath))
	assert.Equal(t, "info", os.Getenv(key))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	const key = "DEPMAP_OUTPUT_FORMAT"
	t.Setenv(key, "dot")

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(key+"=mermaid\n"), 0o600))

	require.NoError(t, config.LoadDotEnv(envPath))
	assert.Equal(t, "dot", os.Getenv(key))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
