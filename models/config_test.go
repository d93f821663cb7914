package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Threshold)
	assert.Equal(t, 10, cfg.TopKeywords)
	assert.Equal(t, 3, cfg.SummaryBullets)
	assert.Equal(t, "en", cfg.FallbackLanguage)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	assert.Len(t, cfg.BoilerplatePatterns, 6)
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Threshold, cfg.Threshold)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
threshold: 3
domain: example.org
languages: [EN, de, " fr "]
fallback_language: EN
boilerplate_patterns:
  - '^Print$'
document_timeout: 5s
frequency_store: sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, "example.org", cfg.Domain)
	assert.Equal(t, "ETH News", cfg.Source, "unset keys keep defaults")
	assert.Equal(t, []string{"en", "de", "fr"}, cfg.Languages)
	assert.Equal(t, "en", cfg.FallbackLanguage)
	assert.Equal(t, []string{`^Print$`}, cfg.BoilerplatePatterns)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, FrequencyStoreSQLite, cfg.FrequencyStore)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
threshold = 7
source = "Campus News"
top_keywords = 4
document_timeout = "0"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Threshold)
	assert.Equal(t, "Campus News", cfg.Source)
	assert.Equal(t, 4, cfg.TopKeywords)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "single language", mutate: func(c *Config) { c.Languages = []string{"en"} }, wantErr: true},
		{name: "fallback outside set", mutate: func(c *Config) { c.FallbackLanguage = "es" }, wantErr: true},
		{name: "bad timeout", mutate: func(c *Config) { c.DocumentTimeout = "soon" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.DocumentTimeout = "-1s" }, wantErr: true},
		{name: "unknown store", mutate: func(c *Config) { c.FrequencyStore = "redis" }, wantErr: true},
		{name: "zero ngram", mutate: func(c *Config) { c.KeywordMaxNgram = 0 }, wantErr: true},
		{name: "extension without dot", mutate: func(c *Config) { c.InputExtension = "json" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ".json", cfg.InputExtension)
		})
	}
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("threshold=1"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
