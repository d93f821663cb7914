// Package models defines data structures for configuration, raw documents,
// and enriched records.
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Frequency table backends.
const (
	FrequencyStoreMemory = "memory"
	FrequencyStoreSQLite = "sqlite"
)

// Config holds every tunable of an enrichment run. Values come from an
// optional YAML or TOML file and may be overridden by CLI flags.
type Config struct {
	// Paragraphs whose corpus-wide count is >= Threshold are dropped.
	Threshold           int      `yaml:"threshold" toml:"threshold"`
	BoilerplatePatterns []string `yaml:"boilerplate_patterns" toml:"boilerplate_patterns"`

	// Fixed labels stamped on every record.
	Domain string `yaml:"domain" toml:"domain"`
	Source string `yaml:"source" toml:"source"`

	TopKeywords       int     `yaml:"top_keywords" toml:"top_keywords"`
	KeywordMaxNgram   int     `yaml:"keyword_max_ngram" toml:"keyword_max_ngram"`
	KeywordDedupLimit float64 `yaml:"keyword_dedup_limit" toml:"keyword_dedup_limit"`

	SummaryBullets int      `yaml:"summary_bullets" toml:"summary_bullets"`
	BulletMarkers  []string `yaml:"bullet_markers" toml:"bullet_markers"`

	// Languages is the detector's supported set; FallbackLanguage is used for
	// keyword model selection when the detected code is outside it.
	Languages        []string `yaml:"languages" toml:"languages"`
	FallbackLanguage string   `yaml:"fallback_language" toml:"fallback_language"`
	// NLPLanguages lists the codes that have entity models.
	NLPLanguages []string `yaml:"nlp_languages" toml:"nlp_languages"`

	// DocumentTimeout bounds the enrichment of a single document ("0" disables).
	DocumentTimeout string `yaml:"document_timeout" toml:"document_timeout"`

	InputExtension string `yaml:"input_extension" toml:"input_extension"`
	FrequencyStore string `yaml:"frequency_store" toml:"frequency_store"`
	SpillDir       string `yaml:"spill_dir" toml:"spill_dir"`

	documentTimeout time.Duration
}

// DefaultBoilerplatePatterns match single-line UI labels left over from HTML extraction.
var DefaultBoilerplatePatterns = []string{
	`^Staffnet\s*$`,
	`^Newsletter\sabonnieren\s*$`,
	`^call_made\s*$`,
	`^externe\sSeite\s*$`,
	`^vertical_align_bottom\s*$`,
	`^Download\s*$`,
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	cfg := Config{
		Threshold:           5,
		BoilerplatePatterns: append([]string(nil), DefaultBoilerplatePatterns...),
		Domain:              "ethz.ch",
		Source:              "ETH News",
		TopKeywords:         10,
		KeywordMaxNgram:     3,
		KeywordDedupLimit:   0.9,
		SummaryBullets:      3,
		BulletMarkers:       []string{"-"},
		Languages:           []string{"en", "de", "fr", "it"},
		FallbackLanguage:    "en",
		NLPLanguages:        []string{"en", "de"},
		DocumentTimeout:     "60s",
		InputExtension:      ".json",
		FrequencyStore:      FrequencyStoreMemory,
	}
	cfg.documentTimeout = 60 * time.Second
	return cfg
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) config file on top of
// the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate normalizes language codes and rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	c.Languages = normalizeCodes(c.Languages)
	c.NLPLanguages = normalizeCodes(c.NLPLanguages)
	c.FallbackLanguage = strings.ToLower(strings.TrimSpace(c.FallbackLanguage))

	if len(c.Languages) < 2 {
		return fmt.Errorf("languages: at least 2 codes required, got %d", len(c.Languages))
	}
	if c.FallbackLanguage == "" {
		return fmt.Errorf("fallback_language must be set")
	}
	if !containsString(c.Languages, c.FallbackLanguage) {
		return fmt.Errorf("fallback_language %q is not in languages %v", c.FallbackLanguage, c.Languages)
	}
	if c.TopKeywords < 0 {
		return fmt.Errorf("top_keywords must be >= 0, got %d", c.TopKeywords)
	}
	if c.KeywordMaxNgram < 1 {
		return fmt.Errorf("keyword_max_ngram must be >= 1, got %d", c.KeywordMaxNgram)
	}
	if c.SummaryBullets < 0 {
		return fmt.Errorf("summary_bullets must be >= 0, got %d", c.SummaryBullets)
	}
	if c.InputExtension == "" {
		c.InputExtension = ".json"
	}
	if !strings.HasPrefix(c.InputExtension, ".") {
		c.InputExtension = "." + c.InputExtension
	}

	switch c.FrequencyStore {
	case "":
		c.FrequencyStore = FrequencyStoreMemory
	case FrequencyStoreMemory, FrequencyStoreSQLite:
	default:
		return fmt.Errorf("frequency_store must be %q or %q, got %q", FrequencyStoreMemory, FrequencyStoreSQLite, c.FrequencyStore)
	}

	if c.DocumentTimeout == "" || c.DocumentTimeout == "0" {
		c.documentTimeout = 0
		return nil
	}
	d, err := time.ParseDuration(c.DocumentTimeout)
	if err != nil {
		return fmt.Errorf("invalid document_timeout %q: %w", c.DocumentTimeout, err)
	}
	if d < 0 {
		return fmt.Errorf("document_timeout must not be negative, got %s", d)
	}
	c.documentTimeout = d
	return nil
}

// Timeout returns the parsed per-document enrichment budget. Zero means unbounded.
func (c Config) Timeout() time.Duration {
	return c.documentTimeout
}

func normalizeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
