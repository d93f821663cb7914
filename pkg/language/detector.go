// Package language classifies text into one of a fixed set of ISO 639-1 codes.
package language

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua detector restricted to a configured language set.
type Detector struct {
	detector lingua.LanguageDetector
	codes    []string
	logger   *slog.Logger
}

// LanguagesFromCodes maps lowercase ISO 639-1 codes to lingua languages.
func LanguagesFromCodes(codes []string) ([]lingua.Language, error) {
	byCode := make(map[string]lingua.Language)
	for _, lang := range lingua.AllLanguages() {
		byCode[strings.ToLower(lang.IsoCode639_1().String())] = lang
	}

	langs := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		lang, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
		if !ok {
			return nil, fmt.Errorf("unsupported language code %q", code)
		}
		langs = append(langs, lang)
	}
	return langs, nil
}

// NewDetector builds a detector for codes (at least two).
func NewDetector(codes []string, logger *slog.Logger) (*Detector, error) {
	if len(codes) < 2 {
		return nil, fmt.Errorf("language detector needs at least 2 languages, got %d", len(codes))
	}
	langs, err := LanguagesFromCodes(codes)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		WithPreloadedLanguageModels().
		Build()

	normalized := make([]string, len(codes))
	for i, code := range codes {
		normalized[i] = strings.ToLower(strings.TrimSpace(code))
	}

	return &Detector{
		detector: detector,
		codes:    normalized,
		logger:   logger,
	}, nil
}

// Codes returns the supported codes in configuration order.
func (d *Detector) Codes() []string {
	return append([]string(nil), d.codes...)
}

// Detect returns the lowercase ISO 639-1 code of text, or "" when text is
// blank or no language could be decided. It never panics.
func (d *Detector) Detect(text string) (code string) {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("Language detection failed", "error", fmt.Sprint(r))
			code = ""
		}
	}()

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
