package keywords

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/corpus-enricher/pkg/capability"
)

// ranker is the part of an Extractor the service depends on.
type ranker interface {
	Extract(text string) []Keyword
}

// Service selects a cached extractor per language. Codes outside the
// supported set use the fallback language's extractor; the caller's language
// label is never changed.
type Service struct {
	pool      *capability.Pool[ranker]
	supported map[string]struct{}
	fallback  string
	logger    *slog.Logger
}

// NewService returns a service for the supported codes.
func NewService(supported []string, fallback string, opts Options, logger *slog.Logger) *Service {
	return newService(supported, fallback, func(code string) (ranker, error) {
		ext, err := NewExtractor(code, opts)
		if err != nil {
			return nil, err
		}
		return ext, nil
	}, logger)
}

func newService(supported []string, fallback string, factory capability.Factory[ranker], logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	set := make(map[string]struct{}, len(supported))
	for _, code := range supported {
		set[strings.ToLower(strings.TrimSpace(code))] = struct{}{}
	}
	return &Service{
		pool:      capability.NewPool("keywords", factory),
		supported: set,
		fallback:  strings.ToLower(strings.TrimSpace(fallback)),
		logger:    logger,
	}
}

// ModelLanguage returns the code whose extractor serves lang.
func (s *Service) ModelLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := s.supported[lang]; ok {
		return lang
	}
	return s.fallback
}

// extractor returns the extractor for code. If it cannot be built, the
// fallback extractor is tried once and cached under code.
func (s *Service) extractor(code string) (ranker, error) {
	ext, err := s.pool.GetOrCreate(code)
	if err == nil {
		return ext, nil
	}
	if code == s.fallback {
		return nil, err
	}

	s.logger.Warn("Keyword extractor init failed, using fallback", "language", code, "fallback", s.fallback, "error", err)
	ext, fbErr := s.pool.GetOrCreate(s.fallback)
	if fbErr != nil {
		return nil, fmt.Errorf("%v; fallback: %w", err, fbErr)
	}
	s.pool.Put(code, ext)
	return ext, nil
}

// Extract returns the top keywords of text, best first. It never returns
// nil and never panics.
func (s *Service) Extract(text, lang string) (keywords []string) {
	keywords = []string{}
	if strings.TrimSpace(text) == "" {
		return keywords
	}

	code := s.ModelLanguage(lang)
	ext, err := s.extractor(code)
	if err != nil {
		s.logger.Error("Keyword extractor unavailable", "language", code, "error", err)
		return keywords
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Keyword extraction failed", "language", code, "error", fmt.Sprint(r))
			keywords = []string{}
		}
	}()

	for _, kw := range ext.Extract(text) {
		keywords = append(keywords, kw.Text)
	}
	return keywords
}

// Loaded lists the language keys that currently hold an extractor.
func (s *Service) Loaded() []string {
	return s.pool.Languages()
}
