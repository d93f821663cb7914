package nlp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/dtnitsch/corpus-enricher/pkg/capability"
)

// EntityService hands out cached language models and extracts entities.
// Languages outside the enabled set have no model and no fallback.
type EntityService struct {
	pool    *capability.Pool[*Model]
	enabled map[string]struct{}
	logger  *slog.Logger
}

// NewEntityService enables models for codes; each is loaded on first use.
func NewEntityService(codes []string, logger *slog.Logger) *EntityService {
	return newEntityService(codes, Load, logger)
}

func newEntityService(codes []string, load capability.Factory[*Model], logger *slog.Logger) *EntityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntityService{
		pool:    capability.NewPool("nlp", load),
		enabled: codeSet(codes),
		logger:  logger,
	}
}

// Model returns the model for lang, or false when none is available.
func (s *EntityService) Model(lang string) (*Model, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := s.enabled[lang]; !ok || lang == "" {
		return nil, false
	}
	m, err := s.pool.GetOrCreate(lang)
	if err != nil {
		s.logger.Warn("Language model unavailable", "language", lang, "error", err)
		return nil, false
	}
	return m, true
}

// Extract returns the entities of text for lang; it never returns nil and
// never panics.
func (s *EntityService) Extract(text, lang string) (entities []models.NamedEntity) {
	entities = []models.NamedEntity{}
	if strings.TrimSpace(text) == "" {
		return entities
	}
	m, ok := s.Model(lang)
	if !ok {
		return entities
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Entity extraction failed", "language", lang, "error", fmt.Sprint(r))
			entities = []models.NamedEntity{}
		}
	}()
	return m.Entities(text)
}

// Loaded lists the languages whose models have been loaded so far.
func (s *EntityService) Loaded() []string {
	return s.pool.Languages()
}
