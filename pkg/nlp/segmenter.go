package nlp

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/data"

	"github.com/dtnitsch/corpus-enricher/pkg/capability"
)

// ErrNoSegmenter is returned by LoadSegmenter for languages without a
// trained Punkt model.
var ErrNoSegmenter = errors.New("no sentence segmenter")

// punktModels maps ISO 639-1 codes to the Punkt training sets bundled with
// neurosnap/sentences.
var punktModels = map[string]string{
	"cs": "data/czech.json",
	"da": "data/danish.json",
	"de": "data/german.json",
	"el": "data/greek.json",
	"en": "data/english.json",
	"es": "data/spanish.json",
	"et": "data/estonian.json",
	"fi": "data/finnish.json",
	"fr": "data/french.json",
	"it": "data/italian.json",
	"nl": "data/dutch.json",
	"no": "data/norwegian.json",
	"pl": "data/polish.json",
	"pt": "data/portuguese.json",
	"sl": "data/slovene.json",
	"sv": "data/swedish.json",
	"tr": "data/turkish.json",
}

// Segmenter splits text into sentences with a language's Punkt model.
type Segmenter struct {
	lang      string
	tokenizer *sentences.DefaultSentenceTokenizer
}

// LoadSegmenter decodes the Punkt model for an ISO 639-1 code.
func LoadSegmenter(code string) (*Segmenter, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	asset, ok := punktModels[code]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoSegmenter, code)
	}
	b, err := data.Asset(asset)
	if err != nil {
		return nil, fmt.Errorf("failed to read punkt model %s: %w", asset, err)
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode punkt model %s: %w", asset, err)
	}
	return &Segmenter{lang: code, tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

// SegmenterLanguages lists the codes LoadSegmenter accepts, sorted.
func SegmenterLanguages() []string {
	codes := make([]string, 0, len(punktModels))
	for code := range punktModels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Language returns the segmenter's ISO 639-1 code.
func (s *Segmenter) Language() string {
	return s.lang
}

// Sentences splits text into trimmed sentences. Line breaks always end a
// sentence; Punkt decides the boundaries inside a line.
func (s *Segmenter) Sentences(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, sent := range s.tokenizer.Tokenize(line) {
			if t := strings.TrimSpace(sent.Text); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// SegmenterService hands out cached segmenters for the enabled languages.
type SegmenterService struct {
	pool    *capability.Pool[*Segmenter]
	enabled map[string]struct{}
	logger  *slog.Logger
}

// NewSegmenterService enables segmenters for codes; each is loaded on first
// use.
func NewSegmenterService(codes []string, logger *slog.Logger) *SegmenterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SegmenterService{
		pool:    capability.NewPool("segmenter", LoadSegmenter),
		enabled: codeSet(codes),
		logger:  logger,
	}
}

// Segmenter returns the segmenter for lang, or false when none is available.
func (s *SegmenterService) Segmenter(lang string) (*Segmenter, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := s.enabled[lang]; !ok || lang == "" {
		return nil, false
	}
	seg, err := s.pool.GetOrCreate(lang)
	if err != nil {
		s.logger.Debug("Sentence segmenter unavailable", "language", lang, "error", err)
		return nil, false
	}
	return seg, true
}

func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[strings.ToLower(strings.TrimSpace(code))] = struct{}{}
	}
	return set
}
