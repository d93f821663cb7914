// Package summarizer builds a short extractive summary by trying an ordered
// list of strategies; the first one that produces text wins.
package summarizer

import (
	"regexp"
	"strings"
)

// Strategy produces a summary or reports that it has none.
type Strategy interface {
	Name() string
	Summarize(text, lang string) (string, bool)
}

// Summarizer runs strategies in order.
type Summarizer struct {
	strategies []Strategy
}

// New returns a summarizer over strategies, tried in the given order.
func New(strategies ...Strategy) *Summarizer {
	return &Summarizer{strategies: strategies}
}

// Summarize returns the first non-empty strategy result, or "".
func (s *Summarizer) Summarize(text, lang string) string {
	summary, _ := s.SummarizeWith(text, lang)
	return summary
}

// SummarizeWith also returns the name of the strategy that produced the
// summary ("" when none did).
func (s *Summarizer) SummarizeWith(text, lang string) (string, string) {
	for _, strategy := range s.strategies {
		if summary, ok := strategy.Summarize(text, lang); ok && summary != "" {
			return summary, strategy.Name()
		}
	}
	return "", ""
}

// BulletStrategy returns the first Max lines whose trimmed form starts with
// one of Markers, newline-joined with their markers.
type BulletStrategy struct {
	Markers []string
	Max     int
}

func (b BulletStrategy) Name() string { return "bullets" }

func (b BulletStrategy) Summarize(text, _ string) (string, bool) {
	if b.Max <= 0 {
		return "", false
	}
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !b.isBullet(line) {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == b.Max {
			break
		}
	}
	if len(bullets) == 0 {
		return "", false
	}
	return strings.Join(bullets, "\n"), true
}

func (b BulletStrategy) isBullet(line string) bool {
	for _, marker := range b.Markers {
		if marker != "" && strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// Segmenter splits text into sentences.
type Segmenter interface {
	Sentences(text string) []string
}

// SegmenterSource resolves the sentence segmenter for a language.
type SegmenterSource func(lang string) (Segmenter, bool)

// SegmenterStrategy uses a language-specific sentence segmenter and is
// skipped for languages without one.
type SegmenterStrategy struct {
	Source SegmenterSource
}

func (s SegmenterStrategy) Name() string { return "segmenter" }

func (s SegmenterStrategy) Summarize(text, lang string) (string, bool) {
	if s.Source == nil {
		return "", false
	}
	seg, ok := s.Source(lang)
	if !ok {
		return "", false
	}
	return firstTwo(seg.Sentences(text))
}

var naiveBreak = regexp.MustCompile(`[.!?]\s+`)

// NaiveStrategy splits after '.', '!' or '?' followed by whitespace.
type NaiveStrategy struct{}

func (NaiveStrategy) Name() string { return "naive" }

func (NaiveStrategy) Summarize(text, _ string) (string, bool) {
	return firstTwo(NaiveSentences(text))
}

// NaiveSentences splits text after sentence punctuation followed by
// whitespace, keeping the punctuation and dropping empty pieces.
func NaiveSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range naiveBreak.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start : loc[0]+1]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func firstTwo(sentences []string) (string, bool) {
	var kept []string
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
		if len(kept) == 2 {
			break
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, " "), true
}
