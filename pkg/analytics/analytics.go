// Package analytics computes descriptive statistics of cleaned text.
package analytics

import (
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/corpus-enricher/models"
)

// ComputeTextStats describes mainContent: characters are Unicode code points,
// words are whitespace-separated tokens, and paragraphs are the cleaned
// paragraphs mainContent was joined from.
func ComputeTextStats(mainContent string, paragraphs []string) models.TextStats {
	return models.TextStats{
		CharCount:      utf8.RuneCountInString(mainContent),
		WordCount:      len(strings.Fields(mainContent)),
		ParagraphCount: len(paragraphs),
	}
}

// ChunkHints returns the semantic chunking hints for a set of cleaned paragraphs.
func ChunkHints(paragraphs []string) []models.ChunkHint {
	return []models.ChunkHint{
		{Type: models.ChunkHintParagraphBoundaries, Count: len(paragraphs)},
	}
}
