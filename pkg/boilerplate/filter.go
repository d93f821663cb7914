// Package boilerplate removes known non-content lines (UI labels, footers,
// disclaimers) from extracted paragraphs.
package boilerplate

import (
	"fmt"
	"regexp"
	"strings"
)

// lineBreak matches the line separators produced by the upstream extractor.
var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Filter drops lines that match any of a configured set of patterns.
// Patterns are matched case-insensitively against the trimmed line, so
// anchored patterns (^...$) match whole lines only.
type Filter struct {
	combined *regexp.Regexp // nil when no patterns are configured
}

// New compiles patterns into a single case-insensitive expression.
// An invalid pattern is reported with its index.
func New(patterns []string) (*Filter, error) {
	f := &Filter{}
	if len(patterns) == 0 {
		return f, nil
	}

	parts := make([]string, 0, len(patterns))
	for i, p := range patterns {
		if _, err := regexp.Compile(p); err != nil {
			return nil, fmt.Errorf("boilerplate pattern %d (%q): %w", i, p, err)
		}
		parts = append(parts, "(?:"+p+")")
	}

	combined, err := regexp.Compile("(?i)" + strings.Join(parts, "|"))
	if err != nil {
		return nil, fmt.Errorf("failed to combine boilerplate patterns: %w", err)
	}
	f.combined = combined
	return f, nil
}

// MatchLine reports whether the trimmed line is boilerplate.
func (f *Filter) MatchLine(line string) bool {
	if f.combined == nil {
		return false
	}
	return f.combined.MatchString(strings.TrimSpace(line))
}

// Apply filters every paragraph line by line. Surviving lines are trimmed and
// joined with single spaces; paragraphs left empty are omitted entirely.
func (f *Filter) Apply(paragraphs []string) []string {
	cleaned := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		if p := f.applyOne(para); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}

func (f *Filter) applyOne(para string) string {
	var b strings.Builder
	b.Grow(len(para))
	for _, line := range lineBreak.Split(para, -1) {
		line = strings.TrimSpace(line)
		if line == "" || f.MatchLine(line) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line)
	}
	return b.String()
}
