package mapreduce

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Count is a key with its aggregated count.
type Count struct {
	Key   string
	Value int
}

// delimiterPairs must balance inside a listed phrase.
var delimiterPairs = [...][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}}

// isListablePhrase reports whether a keyword phrase can appear in the
// "phrase:count" aggregate. The phrase must be trimmed, single-line, free of
// colons and hold at least one letter or digit; brackets and quotes must
// balance across the whole phrase, not per word.
func isListablePhrase(phrase string) bool {
	if phrase == "" || phrase != strings.TrimSpace(phrase) {
		return false
	}
	if strings.ContainsAny(phrase, ":\r\n\t") {
		return false
	}
	if !strings.ContainsFunc(phrase, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }) {
		return false
	}
	for _, pair := range delimiterPairs {
		if strings.Count(phrase, pair[0]) != strings.Count(phrase, pair[1]) {
			return false
		}
	}
	return strings.Count(phrase, "\"")%2 == 0
}

// TopN returns the n highest counts, highest first. Ties are broken by key so
// the result is stable across runs.
func TopN(counts map[string]int, n int) []Count {
	ss := make([]Count, 0, len(counts))
	for k, v := range counts {
		if isListablePhrase(k) {
			ss = append(ss, Count{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	if n < 0 {
		n = 0
	}
	if len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords returns the top N keys formatted as "key:count" (e.g., "ETH Zurich:12").
func TopKeywords(counts map[string]int, n int) []string {
	top := TopN(counts, n)
	keywords := make([]string, len(top))
	for i, c := range top {
		keywords[i] = fmt.Sprintf("%s:%d", c.Key, c.Value)
	}
	return keywords
}
