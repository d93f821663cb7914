// Package keywords ranks key phrases of a single document with YAKE-style
// statistical features; no corpus or trained model is needed.
package keywords

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"github.com/kljensen/snowball"
)

// Options tune an Extractor.
type Options struct {
	// MaxNgram is the longest candidate phrase, in words.
	MaxNgram int
	// Top caps the number of keywords returned; 0 returns all.
	Top int
	// DedupLimit drops a candidate whose similarity to an already selected
	// keyword is above it.
	DedupLimit float64
}

// DefaultOptions match the enrichment defaults.
func DefaultOptions() Options {
	return Options{MaxNgram: 3, Top: 10, DedupLimit: 0.9}
}

// Keyword is a ranked phrase. Lower scores are more relevant.
type Keyword struct {
	Text  string
	Score float64
}

// snowballLanguages maps ISO 639-1 codes to the stemmers snowball ships.
var snowballLanguages = map[string]string{
	"en": "english",
	"fr": "french",
	"es": "spanish",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
	"hu": "hungarian",
}

// Extractor scores candidate phrases for one language.
type Extractor struct {
	lang      string
	stopwords map[string]struct{}
	stemmer   string
	opts      Options
}

// NewExtractor returns an extractor for code. It fails for languages without
// a stopword list.
func NewExtractor(code string, opts Options) (*Extractor, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	sw, ok := stopwords[code]
	if !ok {
		return nil, fmt.Errorf("no stopword list for language %q", code)
	}
	if opts.MaxNgram < 1 {
		return nil, fmt.Errorf("max n-gram must be >= 1, got %d", opts.MaxNgram)
	}
	if opts.DedupLimit <= 0 {
		opts.DedupLimit = DefaultOptions().DedupLimit
	}
	return &Extractor{
		lang:      code,
		stopwords: sw,
		stemmer:   snowballLanguages[code],
		opts:      opts,
	}, nil
}

// Language returns the extractor's language code.
func (e *Extractor) Language() string {
	return e.lang
}

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+\s+|\n+`)
	wordPattern   = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'’\-]*`)
)

type occurrence struct {
	surface string
	key     string
	stop    bool
	number  bool
}

type term struct {
	key       string
	stop      bool
	tf        int
	tfUpper   int
	tfAcronym int
	sentences []int
	left      map[string]int
	right     map[string]int
}

type candidate struct {
	surface string
	keys    []string
	// stops marks stopword positions of the first occurrence; a stem can be
	// both a stopword and a content word ("keep", "Keeping").
	stops []bool
	tf    int
	first   int
	score   float64
}

// Extract returns the best-scoring keywords of text, best first.
func (e *Extractor) Extract(text string) []Keyword {
	chunks, sentenceCount := e.chunk(text)
	if sentenceCount == 0 {
		return []Keyword{}
	}

	terms, order := e.termStats(chunks)
	cooc := e.cooccurrence(chunks, terms)
	h := e.termScores(terms, order, sentenceCount)

	candidates := e.candidates(chunks, terms, cooc, h)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score < candidates[j].score
		}
		return candidates[i].first < candidates[j].first
	})

	selected := make([]Keyword, 0, e.opts.Top)
	lowered := make([]string, 0, e.opts.Top)
	for _, c := range candidates {
		if e.opts.Top > 0 && len(selected) >= e.opts.Top {
			break
		}
		lower := strings.ToLower(c.surface)
		if e.isDuplicate(lower, lowered) {
			continue
		}
		selected = append(selected, Keyword{Text: c.surface, Score: c.score})
		lowered = append(lowered, lower)
	}
	return selected
}

func (e *Extractor) isDuplicate(candidate string, selected []string) bool {
	for _, s := range selected {
		if levenshtein.Similarity(candidate, s, nil) > e.opts.DedupLimit {
			return true
		}
	}
	return false
}

// chunkedSentence holds the punctuation-free runs of one sentence.
type chunkedSentence struct {
	index  int
	chunks [][]occurrence
}

// chunk splits text into sentences and each sentence into runs of words not
// separated by punctuation.
func (e *Extractor) chunk(text string) ([]chunkedSentence, int) {
	var out []chunkedSentence
	index := 0
	for _, sentence := range sentenceBreak.Split(text, -1) {
		locs := wordPattern.FindAllStringIndex(sentence, -1)
		if len(locs) == 0 {
			continue
		}

		cs := chunkedSentence{index: index}
		var current []occurrence
		prevEnd := -1
		for _, loc := range locs {
			word := strings.TrimRight(sentence[loc[0]:loc[1]], "-'’")
			if word == "" {
				continue
			}
			if prevEnd >= 0 && strings.TrimSpace(sentence[prevEnd:loc[0]]) != "" && len(current) > 0 {
				cs.chunks = append(cs.chunks, current)
				current = nil
			}
			prevEnd = loc[0] + len(word)

			current = append(current, e.occurrence(word))
		}
		if len(current) > 0 {
			cs.chunks = append(cs.chunks, current)
		}
		out = append(out, cs)
		index++
	}
	return out, index
}

func (e *Extractor) occurrence(word string) occurrence {
	lower := strings.ToLower(word)
	_, stop := e.stopwords[lower]
	return occurrence{
		surface: word,
		key:     e.stem(lower),
		stop:    stop,
		number:  isNumber(word),
	}
}

func (e *Extractor) stem(lower string) string {
	if e.stemmer == "" {
		return lower
	}
	stemmed, err := snowball.Stem(lower, e.stemmer, false)
	if err != nil || stemmed == "" {
		return lower
	}
	return stemmed
}

func (e *Extractor) termStats(sentences []chunkedSentence) (map[string]*term, []string) {
	terms := make(map[string]*term)
	var order []string
	for _, s := range sentences {
		first := true
		for _, chunk := range s.chunks {
			for _, occ := range chunk {
				if occ.number {
					first = false
					continue
				}
				t, ok := terms[occ.key]
				if !ok {
					t = &term{key: occ.key, stop: occ.stop, left: map[string]int{}, right: map[string]int{}}
					terms[occ.key] = t
					order = append(order, occ.key)
				}
				t.stop = t.stop && occ.stop
				t.tf++
				if isAcronym(occ.surface) {
					t.tfAcronym++
				} else if !first && isUpperStart(occ.surface) {
					t.tfUpper++
				}
				if n := len(t.sentences); n == 0 || t.sentences[n-1] != s.index {
					t.sentences = append(t.sentences, s.index)
				}
				first = false
			}
		}
	}
	return terms, order
}

// cooccurrence counts directed neighbor pairs (window of one word) inside
// chunks and records them as left/right context on both terms.
func (e *Extractor) cooccurrence(sentences []chunkedSentence, terms map[string]*term) map[[2]string]int {
	cooc := make(map[[2]string]int)
	for _, s := range sentences {
		for _, chunk := range s.chunks {
			for i := 1; i < len(chunk); i++ {
				l, r := chunk[i-1], chunk[i]
				if l.number || r.number {
					continue
				}
				cooc[[2]string{l.key, r.key}]++
				terms[r.key].left[l.key]++
				terms[l.key].right[r.key]++
			}
		}
	}
	return cooc
}

func (e *Extractor) termScores(terms map[string]*term, order []string, sentenceCount int) map[string]float64 {
	var tfs []float64
	maxTF := 0
	for _, key := range order {
		t := terms[key]
		if t.tf > maxTF {
			maxTF = t.tf
		}
		if !t.stop {
			tfs = append(tfs, float64(t.tf))
		}
	}
	mean, std := meanStd(tfs)

	h := make(map[string]float64, len(terms))
	for _, key := range order {
		t := terms[key]
		tf := float64(t.tf)

		tCase := float64(max(t.tfUpper, t.tfAcronym)) / (1 + math.Log(tf))
		tPos := math.Log(math.Log(3 + median(t.sentences)))
		tFreq := tf
		if mean+std > 0 {
			tFreq = tf / (mean + std)
		}
		ratio := tf / float64(maxTF)
		tRel := (0.5 + spread(t.left)*ratio) + (0.5 + spread(t.right)*ratio)
		tSent := float64(len(t.sentences)) / float64(sentenceCount)

		h[key] = (tPos * tRel) / (tCase + tFreq/tRel + tSent/tRel)
	}
	return h
}

// candidates enumerates n-grams that neither start nor end with a stopword
// and contain no numbers, and scores them.
func (e *Extractor) candidates(sentences []chunkedSentence, terms map[string]*term, cooc map[[2]string]int, h map[string]float64) []candidate {
	byKey := make(map[string]int)
	var list []candidate
	position := 0

	for _, s := range sentences {
		for _, chunk := range s.chunks {
			for i := range chunk {
				for n := 1; n <= e.opts.MaxNgram && i+n <= len(chunk); n++ {
					words := chunk[i : i+n]
					position++
					if words[n-1].number {
						break
					}
					if words[0].stop || words[n-1].stop {
						continue
					}

					keys := make([]string, n)
					surfaces := make([]string, n)
					stops := make([]bool, n)
					for k, w := range words {
						keys[k] = w.key
						surfaces[k] = w.surface
						stops[k] = w.stop
					}
					key := strings.Join(keys, " ")

					idx, ok := byKey[key]
					if !ok {
						surface := strings.Join(surfaces, " ")
						if utf8.RuneCountInString(surface) < 3 {
							continue
						}
						idx = len(list)
						byKey[key] = idx
						list = append(list, candidate{surface: surface, keys: keys, stops: stops, first: position})
					}
					list[idx].tf++
				}
			}
		}
	}

	for i := range list {
		list[i].score = e.score(list[i], terms, cooc, h)
	}
	return list
}

func (e *Extractor) score(c candidate, terms map[string]*term, cooc map[[2]string]int, h map[string]float64) float64 {
	prod, sum := 1.0, 0.0
	last := len(c.keys) - 1
	for i, key := range c.keys {
		if !c.stops[i] || i == 0 || i == last {
			prod *= h[key]
			sum += h[key]
			continue
		}
		prev, next := c.keys[i-1], c.keys[i+1]
		probPrev := float64(cooc[[2]string{prev, key}]) / float64(terms[prev].tf)
		probNext := float64(cooc[[2]string{key, next}]) / float64(terms[next].tf)
		bridge := 1 - probPrev*probNext
		prod *= 1 + bridge
		sum -= bridge
	}

	denom := float64(c.tf) * (1 + sum)
	if denom <= 0 {
		return math.MaxFloat64
	}
	return prod / denom
}

func spread(context map[string]int) float64 {
	total := 0
	for _, n := range context {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(len(context)) / float64(total)
}

func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

func isUpperStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func isAcronym(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

func isNumber(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '-' || r == '\'' || r == '’':
		default:
			return false
		}
	}
	return digits > 0
}
