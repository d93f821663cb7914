// Package nlp provides per-language text models: rule-based named-entity
// recognition and Punkt sentence segmentation.
package nlp

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/corpus-enricher/models"
)

// ErrNoModel is returned by Load for languages without a profile.
var ErrNoModel = errors.New("no language model")

// Model recognizes entities and sentences for one language.
type Model struct {
	profile   *profile
	segmenter *Segmenter
}

// Load returns the model for an ISO 639-1 code.
func Load(code string) (*Model, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoModel, code)
	}
	seg, err := LoadSegmenter(p.code)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %q: %w", p.code, err)
	}
	return &Model{profile: p, segmenter: seg}, nil
}

// Available lists the codes Load accepts, sorted.
func Available() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Language returns the model's ISO 639-1 code.
func (m *Model) Language() string {
	return m.profile.code
}

// Sentences splits text with the model's segmenter.
func (m *Model) Sentences(text string) []string {
	return m.segmenter.Sentences(text)
}

// Labels returns the entity label set the model emits.
func (m *Model) Labels() Labels {
	return m.profile.labels
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'’&.\-]*`)

type token struct {
	text       string
	start, end int
}

type span struct {
	start int
	text  string
	label string
}

// Entities returns the named entities of text in first-occurrence order,
// deduplicated by surface text (the first label seen wins).
func (m *Model) Entities(text string) []models.NamedEntity {
	entities := []models.NamedEntity{}
	seen := make(map[string]struct{})

	for _, sentence := range m.Sentences(text) {
		for _, s := range m.sentenceEntities(sentence) {
			if _, ok := seen[s.text]; ok {
				continue
			}
			seen[s.text] = struct{}{}
			entities = append(entities, models.NamedEntity{Text: s.text, Label: s.label})
		}
	}
	return entities
}

func (m *Model) sentenceEntities(sentence string) []span {
	var spans []span
	p := m.profile

	if p.labels.Date != "" && p.datePattern != nil {
		for _, loc := range p.datePattern.FindAllStringIndex(sentence, -1) {
			spans = append(spans, span{start: loc[0], text: sentence[loc[0]:loc[1]], label: p.labels.Date})
		}
	}

	tokens := tokenize(sentence)
	personHint := false
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		lower := strings.ToLower(tok.text)

		if _, ok := p.personTitles[lower]; ok && isCapitalized(tok.text) {
			personHint = true
			i++
			continue
		}
		if !m.nameToken(tok.text) {
			personHint = false
			i++
			continue
		}

		run := []token{tok}
		j := i + 1
		for j < len(tokens) {
			if !m.joinable(sentence[tokens[j-1].end:tokens[j].start], tokens[j-1].text) {
				break
			}
			next := tokens[j]
			if m.nameToken(next.text) {
				run = append(run, next)
				j++
				continue
			}
			if _, ok := p.connectors[strings.ToLower(next.text)]; ok &&
				j+1 < len(tokens) && m.nameToken(tokens[j+1].text) &&
				m.joinable(sentence[next.end:tokens[j+1].start], next.text) {
				run = append(run, next, tokens[j+1])
				j += 2
				continue
			}
			break
		}

		if s, ok := m.classify(sentence, run, i == 0, personHint); ok {
			spans = append(spans, s)
		}
		personHint = false
		i = j
	}

	sort.SliceStable(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
	return spans
}

// classify trims a capitalized run and labels it. ok is false when the run
// is not considered an entity.
func (m *Model) classify(sentence string, run []token, atStart, personHint bool) (span, bool) {
	p := m.profile

	for len(run) > 0 {
		lower := strings.ToLower(run[0].text)
		if !has(p.leading, lower) {
			break
		}
		if has(p.personTitles, lower) {
			personHint = true
		}
		run = run[1:]
		atStart = false
	}
	for len(run) > 0 {
		if _, ok := p.connectors[strings.ToLower(run[len(run)-1].text)]; !ok {
			break
		}
		run = run[:len(run)-1]
	}
	if len(run) == 0 {
		return span{}, false
	}

	text := sentence[run[0].start:run[len(run)-1].end]
	out := span{start: run[0].start, text: text}
	phrase := strings.ToLower(strings.Join(strings.Fields(text), " "))

	switch {
	case has(p.places, phrase):
		out.label = p.labels.Location
	case m.hasOrgSignal(run):
		out.label = p.labels.Org
	case len(run) == 1 && has(p.demonyms, phrase):
		out.label = p.labels.Norp
	case personHint:
		out.label = p.labels.Person
	case len(run) == 1 && (atStart || p.strict):
		return span{}, false
	case len(run) >= 2 && len(run) <= 3 && allTitlecase(run):
		out.label = p.labels.Person
	default:
		out.label = p.labels.Fallback
	}
	return out, out.label != ""
}

func (m *Model) hasOrgSignal(run []token) bool {
	for _, tok := range run {
		for _, part := range strings.Split(tok.text, "-") {
			if has(m.profile.orgKeywords, strings.ToLower(part)) || isAcronym(part) {
				return true
			}
		}
	}
	return false
}

// nameToken reports whether tok can be part of a capitalized name.
func (m *Model) nameToken(tok string) bool {
	return isCapitalized(tok) && !has(m.profile.breakers, strings.ToLower(tok))
}

// joinable reports whether the separator between two tokens keeps them in
// one name: plain spaces, an ampersand, or the dot of an abbreviation.
func (m *Model) joinable(sep, prev string) bool {
	trimmed := strings.TrimSpace(sep)
	switch trimmed {
	case "", "&":
		return true
	case ".":
		return has(m.profile.abbreviations, strings.ToLower(prev))
	}
	return false
}

func tokenize(s string) []token {
	locs := tokenPattern.FindAllStringIndex(s, -1)
	tokens := make([]token, 0, len(locs))
	for _, loc := range locs {
		text := strings.TrimRight(s[loc[0]:loc[1]], ".-'’")
		for _, suffix := range []string{"'s", "’s"} {
			if len(text) > len(suffix) && strings.HasSuffix(text, suffix) {
				text = strings.TrimSuffix(text, suffix)
				break
			}
		}
		if text == "" {
			continue
		}
		tokens = append(tokens, token{text: text, start: loc[0], end: loc[0] + len(text)})
	}
	return tokens
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func isCapitalized(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) || unicode.IsTitle(r)
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

func allTitlecase(run []token) bool {
	for _, tok := range run {
		if !isCapitalized(tok.text) || isAcronym(tok.text) {
			return false
		}
	}
	return true
}
