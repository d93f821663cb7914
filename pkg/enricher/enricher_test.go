package enricher

import (
	"context"
	"strings"
	"testing"

	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/dtnitsch/corpus-enricher/pkg/summarizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedDetector string

func (f fixedDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return string(f)
}

type nilEntities struct{}

func (nilEntities) Extract(string, string) []models.NamedEntity { return nil }

type recordingKeywords struct {
	lang string
}

func (r *recordingKeywords) Extract(_, lang string) []string {
	r.lang = lang
	return []string{"kw"}
}

func newStubEnricher(kw *recordingKeywords) *Enricher {
	return &Enricher{
		Detector:   fixedDetector("en"),
		Entities:   nilEntities{},
		Keywords:   kw,
		Summarizer: summarizer.New(summarizer.BulletStrategy{Markers: []string{"-"}, Max: 3}, summarizer.NaiveStrategy{}),
		Domain:     "ethz.ch",
		Source:     "ETH News",
	}
}

func TestEnrich_AssemblesRecord(t *testing.T) {
	kw := &recordingKeywords{}
	e := newStubEnricher(kw)

	doc := &models.RawDocument{
		DocID:      "abc",
		Filename:   "post.html",
		Title:      "A title",
		Paragraphs: []string{"First paragraph. More text.", "Download", "Second paragraph"},
	}
	rec, err := e.Enrich(context.Background(), Input{
		RelPath:  "news/2022/07/post.json",
		Document: doc,
		Cleaned:  []string{"First paragraph. More text.", "Second paragraph"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.SchemaVersion, rec.SchemaVersion)
	assert.Equal(t, "abc", rec.DocID)
	assert.Equal(t, "post.html", rec.Filename)
	assert.Empty(t, rec.Title, "titles are filled by a later stage")
	assert.Equal(t, "ethz.ch", rec.Domain)
	assert.Equal(t, "ETH News", rec.Source)
	assert.Equal(t, "en", rec.Language)
	assert.Equal(t, "en", kw.lang)
	assert.Equal(t, "2022-07-01", rec.Date)
	require.NotNil(t, rec.Year)
	assert.Equal(t, 2022, *rec.Year)
	require.NotNil(t, rec.Month)
	assert.Equal(t, 7, *rec.Month)

	assert.Equal(t, doc.Paragraphs, rec.ParagraphsOriginal)
	assert.Equal(t, "First paragraph. More text.\nSecond paragraph", rec.MainContent)
	assert.Equal(t, "First paragraph. More text.", rec.Summary)
	assert.Equal(t, []string{"kw"}, rec.Keywords)
	assert.NotNil(t, rec.NamedEntities)
	assert.Equal(t, models.TextStats{CharCount: 44, WordCount: 6, ParagraphCount: 2}, rec.TextStats)
	assert.Equal(t, []models.ChunkHint{{Type: models.ChunkHintParagraphBoundaries, Count: 2}}, rec.SemanticChunkHints)
	assert.Empty(t, rec.EmbeddingVector)
	assert.Empty(t, rec.DocEmbedding)
}

func TestEnrich_AllParagraphsEliminated(t *testing.T) {
	e := newStubEnricher(&recordingKeywords{})

	rec, err := e.Enrich(context.Background(), Input{
		RelPath:  "misc/page.json",
		Document: &models.RawDocument{DocID: "x", Paragraphs: []string{"Download"}},
		Cleaned:  []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "", rec.MainContent)
	assert.Equal(t, []string{}, rec.ParagraphsCleaned)
	assert.Equal(t, models.TextStats{}, rec.TextStats)
	assert.Equal(t, "", rec.Summary)
	assert.Equal(t, "", rec.Language)
	assert.Equal(t, "", rec.Date)
	assert.Nil(t, rec.Year)
	assert.Nil(t, rec.Month)
}

func TestEnrich_CancelledContext(t *testing.T) {
	e := newStubEnricher(&recordingKeywords{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Enrich(ctx, Input{Document: &models.RawDocument{}, Cleaned: []string{"text"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnrich_NoDocument(t *testing.T) {
	e := newStubEnricher(&recordingKeywords{})
	_, err := e.Enrich(context.Background(), Input{RelPath: "x.json"})
	assert.Error(t, err)
}

func TestNewFromConfig_EndToEnd(t *testing.T) {
	cfg := models.DefaultConfig()
	require.NoError(t, cfg.Validate())

	e, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)

	rec, err := e.Enrich(context.Background(), Input{
		RelPath:  "2023/05/news.json",
		Document: &models.RawDocument{DocID: "n1", Paragraphs: []string{"p"}},
		Cleaned: []string{
			"Researchers at ETH Zurich have developed a new method to measure glacier melt in the Alps.",
			"The team combined satellite data with field measurements. The results were published today.",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "en", rec.Language)
	assert.Equal(t, "Researchers at ETH Zurich have developed a new method to measure glacier melt in the Alps. The team combined satellite data with field measurements.", rec.Summary)
	assert.NotEmpty(t, rec.Keywords)
	assert.LessOrEqual(t, len(rec.Keywords), cfg.TopKeywords)
	assert.Contains(t, rec.NamedEntities, models.NamedEntity{Text: "ETH Zurich", Label: "ORG"})
}

func TestNewFromConfig_BulletSummary(t *testing.T) {
	cfg := models.DefaultConfig()
	require.NoError(t, cfg.Validate())

	e, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)

	text := []string{"- First point\n- Second point\n- Third point\n- Fourth"}
	rec, err := e.Enrich(context.Background(), Input{
		RelPath:  "notes/list.json",
		Document: &models.RawDocument{Paragraphs: text},
		Cleaned:  text,
	})
	require.NoError(t, err)

	assert.Equal(t, "- First point\n- Second point\n- Third point", rec.Summary)
	assert.Equal(t, "", rec.Date)
	assert.Nil(t, rec.Year)
	assert.Nil(t, rec.Month)
}
