package nlp

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dtnitsch/corpus-enricher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityService_Extract(t *testing.T) {
	svc := NewEntityService([]string{"en", "de"}, nil)

	got := svc.Extract("The partnership with ETH Zurich was renewed.", "en")
	require.Len(t, got, 1)
	assert.Equal(t, "ETH Zurich", got[0].Text)
	assert.Equal(t, []string{"en"}, svc.Loaded())
}

func TestEntityService_NoModelNoFallback(t *testing.T) {
	svc := NewEntityService([]string{"en", "de"}, nil)

	tests := []struct {
		name string
		text string
		lang string
	}{
		{"unsupported language", "Le laboratoire de l'EPFL à Lausanne.", "fr"},
		{"undetected language", "ETH Zurich", ""},
		{"blank text", "   ", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Extract(tt.text, tt.lang)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestEntityService_DisabledLanguage(t *testing.T) {
	svc := NewEntityService([]string{"en"}, nil)

	_, ok := svc.Model("de")
	assert.False(t, ok)

	m, ok := svc.Model("EN")
	require.True(t, ok)
	assert.Equal(t, "en", m.Language())
}

func TestEntityService_ExtractionPanicYieldsEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	// A model without a profile or segmenter fails inside Entities.
	svc := newEntityService([]string{"en"}, func(string) (*Model, error) {
		return &Model{}, nil
	}, logger)

	var got []models.NamedEntity
	assert.NotPanics(t, func() { got = svc.Extract("ETH Zurich renewed the partnership.", "en") })
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "Entity extraction failed")
}
