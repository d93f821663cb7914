package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetector_Validation(t *testing.T) {
	_, err := NewDetector([]string{"en"}, nil)
	assert.Error(t, err)

	_, err = NewDetector([]string{"en", "xx"}, nil)
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	d, err := NewDetector([]string{"en", "de", "fr", "it"}, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"blank", "   \n\t", ""},
		{"english", "The university announced a new research programme on climate and energy systems.", "en"},
		{"german", "Die Hochschule hat heute ein neues Forschungsprogramm zu Klima und Energie vorgestellt.", "de"},
		{"french", "L'université a annoncé aujourd'hui un nouveau programme de recherche sur le climat.", "fr"},
		{"italian", "L'università ha presentato oggi un nuovo programma di ricerca sul clima e sull'energia.", "it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestCodes(t *testing.T) {
	d, err := NewDetector([]string{" EN", "de"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "de"}, d.Codes())
}
