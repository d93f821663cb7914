package boilerplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPatterns = []string{
	`^Staffnet\s*$`,
	`^Download\s*$`,
	`^externe\sSeite\s*$`,
}

func TestFilterApply(t *testing.T) {
	f, err := New(testPatterns)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "whole paragraph is boilerplate",
			input: []string{"Download"},
			want:  []string{},
		},
		{
			name:  "case insensitive and trimmed",
			input: []string{"  download  ", "STAFFNET"},
			want:  []string{},
		},
		{
			name:  "embedded line removed, rest joined by spaces",
			input: []string{"First line\nDownload\n  second line  "},
			want:  []string{"First line second line"},
		},
		{
			name:  "partial match is kept",
			input: []string{"Download the report here"},
			want:  []string{"Download the report here"},
		},
		{
			name:  "windows line endings",
			input: []string{"a\r\nexterne Seite\r\nb"},
			want:  []string{"a b"},
		},
		{
			name:  "blank lines dropped",
			input: []string{"\n\n  \n", "keep"},
			want:  []string{"keep"},
		},
		{
			name:  "order preserved",
			input: []string{"one", "Staffnet", "two", "three"},
			want:  []string{"one", "two", "three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Apply(tt.input))
		})
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New([]string{`^ok$`, `(unclosed`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern 1")
}

func TestNew_NoPatternsRemovesNothing(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	assert.False(t, f.MatchLine("Download"))
	assert.Equal(t, []string{"Download"}, f.Apply([]string{"Download"}))
}
