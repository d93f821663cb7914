package mapreduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_CountsEveryOccurrence(t *testing.T) {
	got := Map([]string{"a", "b", "a", "a"})
	assert.Equal(t, map[string]int{"a": 3, "b": 1}, got)
}

func TestMap_Empty(t *testing.T) {
	assert.Empty(t, Map(nil))
}

func TestReduce(t *testing.T) {
	got := Reduce([]map[string]int{
		{"shared": 1, "x": 2},
		{"shared": 1},
		{},
	})
	assert.Equal(t, map[string]int{"shared": 2, "x": 2}, got)
}

func TestTopN(t *testing.T) {
	counts := map[string]int{
		"beta":      3,
		"alpha":     3,
		"gamma":     5,
		"broken(":   9,
		"trailing:": 9,
		"delta":     1,
	}

	got := TopN(counts, 3)
	assert.Equal(t, []Count{{"gamma", 5}, {"alpha", 3}, {"beta", 3}}, got)

	assert.Empty(t, TopN(counts, 0))
	assert.Empty(t, TopN(counts, -1))
	assert.Len(t, TopN(counts, 100), 4)
}

func TestTopN_PhraseFilter(t *testing.T) {
	counts := map[string]int{
		"glacier melt":         4,
		"University (of Basel": 9,
		"field (in situ) data": 3,
		"note: draft":          9,
		" padded phrase":       9,
		"two\nlines":           9,
		"-- --":                9,
		"\"quoted phrase\"":    2,
	}

	got := TopN(counts, 10)
	assert.Equal(t, []Count{{"glacier melt", 4}, {"field (in situ) data", 3}, {"\"quoted phrase\"", 2}}, got)
}

func TestTopKeywords(t *testing.T) {
	got := TopKeywords(map[string]int{"ETH Zurich": 12, "research": 4}, 25)
	assert.Equal(t, []string{"ETH Zurich:12", "research:4"}, got)
}
