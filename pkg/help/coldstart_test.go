package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestColdstartYAML_Parses(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ColdstartYAML), &doc))

	stages, ok := doc["stages"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, stages, "extract")
	assert.Contains(t, stages, "enrich")
	assert.Contains(t, stages, "validate")
	assert.Contains(t, doc, "exit_codes")
}
