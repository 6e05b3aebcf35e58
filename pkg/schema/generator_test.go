package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/schema"
)

type example struct {
	Name  string `json:"name"            jsonschema:"title=Name"`
	Count int    `json:"count,omitempty" jsonschema:"title=Count"`
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	gen := schema.NewGenerator(&example{}, "https://example.com/example.json")

	b, err := gen.Generate()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "https://example.com/example.json", got["$id"])
	assert.Equal(t, "object", got["type"])
	assert.Equal(t, []any{"name"}, got["required"])
	assert.Equal(t, false, got["additionalProperties"])

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "count")
}
