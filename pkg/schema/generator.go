// Package schema generates JSON schemas for shelf's YAML documents.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator reflects a JSON schema from a Go value.
type Generator struct {
	v  any
	id string
	r  *jsonschema.Reflector
}

// NewGenerator creates a [Generator] for the given value. The id is used as
// the schema's $id.
func NewGenerator(v any, id string) *Generator {
	return &Generator{
		v:  v,
		id: id,
		r: &jsonschema.Reflector{
			ExpandedStruct: true,
		},
	}
}

// Generate returns the JSON encoded schema.
func (g *Generator) Generate() ([]byte, error) {
	s := g.r.Reflect(g.v)
	s.ID = jsonschema.ID(g.id)

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return b, nil
}

// MustGenerate is like [Generator.Generate] but panics on error.
func (g *Generator) MustGenerate() []byte {
	b, err := g.Generate()
	if err != nil {
		panic(err)
	}

	return b
}
