package yaml

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator checks decoded YAML documents against a compiled JSON schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the JSON schema in schemaData, registered under url.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	var doc any

	err := json.Unmarshal(schemaData, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()

	err = c.AddResource(url, doc)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: s}, nil
}

// MustNewValidator is like [NewValidator] but panics on error. It is meant for
// schemas generated at init time.
func MustNewValidator(url string, schemaData []byte) *Validator {
	v, err := NewValidator(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate checks data, typically the result of decoding YAML into an any.
// Schema violations are returned as an [*Error] whose path points at the
// deepest failing value, so it can be annotated against the source.
func (v *Validator) Validate(data any) error {
	err := v.schema.Validate(data)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	return NewError(verr, WithPath(instancePath(deepest(verr).InstanceLocation)))
}

// deepest returns the cause with the longest instance location. Ties keep the
// first cause found.
func deepest(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	best := verr
	for _, cause := range verr.Causes {
		if d := deepest(cause); len(d.InstanceLocation) > len(best.InstanceLocation) {
			best = d
		}
	}

	return best
}

// instancePath converts a JSON pointer, split into its tokens, to a
// [yaml.Path]. Numeric tokens are treated as sequence indexes.
func instancePath(tokens []string) *yaml.Path {
	b := NewPathBuilder().Root()

	for _, tok := range tokens {
		idx, err := strconv.ParseUint(tok, 10, 0)
		if err == nil {
			b = b.Index(uint(idx))

			continue
		}

		b = b.Child(tok)
	}

	return b.Build()
}
