package yaml

import (
	"bytes"
	"io"

	"github.com/goccy/go-yaml"
)

// Encoder writes YAML documents using two-space indentation, with sequences
// indented under their parent key.
type Encoder struct {
	e *yaml.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		e: yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true)),
	}
}

// Encode writes v as the next YAML document.
func (e *Encoder) Encode(v any) error {
	return e.e.Encode(v) //nolint:wrapcheck // Callers add context.
}

func (e *Encoder) Close() error {
	return e.e.Close() //nolint:wrapcheck // Callers add context.
}

// Marshal encodes v as a single YAML document.
func Marshal(v any) ([]byte, error) {
	var b bytes.Buffer

	enc := NewEncoder(&b)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	err = enc.Close()
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
