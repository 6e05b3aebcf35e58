package yaml

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

type Decoder struct {
	d *yaml.Decoder
}

// NewDecoder returns a [Decoder] reading from r. Unknown fields are rejected
// when strict is set.
func NewDecoder(r io.Reader, opts ...DecoderOpt) *Decoder {
	cfg := &decoderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	yamlOpts := []yaml.DecodeOption{yaml.AllowDuplicateMapKey()}
	if cfg.strict {
		yamlOpts = append(yamlOpts, yaml.Strict())
	}

	return &Decoder{
		d: yaml.NewDecoder(r, yamlOpts...),
	}
}

type decoderConfig struct {
	strict bool
}

type DecoderOpt func(*decoderConfig)

// Strict makes the decoder fail on fields that do not exist in the target.
func Strict() DecoderOpt {
	return func(c *decoderConfig) {
		c.strict = true
	}
}

func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}
