package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/macropower/shelf/pkg/yaml"
)

// Validator checks decoded configuration data, e.g. against a JSON schema.
type Validator interface {
	Validate(data any) error
}

// Loader decodes a configuration document. Errors are annotated with the
// offending lines of the document.
type Loader struct {
	validator Validator
	errs      *yaml.ErrorWrapper
	data      []byte
	colored   bool
}

type LoaderOpt func(*Loader)

// WithValidator replaces [DefaultValidator]. A nil validator disables schema
// validation.
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) { l.validator = v }
}

// WithColoredErrors enables ANSI colors in the source excerpts of errors.
func WithColoredErrors(colored bool) LoaderOpt {
	return func(l *Loader) { l.colored = colored }
}

func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		data:      data,
		validator: DefaultValidator,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.errs = yaml.NewErrorWrapper(yaml.WithSource(data), yaml.WithColor(l.colored))

	return l
}

// NewLoaderFromFile reads path, which must be a regular file. Errors wrap
// [fs.ErrNotExist] when the file is missing.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	exists, err := regularFileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("read config file: %s: %w", path, os.ErrNotExist)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Path is chosen by the user.
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate checks the document against the schema without building a
// [Config].
func (l *Loader) Validate() error {
	var doc any

	err := l.decode(&doc)
	if err != nil {
		return err
	}

	if l.validator == nil {
		return nil
	}

	return l.errs.Wrap(l.validator.Validate(doc))
}

// Load decodes the document, applies defaults and runs the checks the schema
// cannot express.
func (l *Loader) Load() (*Config, error) {
	c := &Config{}

	err := l.decode(c)
	if err != nil {
		return nil, err
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, l.errs.Wrap(err)
	}

	return c, nil
}

func (l *Loader) decode(v any) error {
	return l.errs.Wrap(yaml.NewDecoder(bytes.NewReader(l.data)).Decode(v))
}
