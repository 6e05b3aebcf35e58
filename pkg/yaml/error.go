package yaml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

// NewPathBuilder starts a [yaml.Path], e.g. for [WithPath].
func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// Error is a YAML decoding or validation error. It locates the problem either
// by [token.Token] or by [yaml.Path]; with a path, the location is resolved
// against Source when the message is rendered.
type Error struct {
	Err     error
	Path    *yaml.Path
	Token   *token.Token
	Source  []byte
	Colored bool
}

type ErrorOpt func(e *Error)

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	e.apply(opts)

	return e
}

func (e *Error) apply(opts []ErrorOpt) {
	for _, opt := range opts {
		opt(e)
	}
}

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) { e.Path = path }
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) { e.Token = tk }
}

// WithSource sets the document the error is annotated against.
func WithSource(source []byte) ErrorOpt {
	return func(e *Error) { e.Source = source }
}

// WithColor enables ANSI colors in the annotated source.
func WithColor(colored bool) ErrorOpt {
	return func(e *Error) { e.Colored = colored }
}

// ErrorWrapper applies a fixed set of options to every [*Error] passed
// through [ErrorWrapper.Wrap].
type ErrorWrapper struct {
	opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{opts: opts}
}

// Wrap applies the wrapper's options, then opts, to the [*Error] in err's
// chain. Other errors are returned unchanged.
func (ew *ErrorWrapper) Wrap(err error, opts ...ErrorOpt) error {
	var yamlErr *Error
	if !errors.As(err, &yamlErr) {
		return err
	}

	yamlErr.apply(ew.opts)
	yamlErr.apply(opts)

	return yamlErr
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Error() string {
	if e.Err == nil {
		return ""
	}
	if e.Path == nil && e.Token == nil {
		return e.Err.Error()
	}

	tk, err := e.token()
	if err != nil {
		slog.Debug("cannot annotate yaml error", slog.Any("error", err))

		if e.Path != nil {
			return fmt.Sprintf("error at %s: %v", e.Path, e.Err)
		}

		return e.Err.Error()
	}

	var pp printer.Printer

	excerpt := lipgloss.NewStyle().
		PaddingTop(1).
		Render(pp.PrintErrorToken(tk, e.Colored))

	return fmt.Sprintf("[%d:%d] %v:\n%s", tk.Position.Line, tk.Position.Column, e.Err, excerpt)
}

// token returns the token the error points at, resolving [Error.Path]
// against [Error.Source] when no token was recorded.
func (e Error) token() (*token.Token, error) {
	if e.Token != nil {
		return e.Token, nil
	}
	if len(e.Source) == 0 {
		return nil, errors.New("no source")
	}

	file, err := parser.ParseBytes(e.Source, 0)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	node, err := e.Path.FilterFile(file)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", e.Path, err)
	}

	if key := keyToken(file, e.Path.String()); key != nil {
		return key, nil
	}

	return node.GetToken(), nil
}

// keyToken returns the token of the mapping key addressed by path, so errors
// about a value point at its key. It returns nil for the root and for
// sequence elements.
func keyToken(file *ast.File, path string) *token.Token {
	dot := strings.LastIndexByte(path, '.')
	if dot <= strings.LastIndexByte(path, '[') {
		return nil
	}

	parent, err := yaml.PathString(path[:dot])
	if err != nil {
		return nil
	}

	node, err := parent.FilterFile(file)
	if err != nil {
		return nil
	}

	mapping, ok := node.(*ast.MappingNode)
	if !ok {
		return nil
	}

	name := path[dot+1:]
	for _, kv := range mapping.Values {
		if kv.Key.String() == name {
			return kv.Key.GetToken()
		}
	}

	return nil
}
