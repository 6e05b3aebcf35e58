package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/yaml"
)

// entry is a single record in a seed document. Values are kept untyped so
// that every entry goes through [record.Input] validation.
type entry struct {
	Title   any `json:"title"`
	Genre   any `json:"genre"`
	Creator any `json:"creator"`
	Year    any `json:"year"`
}

// input converts the entry to form input. Values must be YAML scalars.
func (e entry) input() (record.Input, error) {
	var in record.Input

	for _, f := range []struct {
		dst   *string
		value any
		name  string
	}{
		{&in.Title, e.Title, record.KeyTitle.String()},
		{&in.Genre, e.Genre, record.KeyGenre.String()},
		{&in.Creator, e.Creator, record.KeyCreator.String()},
		{&in.Year, e.Year, record.KeyYear.String()},
	} {
		s, err := scalar(f.value)
		if err != nil {
			return in, &FieldError{Field: f.name, Err: err}
		}

		*f.dst = s
	}

	return in, nil
}

// scalar renders a decoded YAML scalar as the text a user would have typed.
// Floats keep a fraction, so a year of 1965.0 fails [record.Input.Parse].
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(s, ".IN") {
			s += ".0"
		}

		return s, nil
	}

	return "", fmt.Errorf("%w, got %T", ErrNotScalar, v)
}

// Decode reads a YAML list of records. Each entry has the keys title, genre,
// creator and year, and is validated like form input. The first invalid entry
// is returned as an [*EntryError].
func Decode(r io.Reader) ([]record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var entries []entry

	ew := yaml.NewErrorWrapper(yaml.WithSource(data))

	err = yaml.NewDecoder(bytes.NewReader(data), yaml.Strict()).Decode(&entries)
	if err != nil {
		return nil, fmt.Errorf("decode records: %w", ew.Wrap(err))
	}

	rs := make([]record.Record, 0, len(entries))
	for i, e := range entries {
		in, err := e.input()
		if err != nil {
			return nil, &EntryError{Index: i, Err: err}
		}

		rec, err := in.Parse()
		if err != nil {
			return nil, &EntryError{Index: i, Err: err}
		}

		rs = append(rs, rec)
	}

	return rs, nil
}

// LoadFile reads records from a YAML file, see [Decode]. A path of "-" reads
// from stdin.
func LoadFile(path string) ([]record.Record, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	f, err := os.Open(path) //nolint:gosec // G304: Path is chosen by the user.
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}

	rs, err := Decode(f)

	return rs, errors.Join(err, f.Close())
}
