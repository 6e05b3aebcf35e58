package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/record"
)

var (
	duneInput  = record.Input{Title: "Dune", Genre: "Sci-Fi", Creator: "Herbert", Year: "1965"}
	emmaInput  = record.Input{Title: "Emma", Genre: "Romance", Creator: "Austen", Year: "1815"}
	orwelInput = record.Input{Title: "1984", Genre: "Dystopian", Creator: "Orwell", Year: "1949"}
)

func newCatalog(t *testing.T, inputs ...record.Input) *catalog.Catalog {
	t.Helper()

	c := catalog.New()
	for _, in := range inputs {
		_, err := c.Add(in)
		require.NoError(t, err)
	}

	return c
}

func TestCatalog_Add(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   record.Input
		wantErr error
		wantLen int
	}{
		"valid": {
			input:   duneInput,
			wantLen: 1,
		},
		"missing field": {
			input:   record.Input{Title: "Dune", Year: "1965"},
			wantErr: record.ErrMissingField,
		},
		"invalid year": {
			input:   record.Input{Title: "Dune", Genre: "Sci-Fi", Creator: "Herbert", Year: "nineteen"},
			wantErr: record.ErrInvalidYear,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := catalog.New()

			got, err := c.Add(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, record.Record{}, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Dune (1965) by Herbert - Sci-Fi", got.String())
			}

			assert.Equal(t, tc.wantLen, c.Len())
		})
	}
}

func TestCatalog_Add_KeepsExistingRecordsOnError(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, duneInput, emmaInput)

	_, err := c.Add(record.Input{Title: "x", Genre: "y", Creator: "z", Year: "soon"})
	require.Error(t, err)

	var iye *record.InvalidYearError
	require.ErrorAs(t, err, &iye)

	assert.Equal(t, []string{
		"Dune (1965) by Herbert - Sci-Fi",
		"Emma (1815) by Austen - Romance",
	}, catalog.Lines(c.Records()))
}

func TestCatalog_Sorted(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, duneInput, emmaInput, orwelInput)

	byTitle, err := c.Sorted(record.Order{Key: record.KeyTitle})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1984 (1949) by Orwell - Dystopian",
		"Dune (1965) by Herbert - Sci-Fi",
		"Emma (1815) by Austen - Romance",
	}, catalog.Lines(byTitle))

	byYear, err := c.Sorted(record.Order{Key: record.KeyYear})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Emma (1815) by Austen - Romance",
		"1984 (1949) by Orwell - Dystopian",
		"Dune (1965) by Herbert - Sci-Fi",
	}, catalog.Lines(byYear))

	// Sorting never reorders the catalog.
	assert.Equal(t, []string{
		"Dune (1965) by Herbert - Sci-Fi",
		"Emma (1815) by Austen - Romance",
		"1984 (1949) by Orwell - Dystopian",
	}, catalog.Lines(c.Records()))
}

func TestCatalog_Sorted_Empty(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	got, err := c.Sorted(record.Order{Key: record.KeyTitle})
	require.ErrorIs(t, err, catalog.ErrEmptyCollection)
	assert.Nil(t, got)
	assert.Equal(t, 0, c.Len())
}

func TestCatalog_Records_IsCopy(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, duneInput)

	rs := c.Records()
	rs[0] = record.New("changed", "g", "c", 1)

	assert.Equal(t, "Dune", c.Records()[0].Title)
}

func TestCatalog_WriteTo(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, duneInput, emmaInput)

	var buf bytes.Buffer

	n, err := c.WriteTo(&buf)
	require.NoError(t, err)

	want := "Dune (1965) by Herbert - Sci-Fi\nEmma (1815) by Austen - Romance\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

func TestCatalog_Save(t *testing.T) {
	t.Parallel()

	c := newCatalog(t, duneInput, emmaInput, orwelInput)

	_, err := c.Sorted(record.Order{Key: record.KeyCreator})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")

	// Existing content is replaced.
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than the new one\n\n\n\n\n\n\n\n\n\n\n"), 0o600))

	n, err := c.Save(path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "Dune (1965) by Herbert - Sci-Fi\n" +
		"Emma (1815) by Austen - Romance\n" +
		"1984 (1949) by Orwell - Dystopian\n"
	assert.Equal(t, want, string(got))
	assert.Equal(t, int64(len(want)), n)
}

func TestCatalog_Save_Errors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		catalog func(t *testing.T) *catalog.Catalog
		path    func(t *testing.T) string
		check   func(t *testing.T, path string, err error)
	}{
		"empty catalog": {
			catalog: func(t *testing.T) *catalog.Catalog {
				t.Helper()

				return catalog.New()
			},
			path: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "out.txt")
			},
			check: func(t *testing.T, path string, err error) {
				t.Helper()

				require.ErrorIs(t, err, catalog.ErrEmptyCollection)
				assert.NoFileExists(t, path)
			},
		},
		"path is a directory": {
			catalog: func(t *testing.T) *catalog.Catalog {
				t.Helper()

				return newCatalog(t, duneInput)
			},
			path: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			check: func(t *testing.T, path string, err error) {
				t.Helper()

				var se *catalog.SaveError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, path, se.Path)
				assert.DirExists(t, path)
			},
		},
		"missing parent directory": {
			catalog: func(t *testing.T) *catalog.Catalog {
				t.Helper()

				return newCatalog(t, duneInput)
			},
			path: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing", "out.txt")
			},
			check: func(t *testing.T, _ string, err error) {
				t.Helper()

				require.ErrorIs(t, err, os.ErrNotExist)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := tc.catalog(t)
			before := c.Records()
			path := tc.path(t)

			_, err := c.Save(path)
			tc.check(t, path, err)

			assert.Equal(t, before, c.Records())
		})
	}
}

func TestWithRecords(t *testing.T) {
	t.Parallel()

	c := catalog.New(catalog.WithRecords(
		record.New("a", "b", "c", 1),
		record.New("d", "e", "f", 2),
	))
	c.Append(record.New("g", "h", "i", 3))

	assert.Equal(t, []string{
		"a (1) by c - b",
		"d (2) by f - e",
		"g (3) by i - h",
	}, catalog.Lines(c.Records()))
}
