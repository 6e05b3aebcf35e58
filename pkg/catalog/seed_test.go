package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/record"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    []string
		wantErr error
		index   int
	}{
		"valid": {
			input: `
- title: Dune
  genre: Sci-Fi
  creator: Herbert
  year: 1965
- title: 1984
  genre: Dystopian
  creator: Orwell
  year: "1949"
`,
			want: []string{
				"Dune (1965) by Herbert - Sci-Fi",
				"1984 (1949) by Orwell - Dystopian",
			},
		},
		"empty document": {
			input: "\n",
			want:  []string{},
		},
		"missing field": {
			input: `
- title: Dune
  genre: Sci-Fi
  creator: Herbert
  year: 1965
- title: Emma
  creator: Austen
  year: 1815
`,
			wantErr: record.ErrMissingField,
			index:   1,
		},
		"invalid year": {
			input: `
- title: 1984
  genre: Dystopian
  creator: Orwell
  year: nineteen
`,
			wantErr: record.ErrInvalidYear,
			index:   0,
		},
		"float year": {
			input:   "- {title: Dune, genre: Sci-Fi, creator: Herbert, year: 1965.0}\n",
			wantErr: record.ErrInvalidYear,
		},
		"exponent year": {
			input:   "- {title: Dune, genre: Sci-Fi, creator: Herbert, year: 1.965e3}\n",
			wantErr: record.ErrInvalidYear,
		},
		"sequence title": {
			input: `
- {title: Emma, genre: Romance, creator: Austen, year: 1815}
- {title: [a, b], genre: Sci-Fi, creator: Herbert, year: 1965}
`,
			wantErr: catalog.ErrNotScalar,
			index:   1,
		},
		"mapping year": {
			input:   "- {title: Dune, genre: Sci-Fi, creator: Herbert, year: {value: 1965}}\n",
			wantErr: catalog.ErrNotScalar,
		},
		"non-string scalars": {
			input: "- {title: 1984, genre: true, creator: -1, year: -50}\n",
			want:  []string{"1984 (-50) by -1 - true"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.Decode(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				var ee *catalog.EntryError
				require.ErrorAs(t, err, &ee)
				assert.Equal(t, tc.index, ee.Index)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, catalog.Lines(got))
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := catalog.Decode(strings.NewReader(`
- title: Dune
  author: Herbert
`))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- {title: Emma, genre: Romance, creator: Austen, year: 1815}
`), 0o600))

	got, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []record.Record{record.New("Emma", "Romance", "Austen", 1815)}, got)

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
